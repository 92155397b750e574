package app

import "realestate_api/internal/domain"

// NormalizePage applies the 1-based pagination defaults. Non-positive page
// falls back to 1, non-positive pageSize to def.
func NormalizePage(page, pageSize, def int) domain.PageQuery {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = def
	}
	return domain.PageQuery{Page: page, PageSize: pageSize}
}

// TotalPages is ceil(totalCount/pageSize), with 0 for an empty result set.
func TotalPages(totalCount int64, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}
