package domain

import "time"

type Property struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"idOwner"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PropertyInput is the client payload for create and full-replace update.
// Timestamps are never taken from the client.
type PropertyInput struct {
	OwnerID string  `json:"idOwner"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
}

// PropertyFilter holds optional search constraints. Nil fields add no
// constraint; all present constraints combine with logical AND.
type PropertyFilter struct {
	Name     *string
	Address  *string
	OwnerID  *string
	MinPrice *float64
	MaxPrice *float64
}

// Empty reports whether no constraint is set (match-all).
func (f PropertyFilter) Empty() bool {
	return f.Name == nil && f.Address == nil && f.OwnerID == nil &&
		f.MinPrice == nil && f.MaxPrice == nil
}

// PageQuery is 1-based pagination. Page beyond the last simply yields an
// empty result set; no upper clamp is applied.
type PageQuery struct {
	Page     int
	PageSize int
}

func (p PageQuery) Offset() int { return (p.Page - 1) * p.PageSize }

type PropertyPage struct {
	Properties []Property `json:"properties"`
	TotalCount int64      `json:"totalCount"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}
