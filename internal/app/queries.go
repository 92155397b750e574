package app

import (
	"context"
	"time"

	"realestate_api/internal/domain"
)

type QueryService struct {
	props    domain.PropertyRepository
	owners   domain.OwnerRepository
	cache    domain.Cache
	cacheTTL time.Duration
	pageSize int // default page size for searches
}

func NewQueryService(p domain.PropertyRepository, o domain.OwnerRepository, c domain.Cache, ttl time.Duration, defaultPageSize int) *QueryService {
	if defaultPageSize < 1 {
		defaultPageSize = 10
	}
	return &QueryService{props: p, owners: o, cache: c, cacheTTL: ttl, pageSize: defaultPageSize}
}

func (s *QueryService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.props.List(ctx)
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	key := "property:" + id
	var p domain.Property
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.props.Get(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}

// SearchProperties runs the filtered page fetch and the matching count. Both
// use the same filter so the pagination arithmetic always agrees with the
// returned total. Results are not cached: the page and the count have to come
// from the same store state.
func (s *QueryService) SearchProperties(ctx context.Context, f domain.PropertyFilter, page, pageSize int) (domain.PropertyPage, error) {
	pg := NormalizePage(page, pageSize, s.pageSize)

	total, err := s.props.Count(ctx, f)
	if err != nil {
		return domain.PropertyPage{}, err
	}
	items, err := s.props.Search(ctx, f, pg)
	if err != nil {
		return domain.PropertyPage{}, err
	}
	if items == nil {
		items = []domain.Property{} // keep the JSON array non-null
	}
	return domain.PropertyPage{
		Properties: items,
		TotalCount: total,
		Page:       pg.Page,
		PageSize:   pg.PageSize,
		TotalPages: TotalPages(total, pg.PageSize),
	}, nil
}

func (s *QueryService) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	const key = "owners:all"
	var out []domain.Owner
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	owners, err := s.owners.List(ctx)
	if err != nil {
		return nil, err
	}
	// copy before caching so callers can't mutate the cached value through
	// the shared backing array
	out = make([]domain.Owner, len(owners))
	copy(out, owners)
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) GetOwner(ctx context.Context, id string) (domain.Owner, error) {
	key := "owner:" + id
	var o domain.Owner
	if ok, _ := s.cache.Get(ctx, key, &o); ok {
		return o, nil
	}
	o, err := s.owners.Get(ctx, id)
	if err != nil {
		return domain.Owner{}, err
	}
	_ = s.cache.Set(ctx, key, o, int(s.cacheTTL.Seconds()))
	return o, nil
}
