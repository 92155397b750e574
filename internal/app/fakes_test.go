package app_test

import (
	"context"

	"realestate_api/internal/domain"
)

// ---- fakes ----

type fakeProps struct {
	inserted []domain.Property
	get      domain.Property
	getErr   error
	list     []domain.Property
	found    []domain.Property
	count    int64
	dup      bool
	updated  domain.Property
	updErr   error
	delErr   error

	lastCountFilter  domain.PropertyFilter
	lastSearchFilter domain.PropertyFilter
	lastPage         domain.PageQuery
}

func (f *fakeProps) Insert(ctx context.Context, p domain.Property) (domain.Property, error) {
	p.ID = "generated-id"
	f.inserted = append(f.inserted, p)
	return p, nil
}

func (f *fakeProps) Update(ctx context.Context, id string, p domain.Property) (domain.Property, error) {
	if f.updErr != nil {
		return domain.Property{}, f.updErr
	}
	return f.updated, nil
}

func (f *fakeProps) Delete(ctx context.Context, id string) error { return f.delErr }

func (f *fakeProps) Get(ctx context.Context, id string) (domain.Property, error) {
	return f.get, f.getErr
}

func (f *fakeProps) List(ctx context.Context) ([]domain.Property, error) { return f.list, nil }

func (f *fakeProps) Search(ctx context.Context, fl domain.PropertyFilter, pg domain.PageQuery) ([]domain.Property, error) {
	f.lastSearchFilter, f.lastPage = fl, pg
	return f.found, nil
}

func (f *fakeProps) Count(ctx context.Context, fl domain.PropertyFilter) (int64, error) {
	f.lastCountFilter = fl
	return f.count, nil
}

func (f *fakeProps) ExistsNameOwner(ctx context.Context, name, ownerID string) (bool, error) {
	return f.dup, nil
}

type fakeOwners struct {
	inserted    []domain.Owner
	get         domain.Owner
	getErr      error
	list        []domain.Owner
	exists      bool
	emailExists bool
}

func (f *fakeOwners) Insert(ctx context.Context, o domain.Owner) (domain.Owner, error) {
	o.ID = "generated-owner-id"
	f.inserted = append(f.inserted, o)
	return o, nil
}

func (f *fakeOwners) Get(ctx context.Context, id string) (domain.Owner, error) {
	return f.get, f.getErr
}

func (f *fakeOwners) List(ctx context.Context) ([]domain.Owner, error) { return f.list, nil }

func (f *fakeOwners) Exists(ctx context.Context, id string) (bool, error) { return f.exists, nil }

func (f *fakeOwners) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.emailExists, nil
}

type fakeCache struct {
	store   map[string]any
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Property:
		*d = v.(domain.Property)
	case *domain.Owner:
		*d = v.(domain.Owner)
	case *[]domain.Owner:
		*d = v.([]domain.Owner)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func ptr[T any](v T) *T { return &v }
