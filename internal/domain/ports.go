package domain

import "context"

type PropertyRepository interface {
	// Write paths
	Insert(ctx context.Context, p Property) (Property, error)
	Update(ctx context.Context, id string, p Property) (Property, error)
	Delete(ctx context.Context, id string) error

	// Read paths
	Get(ctx context.Context, id string) (Property, error)
	List(ctx context.Context) ([]Property, error)
	Search(ctx context.Context, f PropertyFilter, pg PageQuery) ([]Property, error)
	Count(ctx context.Context, f PropertyFilter) (int64, error)
	ExistsNameOwner(ctx context.Context, name, ownerID string) (bool, error)
}

type OwnerRepository interface {
	Insert(ctx context.Context, o Owner) (Owner, error)

	Get(ctx context.Context, id string) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
	Exists(ctx context.Context, id string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
