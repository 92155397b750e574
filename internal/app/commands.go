package app

import (
	"context"
	"fmt"
	"time"

	"realestate_api/internal/domain"
)

type CommandService struct {
	props  domain.PropertyRepository
	owners domain.OwnerRepository
	cache  domain.Cache
}

func NewCommandService(p domain.PropertyRepository, o domain.OwnerRepository, cache domain.Cache) *CommandService {
	return &CommandService{props: p, owners: o, cache: cache}
}

// CreateProperty validates the payload, checks the owner reference and the
// (name, owner) uniqueness, then persists with service-side timestamps.
// The check-then-insert pair is two independent store calls; a concurrent
// writer can still slip a duplicate in between (accepted, the unique index
// is the backstop).
func (s *CommandService) CreateProperty(ctx context.Context, in *domain.PropertyInput) (domain.Property, error) {
	v, err := ValidatePropertyInput(in)
	if err != nil {
		return domain.Property{}, err
	}

	ok, err := s.owners.Exists(ctx, v.OwnerID)
	if err != nil {
		return domain.Property{}, err
	}
	if !ok {
		return domain.Property{}, &domain.ReferenceError{Message: fmt.Sprintf("no owner found with id %s", v.OwnerID)}
	}

	dup, err := s.props.ExistsNameOwner(ctx, v.Name, v.OwnerID)
	if err != nil {
		return domain.Property{}, err
	}
	if dup {
		return domain.Property{}, &domain.ConflictError{Message: fmt.Sprintf("a property named %q already exists for this owner", v.Name)}
	}

	now := time.Now().UTC()
	created, err := s.props.Insert(ctx, domain.Property{
		OwnerID:   v.OwnerID,
		Name:      v.Name,
		Address:   v.Address,
		Price:     v.Price,
		Image:     v.Image,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.Property{}, err
	}
	return created, nil
}

// UpdateProperty re-validates and replaces all mutable fields wholesale.
// createdAt is preserved by the store; updatedAt is stamped fresh.
func (s *CommandService) UpdateProperty(ctx context.Context, id string, in *domain.PropertyInput) (domain.Property, error) {
	v, err := ValidatePropertyInput(in)
	if err != nil {
		return domain.Property{}, err
	}

	updated, err := s.props.Update(ctx, id, domain.Property{
		OwnerID:   v.OwnerID,
		Name:      v.Name,
		Address:   v.Address,
		Price:     v.Price,
		Image:     v.Image,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.Property{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "property:"+id)
	}
	return updated, nil
}

// DeleteProperty removes by id. A missing id surfaces as domain.ErrNotFound,
// never as an infrastructure error.
func (s *CommandService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.props.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "property:"+id)
	}
	return nil
}

// CreateOwner validates the payload and enforces email uniqueness before
// inserting with a service-side createdAt.
func (s *CommandService) CreateOwner(ctx context.Context, in *domain.OwnerInput) (domain.Owner, error) {
	v, err := ValidateOwnerInput(in)
	if err != nil {
		return domain.Owner{}, err
	}

	exists, err := s.owners.EmailExists(ctx, v.Email)
	if err != nil {
		return domain.Owner{}, err
	}
	if exists {
		return domain.Owner{}, &domain.ConflictError{Message: fmt.Sprintf("an owner with email %q already exists", v.Email)}
	}

	created, err := s.owners.Insert(ctx, domain.Owner{
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.Owner{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "owners:all")
	}
	return created, nil
}
