package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"realestate_api/internal/app"
	"realestate_api/internal/domain"
)

func validPropertyInput() domain.PropertyInput {
	return domain.PropertyInput{
		OwnerID: "66f0a1b2c3d4e5f6a7b8c9d1",
		Name:    "Casa del Mar",
		Address: "12 Ocean Drive, Miami",
		Price:   550000,
		Image:   "https://img.example.com/casa.jpg",
	}
}

func TestCreateProperty_Success(t *testing.T) {
	props := &fakeProps{}
	owners := &fakeOwners{exists: true}
	c := app.NewCommandService(props, owners, &fakeCache{})

	before := time.Now().UTC()
	in := validPropertyInput()
	in.Name = "  " + in.Name + "  " // service must trim before storing
	created, err := c.CreateProperty(context.Background(), &in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Name != "Casa del Mar" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if created.CreatedAt.Before(before) || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("bad timestamps: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}
	if len(props.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(props.inserted))
	}
}

func TestCreateProperty_UnknownOwner(t *testing.T) {
	props := &fakeProps{}
	owners := &fakeOwners{exists: false}
	c := app.NewCommandService(props, owners, &fakeCache{})

	in := validPropertyInput()
	_, err := c.CreateProperty(context.Background(), &in)
	var re *domain.ReferenceError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if len(props.inserted) != 0 {
		t.Fatalf("nothing should be persisted on failure")
	}
}

func TestCreateProperty_DuplicateNamePerOwner(t *testing.T) {
	props := &fakeProps{dup: true}
	owners := &fakeOwners{exists: true}
	c := app.NewCommandService(props, owners, &fakeCache{})

	in := validPropertyInput()
	_, err := c.CreateProperty(context.Background(), &in)
	var ce *domain.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(props.inserted) != 0 {
		t.Fatalf("nothing should be persisted on conflict")
	}
}

func TestCreateProperty_InvalidPayloadNotPersisted(t *testing.T) {
	props := &fakeProps{}
	c := app.NewCommandService(props, &fakeOwners{exists: true}, &fakeCache{})

	in := validPropertyInput()
	in.Price = 0
	_, err := c.CreateProperty(context.Background(), &in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "price" {
		t.Fatalf("expected price ValidationError, got %v", err)
	}
	if len(props.inserted) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestUpdateProperty_Revalidates(t *testing.T) {
	c := app.NewCommandService(&fakeProps{}, &fakeOwners{}, &fakeCache{})

	in := validPropertyInput()
	in.Address = "x"
	_, err := c.UpdateProperty(context.Background(), "p1", &in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "address" {
		t.Fatalf("expected address ValidationError, got %v", err)
	}
}

func TestUpdateProperty_NotFound(t *testing.T) {
	props := &fakeProps{updErr: domain.ErrNotFound}
	c := app.NewCommandService(props, &fakeOwners{}, &fakeCache{})

	in := validPropertyInput()
	if _, err := c.UpdateProperty(context.Background(), "missing", &in); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProperty_InvalidatesCache(t *testing.T) {
	props := &fakeProps{updated: domain.Property{ID: "p1", Name: "Casa del Mar"}}
	cache := &fakeCache{}
	c := app.NewCommandService(props, &fakeOwners{}, cache)

	in := validPropertyInput()
	updated, err := c.UpdateProperty(context.Background(), "p1", &in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if updated.ID != "p1" {
		t.Fatalf("unexpected result: %+v", updated)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "property:p1" {
		t.Fatalf("expected property cache eviction, got %v", cache.deleted)
	}
}

func TestDeleteProperty_Missing(t *testing.T) {
	props := &fakeProps{delErr: domain.ErrNotFound}
	c := app.NewCommandService(props, &fakeOwners{}, &fakeCache{})

	if err := c.DeleteProperty(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateOwner_Success(t *testing.T) {
	owners := &fakeOwners{}
	cache := &fakeCache{}
	c := app.NewCommandService(&fakeProps{}, owners, cache)

	before := time.Now().UTC()
	created, err := c.CreateOwner(context.Background(), &domain.OwnerInput{
		Name:  "John Smith",
		Email: "john@x.com",
		Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if created.ID == "" || created.CreatedAt.Before(before) {
		t.Fatalf("unexpected owner: %+v", created)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "owners:all" {
		t.Fatalf("expected owners list eviction, got %v", cache.deleted)
	}
}

func TestCreateOwner_DuplicateEmail(t *testing.T) {
	owners := &fakeOwners{emailExists: true}
	c := app.NewCommandService(&fakeProps{}, owners, &fakeCache{})

	_, err := c.CreateOwner(context.Background(), &domain.OwnerInput{
		Name:  "John Smith",
		Email: "john@x.com",
		Phone: "555-0101",
	})
	var ce *domain.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(owners.inserted) != 0 {
		t.Fatalf("nothing should be persisted on conflict")
	}
}
