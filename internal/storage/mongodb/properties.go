package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realestate_api/internal/domain"
)

type propertyDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"idOwner"`
	Name      string             `bson:"name"`
	Address   string             `bson:"address"`
	Price     float64            `bson:"price"`
	Image     string             `bson:"image"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d propertyDoc) toDomain() domain.Property {
	return domain.Property{
		ID:        d.ID.Hex(),
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Address:   d.Address,
		Price:     d.Price,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type PropertyRepo struct{ col *mongo.Collection }

func NewPropertyRepo(db *mongo.Database) *PropertyRepo {
	return &PropertyRepo{col: db.Collection(propertiesCollection)}
}

func (r *PropertyRepo) Insert(ctx context.Context, p domain.Property) (domain.Property, error) {
	doc := propertyDoc{
		ID:        primitive.NewObjectID(),
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Address:   p.Address,
		Price:     p.Price,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Property{}, &domain.ConflictError{Message: "a property with this name already exists for this owner"}
		}
		return domain.Property{}, err
	}
	return doc.toDomain(), nil
}

// Update replaces the mutable fields via $set, so createdAt survives every
// update untouched. Returns the post-update document.
func (r *PropertyRepo) Update(ctx context.Context, id string, p domain.Property) (domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Property{}, domain.ErrNotFound
	}
	var doc propertyDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"idOwner":   p.OwnerID,
			"name":      p.Name,
			"address":   p.Address,
			"price":     p.Price,
			"image":     p.Image,
			"updatedAt": p.UpdatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Property{}, domain.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return domain.Property{}, &domain.ConflictError{Message: "a property with this name already exists for this owner"}
		}
		return domain.Property{}, err
	}
	return doc.toDomain(), nil
}

func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepo) Get(ctx context.Context, id string) (domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed ids are indistinguishable from missing records
		return domain.Property{}, domain.ErrNotFound
	}
	var doc propertyDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, err
	}
	return doc.toDomain(), nil
}

func (r *PropertyRepo) List(ctx context.Context) ([]domain.Property, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// Search applies the translated filter with newest-first ordering before the
// skip/limit window, keeping pages stable between calls absent concurrent
// writes.
func (r *PropertyRepo) Search(ctx context.Context, f domain.PropertyFilter, pg domain.PageQuery) ([]domain.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(pg.Offset())).
		SetLimit(int64(pg.PageSize))
	return r.find(ctx, searchFilter(f), opts)
}

func (r *PropertyRepo) Count(ctx context.Context, f domain.PropertyFilter) (int64, error) {
	return r.col.CountDocuments(ctx, searchFilter(f))
}

func (r *PropertyRepo) ExistsNameOwner(ctx context.Context, name, ownerID string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"name": name, "idOwner": ownerID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PropertyRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Property, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []propertyDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
