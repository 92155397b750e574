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

type ownerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d ownerDoc) toDomain() domain.Owner {
	return domain.Owner{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt,
	}
}

type OwnerRepo struct{ col *mongo.Collection }

func NewOwnerRepo(db *mongo.Database) *OwnerRepo {
	return &OwnerRepo{col: db.Collection(ownersCollection)}
}

func (r *OwnerRepo) Insert(ctx context.Context, o domain.Owner) (domain.Owner, error) {
	doc := ownerDoc{
		ID:        primitive.NewObjectID(),
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		CreatedAt: o.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Owner{}, &domain.ConflictError{Message: "an owner with this email already exists"}
		}
		return domain.Owner{}, err
	}
	return doc.toDomain(), nil
}

func (r *OwnerRepo) Get(ctx context.Context, id string) (domain.Owner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Owner{}, domain.ErrNotFound
	}
	var doc ownerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Owner{}, domain.ErrNotFound
		}
		return domain.Owner{}, err
	}
	return doc.toDomain(), nil
}

func (r *OwnerRepo) List(ctx context.Context) ([]domain.Owner, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []ownerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Owner, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *OwnerRepo) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *OwnerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
