package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salon-booking/internal/model"
)

// mongodbClosureRepository implements ClosureRepository using MongoDB
type mongodbClosureRepository struct {
	collection *mongo.Collection
}

// NewClosureRepository creates a new MongoDB-based closure repository
func NewClosureRepository(db *mongo.Database) ClosureRepository {
	return &mongodbClosureRepository{
		collection: db.Collection("closures"),
	}
}

func (r *mongodbClosureRepository) Insert(ctx context.Context, closure *model.Closure) error {
	res, err := r.collection.InsertOne(ctx, closure)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		closure.ID = oid
	}

	return nil
}

func (r *mongodbClosureRepository) List(ctx context.Context) ([]*model.Closure, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "closed_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var closures []*model.Closure
	if err := cursor.All(ctx, &closures); err != nil {
		return nil, err
	}

	return closures, nil
}
