package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"salon-booking/internal/model"
	domerr "salon-booking/pkg/errors"
)

// mongodbServiceRepository implements ServiceRepository using MongoDB
type mongodbServiceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository creates a new MongoDB-based treatment catalog repository
func NewServiceRepository(db *mongo.Database) ServiceRepository {
	return &mongodbServiceRepository{
		collection: db.Collection("services"),
	}
}

func (r *mongodbServiceRepository) List(ctx context.Context) ([]*model.SalonService, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []*model.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *mongodbServiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.SalonService, error) {
	var svc model.SalonService
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domerr.ErrServiceNotFound
		}
		return nil, err
	}

	return &svc, nil
}

func (r *mongodbServiceRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.SalonService, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []*model.SalonService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *mongodbServiceRepository) Insert(ctx context.Context, svc *model.SalonService) error {
	res, err := r.collection.InsertOne(ctx, svc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		svc.ID = oid
	}

	return nil
}

func (r *mongodbServiceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domerr.ErrServiceNotFound
	}

	return nil
}

func (r *mongodbServiceRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// mongodbStylistRepository implements StylistRepository using MongoDB
type mongodbStylistRepository struct {
	collection *mongo.Collection
}

// NewStylistRepository creates a new MongoDB-based staff roster repository
func NewStylistRepository(db *mongo.Database) StylistRepository {
	return &mongodbStylistRepository{
		collection: db.Collection("stylists"),
	}
}

func (r *mongodbStylistRepository) List(ctx context.Context) ([]*model.Stylist, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stylists []*model.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, err
	}

	return stylists, nil
}

func (r *mongodbStylistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Stylist, error) {
	var stylist model.Stylist
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&stylist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domerr.ErrStylistNotFound
		}
		return nil, err
	}

	return &stylist, nil
}

func (r *mongodbStylistRepository) Insert(ctx context.Context, stylist *model.Stylist) error {
	res, err := r.collection.InsertOne(ctx, stylist)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stylist.ID = oid
	}

	return nil
}

func (r *mongodbStylistRepository) Update(ctx context.Context, stylist *model.Stylist) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": stylist.ID}, stylist)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domerr.ErrStylistNotFound
	}

	return nil
}

func (r *mongodbStylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domerr.ErrStylistNotFound
	}

	return nil
}

func (r *mongodbStylistRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
