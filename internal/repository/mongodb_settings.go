package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salon-booking/internal/model"
)

const settingsDocID = "salon"

// mongodbSettingsRepository implements SettingsRepository using MongoDB
type mongodbSettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new MongoDB-based settings repository
func NewSettingsRepository(db *mongo.Database) SettingsRepository {
	return &mongodbSettingsRepository{
		collection: db.Collection("settings"),
	}
}

func (r *mongodbSettingsRepository) Load(ctx context.Context, defaults model.Settings) (*model.Settings, error) {
	defaults.ID = settingsDocID

	var settings model.Settings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"$setOnInsert": defaults},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *mongodbSettingsRepository) Update(ctx context.Context, threshold *int64, password *string) (*model.Settings, error) {
	set := bson.M{}
	if threshold != nil {
		set["threshold_cents"] = *threshold
	}
	if password != nil {
		set["admin_password"] = *password
	}
	if len(set) == 0 {
		return r.get(ctx)
	}

	var settings model.Settings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": settingsDocID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *mongodbSettingsRepository) get(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := r.collection.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
