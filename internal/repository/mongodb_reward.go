package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salon-booking/internal/model"
	domerr "salon-booking/pkg/errors"
)

// mongodbRewardRepository implements RewardRepository using MongoDB
type mongodbRewardRepository struct {
	collection *mongo.Collection
}

// NewRewardRepository creates a new MongoDB-based reward repository
func NewRewardRepository(db *mongo.Database) RewardRepository {
	return &mongodbRewardRepository{
		collection: db.Collection("rewards"),
	}
}

func (r *mongodbRewardRepository) List(ctx context.Context) ([]*model.Reward, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rewards []*model.Reward
	if err := cursor.All(ctx, &rewards); err != nil {
		return nil, err
	}

	return rewards, nil
}

func (r *mongodbRewardRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Reward, error) {
	var reward model.Reward
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reward)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domerr.ErrRewardNotFound
		}
		return nil, err
	}

	return &reward, nil
}

func (r *mongodbRewardRepository) GetExempt(ctx context.Context) (*model.Reward, error) {
	var reward model.Reward
	err := r.collection.FindOne(ctx, bson.M{"exempt": true}).Decode(&reward)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domerr.ErrNoFallbackReward
		}
		return nil, err
	}

	return &reward, nil
}

func (r *mongodbRewardRepository) Insert(ctx context.Context, reward *model.Reward) error {
	res, err := r.collection.InsertOne(ctx, reward)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		reward.ID = oid
	}

	return nil
}

func (r *mongodbRewardRepository) UpdateLimits(ctx context.Context, id primitive.ObjectID, limits model.RewardLimits) error {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"limits": limits}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domerr.ErrRewardNotFound
	}

	return nil
}

// CompareAndSetDispensed is the optimistic half of the counter
// read-modify-write. The filter pins the version observed by the reader, so
// two concurrent dispensations can never both apply on the same base state;
// the loser re-reads and retries at the service layer.
func (r *mongodbRewardRepository) CompareAndSetDispensed(ctx context.Context, id primitive.ObjectID, version int64, dispensed model.RewardDispensed) error {
	updateResult := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":     id,
			"version": version,
		},
		bson.M{
			"$set": bson.M{"dispensed": dispensed},
			"$inc": bson.M{"version": 1},
		},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetUpsert(false),
	)

	if updateResult.Err() != nil {
		if updateResult.Err() == mongo.ErrNoDocuments {
			return domerr.ErrVersionConflict
		}
		return updateResult.Err()
	}

	return nil
}

func (r *mongodbRewardRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	// The exempt fallback is excluded from the filter so it can never be
	// removed, even by id.
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "exempt": false})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		var reward model.Reward
		if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reward); err == nil {
			return domerr.ErrRewardProtected
		}
		return domerr.ErrRewardNotFound
	}

	return nil
}

func (r *mongodbRewardRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
