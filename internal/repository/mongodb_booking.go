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

// mongodbBookingRepository implements BookingRepository using MongoDB
type mongodbBookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a new MongoDB-based booking repository
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &mongodbBookingRepository{
		collection: db.Collection("bookings"),
	}
}

func (r *mongodbBookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	res, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Unique (date, time, stylist) index lost a race with another client.
			return domerr.ErrSlotTaken
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	return nil
}

func (r *mongodbBookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domerr.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *mongodbBookingRepository) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"reference": reference}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domerr.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *mongodbBookingRepository) ListPending(ctx context.Context) ([]*model.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *mongodbBookingRepository) CountPending(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *mongodbBookingRepository) SlotTaken(ctx context.Context, date, slot string, stylistID primitive.ObjectID) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{
		"date":       date,
		"time":       slot,
		"stylist_id": stylistID,
	}).Err()

	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

func (r *mongodbBookingRepository) BookedSlots(ctx context.Context, date string, stylistID primitive.ObjectID) ([]string, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"date": date, "stylist_id": stylistID},
		options.Find().SetProjection(bson.M{"time": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Time string `bson:"time"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(docs))
	for _, d := range docs {
		slots = append(slots, d.Time)
	}

	return slots, nil
}

// SetRewardOutcome only matches a booking whose outcome field is still empty,
// so the reveal transition commits at most once no matter how many times the
// client retries it.
func (r *mongodbBookingRepository) SetRewardOutcome(ctx context.Context, id primitive.ObjectID, outcome string) (bool, error) {
	updateResult := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":            id,
			"reward_outcome": "",
		},
		bson.M{"$set": bson.M{"reward_outcome": outcome}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetUpsert(false),
	)

	if updateResult.Err() != nil {
		if updateResult.Err() == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, updateResult.Err()
	}

	return true, nil
}

func (r *mongodbBookingRepository) DeleteAll(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}
