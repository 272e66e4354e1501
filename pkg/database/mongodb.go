package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes a connection to MongoDB
func Connect(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	clientOptions := options.Client().ApplyURI(uri)

	// Set connection timeout
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)

	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
	}

	// Create indexes
	if err := mongoDB.CreateIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongoDB, nil
}

// CreateIndexes creates all necessary indexes for the application
func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	// Create unique compound index on bookings(date, time, stylist_id)
	// This prevents double-booking a slot even under concurrent requests
	bookingsCollection := m.Database.Collection("bookings")
	slotIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
			{Key: "stylist_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("booking_slot_unique"),
	}
	if _, err := bookingsCollection.Indexes().CreateOne(ctx, slotIndex); err != nil {
		return fmt.Errorf("failed to create booking slot index: %w", err)
	}

	// Create unique index on the client-facing reference code
	referenceIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "reference", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("booking_reference_unique"),
	}
	if _, err := bookingsCollection.Indexes().CreateOne(ctx, referenceIndex); err != nil {
		return fmt.Errorf("failed to create booking reference index: %w", err)
	}

	// Create index on rewards.exempt for the fallback lookup
	rewardsCollection := m.Database.Collection("rewards")
	exemptIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "exempt", Value: 1}},
		Options: options.Index().SetName("reward_exempt_index"),
	}
	if _, err := rewardsCollection.Indexes().CreateOne(ctx, exemptIndex); err != nil {
		return fmt.Errorf("failed to create reward exempt index: %w", err)
	}

	// Create index on closures.closed_at for listing most recent first
	closuresCollection := m.Database.Collection("closures")
	closedAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "closed_at", Value: -1}},
		Options: options.Index().SetName("closure_closed_at_index"),
	}
	if _, err := closuresCollection.Indexes().CreateOne(ctx, closedAtIndex); err != nil {
		return fmt.Errorf("failed to create closure closed_at index: %w", err)
	}

	return nil
}

// Disconnect closes the MongoDB connection
func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
