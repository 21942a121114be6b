package db

import (
	"context"
	"time"

	"brookside/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	UserCollection        *mongo.Collection
	ProductCollection     *mongo.Collection
	OrdersCollection      *mongo.Collection
	TourBookingCollection *mongo.Collection
	ContactCollection     *mongo.Collection
	NewsletterCollection  *mongo.Collection
)

// Connect dials MongoDB and wires the package collections. Called once
// from main with the loaded config; tests that need storage point this
// at their own database name.
func Connect(cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	database := client.Database(cfg.MongoDB)
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	OrdersCollection = database.Collection("orders")
	TourBookingCollection = database.Collection("tourbookings")
	ContactCollection = database.Collection("contactmessages")
	NewsletterCollection = database.Collection("subscribers")

	return ensureIndexes(ctx)
}

// ensureIndexes enforces the uniqueness invariants at the storage layer:
// user email, subscriber email, product SKU.
func ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = NewsletterCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = ProductCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: unique,
	})
	return err
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
