package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
)

func connectDB() *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().
		ApplyURI(EnvMongoURI()).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatal(err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Connected to MongoDB")

	return c
}

// DB returns the shared client, dialing on first use so that importing
// a controller package does not open a connection.
func DB() *mongo.Client {
	clientOnce.Do(func() {
		client = connectDB()
	})
	return client
}

func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database("phonemania").Collection(collectionName)
}
