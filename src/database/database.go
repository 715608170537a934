package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	// Document-store collections. Employees carry the office assignment used
	// for access decisions; page configurations hold the authored form schemas.
	EmployeeCollection   *mongo.Collection
	PageConfigCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once per process.
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB ping failed:", connectErr)
			return
		}

		log.Println("MongoDB connected")

		EmployeeCollection = GetCollection("OfficeReportsDB", "employees")
		PageConfigCollection = GetCollection("OfficeReportsDB", "page_configurations")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
