package initializers

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client is nil when MONGODB_URI is absent or the initial connect fails.
// Services treat a nil collection handle as the unconfigured state and
// answer with ErrDatabaseUnavailable instead of crashing, so the server
// still runs for local demos without credentials.
var Client *mongo.Client

const productCollection = "MobileData"

func ConnectToDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Println("Warning: MONGODB_URI is not set. Database operations will not work.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Println("Warning: could not connect to MongoDB:", err)
		return
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Warning: MongoDB ping failed:", err)
		return
	}

	Client = client
	log.Println("Connected to MongoDB.")
}

func databaseName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "defaultDB"
}

// ProductCollection returns the products collection, or nil when the
// database is unconfigured.
func ProductCollection() *mongo.Collection {
	if Client == nil {
		return nil
	}
	return Client.Database(databaseName()).Collection(productCollection)
}

// UserCollection returns the users collection, or nil when the database is
// unconfigured.
func UserCollection() *mongo.Collection {
	if Client == nil {
		return nil
	}
	return Client.Database(databaseName()).Collection("users")
}
