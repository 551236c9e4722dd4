package document

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicdir/directory-data-service/internal/system/log"
)

// DocumentDB holds the client and database handle for the draft document store.
type DocumentDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	documentInstance *DocumentDB
	once             sync.Once
)

// Connect initializes the global document store connection.
func Connect(uri, dbName string) *DocumentDB {
	once.Do(func() {
		logger := log.GetLogger()

		clientOptions := options.Client().ApplyURI(uri)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			logger.Fatal("Document store connection failed", log.Error(err))
		}

		// Ping to ensure connection is live
		if err := client.Ping(ctx, nil); err != nil {
			logger.Fatal("Document store ping failed", log.Error(err))
		}

		documentInstance = &DocumentDB{
			Client:   client,
			Database: client.Database(dbName),
		}
	})

	return documentInstance
}

// GetInstance returns the document store instance.
func GetInstance() *DocumentDB {
	return documentInstance
}
