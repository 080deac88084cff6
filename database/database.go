package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikita1503agarwal/umkm-attendance-api/config"
)

// Collection names used by the API.
const (
	CollAttendance = "attendance"
	CollUmkm       = "umkm"
)

// ErrUnavailable marks operations attempted without a configured storage
// connection.
var ErrUnavailable = errors.New("storage not configured")

// Store is the document-store contract the handlers depend on. Collections
// are schemaless; every insert is independent.
type Store interface {
	// Insert persists doc into the named collection and returns the
	// generated identifier as a string.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Find returns all documents matching filter; a nil or empty filter
	// means "all". Returned documents keep their _id and stored fields.
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	// CollectionNames lists known collections. Diagnostics only.
	CollectionNames(ctx context.Context) ([]string, error)
}

const connectTimeout = 10 * time.Second

// Mongo is the production Store backed by a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the shared Mongo store from the environment config.
// Missing DATABASE_URL/DATABASE_NAME yields ErrUnavailable; the caller
// decides whether to keep serving. A server that is configured but not
// reachable still gets a client: the driver connects lazily and individual
// operations surface the failure (which /test reports as degraded).
func Connect(cfg *config.Config) (*Mongo, error) {
	if cfg.DatabaseURL == "" || cfg.DatabaseName == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL or DATABASE_NAME not set", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("mongodb ping failed: %v (operations will fail until the server is reachable)", err)
	} else {
		log.Printf("connected to mongodb database %q", cfg.DatabaseName)
	}
	return &Mongo{client: client, db: client.Database(cfg.DatabaseName)}, nil
}

// Close releases the underlying client. The server relies on process exit
// instead; this exists for one-shot commands.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (m *Mongo) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return docs, nil
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
