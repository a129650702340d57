package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sunnyyao/crocheo-blog/pkg/cache"
	"github.com/sunnyyao/crocheo-blog/pkg/errors"
)

const (
	defaultDatabase   = "crocheo"
	defaultCollection = "patterns"
	connectTimeout    = 10 * time.Second
)

// MongoConfig configures the MongoDB store.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name (default "crocheo").
	Database string
}

// MongoStore persists documents in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
// Transient connection failures are retried with backoff.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo uri is required")
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongo")
	}

	err = cache.RetryWithBackoff(connectCtx, func() error {
		if err := client.Ping(connectCtx, nil); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongo")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(defaultCollection),
	}, nil
}

// Get retrieves a document by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*Document, error) {
	var doc Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, NotFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get pattern %s", id)
	}
	return &doc, nil
}

// List returns all documents, newest first.
func (s *MongoStore) List(ctx context.Context) ([]*Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list patterns")
	}
	defer cur.Close(ctx)

	docs := []*Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode patterns")
	}
	return docs, nil
}

// Save inserts or replaces a document.
func (s *MongoStore) Save(ctx context.Context, doc *Document) error {
	doc.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save pattern %s", doc.ID)
	}
	return nil
}

// Delete removes a document.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete pattern %s", id)
	}
	if res.DeletedCount == 0 {
		return NotFound(id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
