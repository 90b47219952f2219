package gallery

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/colplot/pkg/errors"
)

// Mongo connection defaults.
const (
	// DefaultMongoURI is the default MongoDB connection string.
	DefaultMongoURI = "mongodb://localhost:27017"

	// DefaultMongoDatabase is the default database name.
	DefaultMongoDatabase = "colplot"

	// DefaultMongoCollection is the default collection name.
	DefaultMongoCollection = "figures"
)

// MongoConfig configures a MongoStore.
type MongoConfig struct {
	URI        string // connection string
	Database   string // database name
	Collection string // collection name
}

// MongoStore is a MongoDB-backed gallery store for server deployments,
// where records must survive restarts and be shared across instances.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		cfg.URI = DefaultMongoURI
	}
	if cfg.Database == "" {
		cfg.Database = DefaultMongoDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultMongoCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Put saves a record, replacing any existing record with the same ID.
func (s *MongoStore) Put(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "record must have an ID")
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "put figure %q", rec.ID)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeFigureNotFound, "figure %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get figure %q", id)
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *MongoStore) List(ctx context.Context) ([]*Record, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list figures")
	}
	defer cur.Close(ctx)

	recs := []*Record{}
	if err := cur.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode figures")
	}
	return recs, nil
}

// Delete removes a record by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete figure %q", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeFigureNotFound, "figure %q not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
