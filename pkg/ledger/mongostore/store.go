package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/namekit/pkg/ledger"
)

const defaultCollection = "name_ledger"

// Store is a MongoDB-backed ledger.Store. Uniqueness is enforced by a unique
// index on the key field, so concurrent inserts of the same key surface as
// ledger.ErrDuplicateKey instead of silent double-claims.
type Store struct {
	coll *mongo.Collection
}

// Option configures a Store.
type Option func(*config)

type config struct {
	collection string
}

// WithCollection overrides the collection name (default "name_ledger").
func WithCollection(name string) Option {
	return func(c *config) {
		if name != "" {
			c.collection = name
		}
	}
}

// New creates a Store on the given database.
func New(db *mongo.Database, opts ...Option) *Store {
	cfg := &config{collection: defaultCollection}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Store{coll: db.Collection(cfg.collection)}
}

// EnsureIndexes creates the unique key index. Call once at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) Get(ctx context.Context, key string) (*ledger.Entry, error) {
	var entry ledger.Entry
	err := s.coll.FindOne(ctx, bson.M{"key": key}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Store) Add(ctx context.Context, entry *ledger.Entry) error {
	_, err := s.coll.InsertOne(ctx, entry)
	if mongo.IsDuplicateKeyError(err) {
		return ledger.ErrDuplicateKey
	}
	return err
}

func (s *Store) Release(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := s.coll.UpdateMany(ctx,
		bson.M{"key": bson.M{"$in": keys}, "released": false},
		bson.M{"$set": bson.M{"released": true, "released_at": time.Now()}},
	)
	return err
}
