package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists summaries in a MongoDB collection with a unique
// index on episodeId. Connections are scoped to a single operation and
// never held across calls, so concurrent callers need no extra locking:
// the unique index arbitrates concurrent upserts for the same key.
type MongoStore struct {
	URI        string
	Database   string
	Collection string
}

func NewMongoStore(uri, database, collection string) *MongoStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStore{URI: uri, Database: database, Collection: collection}
}

func (s *MongoStore) SaveSummary(ctx context.Context, in Summary) error {
	if in.EpisodeID == "" {
		return fmt.Errorf("%w: episodeId is required", ErrStorage)
	}

	return s.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		now := time.Now().UTC()
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		createdAt := in.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		update := bson.M{
			"$set": bson.M{
				"id":        id,
				"episodeId": in.EpisodeID,
				"summary":   in.Summary,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"createdAt": createdAt,
			},
		}
		_, err := coll.UpdateOne(ctx,
			bson.M{"episodeId": in.EpisodeID},
			update,
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("%w: save: %s", ErrStorage, err)
		}
		return nil
	})
}

func (s *MongoStore) GetSummary(ctx context.Context, episodeID string) (Summary, bool, error) {
	var out Summary
	var found bool

	err := s.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		err := coll.FindOne(ctx, bson.M{"episodeId": episodeID}).Decode(&out)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: get: %s", ErrStorage, err)
		}
		found = true
		return nil
	})
	if err != nil {
		return Summary{}, false, err
	}
	return out, found, nil
}

func (s *MongoStore) GetAllSummaries(ctx context.Context) ([]Summary, error) {
	var out []Summary

	err := s.withCollection(ctx, func(ctx context.Context, coll *mongo.Collection) error {
		cursor, err := coll.Find(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("%w: list: %s", ErrStorage, err)
		}
		defer cursor.Close(ctx)

		if err := cursor.All(ctx, &out); err != nil {
			return fmt.Errorf("%w: decode: %s", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Summary{}
	}
	return out, nil
}

// withCollection connects, ensures the unique index (idempotent), runs fn
// and disconnects.
func (s *MongoStore) withCollection(ctx context.Context, fn func(context.Context, *mongo.Collection) error) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.URI))
	if err != nil {
		return fmt.Errorf("%w: connect: %s", ErrStorage, err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	coll := client.Database(s.Database).Collection(s.Collection)
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "episodeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("%w: ensure index: %s", ErrStorage, err)
	}
	return fn(ctx, coll)
}
