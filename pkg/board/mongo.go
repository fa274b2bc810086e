package board

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brandsmith/moodgrid/pkg/errors"
)

// MongoSource serves tiles from a MongoDB collection. It backs server
// deployments where brand content is shared between editors; CLI use
// sticks to file sources.
//
// Documents use the tile's bson tags: {id, type, content}. Tiles are
// returned in insertion order so type-based fallback stays stable.
type MongoSource struct {
	coll *mongo.Collection
}

// NewMongoSource connects to MongoDB and targets database/collection.
// The caller owns the context deadline for the initial ping.
func NewMongoSource(ctx context.Context, uri, database, collection string) (*MongoSource, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}
	return &MongoSource{coll: client.Database(database).Collection(collection)}, nil
}

// Tiles fetches all tiles in insertion order.
func (s *MongoSource) Tiles(ctx context.Context) ([]Tile, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "query tiles")
	}
	defer cur.Close(ctx)

	var tiles []Tile
	if err := cur.All(ctx, &tiles); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode tiles")
	}
	return tiles, nil
}

// Put upserts a tile by id.
func (s *MongoSource) Put(ctx context.Context, t Tile) error {
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "id", Value: t.ID}},
		bson.D{{Key: "$set", Value: t}},
		options.Update().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "upsert tile %s", t.ID)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}

var _ Source = (*MongoSource)(nil)
