package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Filter is a plain query document. Values are converted recursively
// before reaching the driver, so filters may carry uuid.UUID and
// time.Time values directly.
type Filter = map[string]any

// Collection is a typed wrapper over a driver collection: documents go in
// and come out as T, filters and updates are converted with the package's
// value conversion rules.
type Collection[T any] struct {
	coll *mongodrv.Collection
}

// NewCollection wraps a driver collection.
func NewCollection[T any](coll *mongodrv.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

// C returns the underlying driver collection for operations the wrapper
// does not cover.
func (c *Collection[T]) C() *mongodrv.Collection { return c.coll }

// InsertOne inserts one document.
func (c *Collection[T]) InsertOne(ctx context.Context, doc T) (*mongodrv.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, doc)
}

// InsertMany inserts documents in order.
func (c *Collection[T]) InsertMany(ctx context.Context, docs []T) (*mongodrv.InsertManyResult, error) {
	items := make([]interface{}, len(docs))
	for i, d := range docs {
		items[i] = d
	}
	return c.coll.InsertMany(ctx, items)
}

// FindOne returns the first document matching filter, or nil when there
// is no match.
func (c *Collection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	res := c.coll.FindOne(ctx, toMongo(filter))

	var doc T
	err := res.Decode(&doc)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Find returns every document matching filter.
func (c *Collection[T]) Find(ctx context.Context, filter Filter) ([]T, error) {
	cur, err := c.coll.Find(ctx, toMongo(filter))
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindOneRaw returns the first matching document as a plain map with BSON
// types normalized (dates in UTC, UUID binaries decoded), or nil when
// there is no match.
func (c *Collection[T]) FindOneRaw(ctx context.Context, filter Filter) (map[string]any, error) {
	res := c.coll.FindOne(ctx, toMongo(filter))

	var raw bson.M
	err := res.Decode(&raw)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromMongo(raw).(map[string]any), nil
}

// UpdateOne updates the first document matching filter.
func (c *Collection[T]) UpdateOne(ctx context.Context, filter Filter, update map[string]any, opts ...*options.UpdateOptions) (*mongodrv.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, toMongo(filter), toMongo(update), opts...)
}

// UpdateMany updates every document matching filter.
func (c *Collection[T]) UpdateMany(ctx context.Context, filter Filter, update map[string]any, opts ...*options.UpdateOptions) (*mongodrv.UpdateResult, error) {
	return c.coll.UpdateMany(ctx, toMongo(filter), toMongo(update), opts...)
}

// DeleteOne deletes the first document matching filter.
func (c *Collection[T]) DeleteOne(ctx context.Context, filter Filter) (*mongodrv.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, toMongo(filter))
}

// DeleteMany deletes every document matching filter.
func (c *Collection[T]) DeleteMany(ctx context.Context, filter Filter) (*mongodrv.DeleteResult, error) {
	return c.coll.DeleteMany(ctx, toMongo(filter))
}
