// Package mongo provides a MongoDB client wrapper whose configuration is
// declared and resolved through the envbind schema engine.
//
// Underlying driver clients are cached per configuration, so every Client
// built from the same Config shares one connection pool. The typed
// Collection wrapper converts filter and update documents recursively
// (UUIDs to BSON binaries, times pinned to UTC) on the way in, and
// normalizes BSON types back to plain Go values on the way out.
//
// # Usage
//
//	s, _ := mongo.ConfigSchema()
//	_ = schema.Register(s)
//	resolved, err := resolve.Load("Mongo")
//	client, err := mongo.New(mongo.FromResolved(resolved), log)
//	db, err := client.Database(ctx)
//	users := mongo.NewCollection[User](db.Collection("users"))
package mongo
