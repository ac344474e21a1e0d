package mongo

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// uuidSubtype is the standard BSON binary subtype for UUIDs.
const uuidSubtype = 0x04

// toMongo recursively prepares a value for storage or querying: maps and
// slices are walked, uuid.UUID becomes a BSON binary, and time values are
// pinned to UTC.
func toMongo(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(bson.M, len(v))
		for k, item := range v {
			out[k] = toMongo(item)
		}
		return out
	case bson.M:
		out := make(bson.M, len(v))
		for k, item := range v {
			out[k] = toMongo(item)
		}
		return out
	case []any:
		out := make(bson.A, len(v))
		for i, item := range v {
			out[i] = toMongo(item)
		}
		return out
	case bson.A:
		out := make(bson.A, len(v))
		for i, item := range v {
			out[i] = toMongo(item)
		}
		return out
	case uuid.UUID:
		return primitive.Binary{Subtype: uuidSubtype, Data: v[:]}
	case time.Time:
		return v.UTC()
	default:
		return value
	}
}

// fromMongo recursively normalizes a value read back from the driver:
// BSON maps and arrays become plain Go maps and slices, dates come back
// in UTC, and UUID binaries decode to uuid.UUID.
func fromMongo(value any) any {
	switch v := value.(type) {
	case bson.M:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = fromMongo(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = fromMongo(item)
		}
		return out
	case bson.A:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = fromMongo(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = fromMongo(item)
		}
		return out
	case primitive.DateTime:
		return v.Time().UTC()
	case time.Time:
		return v.UTC()
	case primitive.Binary:
		if v.Subtype == uuidSubtype && len(v.Data) == 16 {
			if u, err := uuid.FromBytes(v.Data); err == nil {
				return u
			}
		}
		return v
	default:
		return value
	}
}
