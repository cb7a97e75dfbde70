// Package mongo resolves Object rule identifiers against MongoDB
// collections.
//
// A kind maps to a collection and the field holding the identifier
// ("_id" by default). For "_id", identifiers that are valid ObjectID hex
// strings match either the ObjectID or the literal string:
//
//	db, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := mongo.NewStore(
//	    mongo.Collection("event", db.Collection("events"), ""),
//	    mongo.Collection("device", db.Collection("devices"), "serial"),
//	)
//
// Documents are returned as bson.M.
package mongo
