// Package lookup provides implementations of validator.Lookup, the
// collaborator Object rules use to resolve an identifier into the object
// it names.
//
// Backends live in subpackages (pg for PostgreSQL tables, mongo for
// MongoDB collections). This package composes them:
//
//   - Router dispatches each kind to the backend that owns it.
//   - Cached puts a Cache in front of any Lookup.
//   - MemoryCache is a bounded in-process cache with expiry.
//   - RedisCache shares cached objects between processes.
//
// Example:
//
//	store := pg.NewStore(pool, pg.Table("user", "users", "id"))
//	cache := lookup.NewMemoryCache(1024, time.Minute)
//	v := validator.New(validator.WithLookup(lookup.Cached(store, cache)))
//
//	user, err := v.Object(ctx, "user_id", "user").Require(in)
//
// Only found objects are cached, so an id that becomes valid is picked up
// on the next call.
package lookup
