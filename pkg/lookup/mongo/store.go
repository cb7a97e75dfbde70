package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/soterkit/soter/pkg/validator"
)

// Finder fetches a single document matching filter.
type Finder interface {
	FindOne(ctx context.Context, filter any) (bson.M, error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(ctx context.Context, filter any) (bson.M, error)

func (f FinderFunc) FindOne(ctx context.Context, filter any) (bson.M, error) {
	return f(ctx, filter)
}

// CollectionFinder wraps a driver collection.
func CollectionFinder(coll *mongo.Collection) Finder {
	return FinderFunc(func(ctx context.Context, filter any) (bson.M, error) {
		var doc bson.M
		if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
}

// Source binds a kind to a collection and the field holding its identifier.
type Source struct {
	Kind   string
	Finder Finder
	Field  string
}

// Collection is shorthand for a Source over a driver collection. An
// empty field means "_id".
func Collection(kind string, coll *mongo.Collection, field string) Source {
	return Source{Kind: kind, Finder: CollectionFinder(coll), Field: field}
}

// Store implements validator.Lookup on top of MongoDB.
type Store struct {
	sources map[string]Source
}

// NewStore creates a Store resolving the given sources.
func NewStore(sources ...Source) *Store {
	s := &Store{sources: make(map[string]Source, len(sources))}
	for _, src := range sources {
		if src.Field == "" {
			src.Field = "_id"
		}
		s.sources[src.Kind] = src
	}
	return s
}

// Resolve fetches the document identified by id. mongo.ErrNoDocuments
// matches validator.ErrNotFound.
func (s *Store) Resolve(ctx context.Context, kind, id string) (any, error) {
	src, ok := s.sources[kind]
	if !ok {
		return nil, errors.Join(validator.ErrUnknownKind, fmt.Errorf("%w: %s", ErrUnknownKind, kind))
	}

	doc, err := src.Finder.FindOne(ctx, Filter(src.Field, id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Join(validator.ErrNotFound, err)
		}
		return nil, err
	}
	if doc == nil {
		return nil, validator.ErrNotFound
	}
	return doc, nil
}

// Filter builds the query for an identifier. An "_id" lookup with a
// valid ObjectID hex string matches both representations.
func Filter(field, id string) bson.D {
	if field == "_id" {
		if oid, err := bson.ObjectIDFromHex(id); err == nil {
			return bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: bson.A{oid, id}}}}}
		}
	}
	return bson.D{{Key: field, Value: id}}
}
