package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/soterkit/soter/pkg/validator"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Source binds a kind to a table and the column holding its identifier.
type Source struct {
	Kind     string
	Table    string // optionally schema qualified, e.g. "billing.teams"
	IDColumn string
}

// Table is shorthand for a Source literal.
func Table(kind, table, idColumn string) Source {
	return Source{Kind: kind, Table: table, IDColumn: idColumn}
}

// Query renders the statement used to fetch one row of the source.
func (s Source) Query() string {
	column := s.IDColumn
	if column == "" {
		column = "id"
	}
	return fmt.Sprintf(
		"SELECT row_to_json(t) FROM %s AS t WHERE t.%s = $1 LIMIT 1",
		pgx.Identifier(strings.Split(s.Table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)
}

// Store implements validator.Lookup on top of PostgreSQL.
type Store struct {
	db      Querier
	queries map[string]string
	timeout time.Duration
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithQueryTimeout bounds each lookup query.
func WithQueryTimeout(d time.Duration) StoreOption {
	return func(s *Store) { s.timeout = d }
}

// NewStore creates a Store resolving the given sources.
func NewStore(db Querier, sources ...Source) *Store {
	s := &Store{db: db, queries: make(map[string]string, len(sources))}
	for _, src := range sources {
		s.queries[src.Kind] = src.Query()
	}
	return s
}

// With applies options and returns the store.
func (s *Store) With(opts ...StoreOption) *Store {
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve fetches the row identified by id as a map of column to value.
// Missing rows and ids the column type cannot represent match
// validator.ErrNotFound.
func (s *Store) Resolve(ctx context.Context, kind, id string) (any, error) {
	query, ok := s.queries[kind]
	if !ok {
		return nil, errors.Join(validator.ErrUnknownKind, fmt.Errorf("%w: %s", ErrUnknownKind, kind))
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var data []byte
	if err := s.db.QueryRow(ctx, query, id).Scan(&data); err != nil {
		if IsNotFoundError(err) || IsInvalidValueError(err) {
			return nil, errors.Join(validator.ErrNotFound, err)
		}
		return nil, err
	}

	row := map[string]any{}
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, errors.Join(ErrFailedToDecodeRow, err)
	}
	return row, nil
}
