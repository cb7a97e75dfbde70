// Package pg resolves Object rule identifiers against PostgreSQL tables.
//
// Each kind maps to a table and an identifier column. A row is returned
// as a map[string]any built from row_to_json, so every column of the
// table is available to the caller:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := pg.NewStore(pool,
//	    pg.Table("user", "users", "id"),
//	    pg.Table("team", "billing.teams", "slug"),
//	)
//	v := validator.New(validator.WithLookup(store))
//
// Table and column names are quoted with pgx.Identifier; the identifier
// value is always passed as a query argument.
package pg
