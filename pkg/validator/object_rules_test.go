package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soterkit/soter/pkg/validator"
)

type ctxKey struct{}

type user struct {
	ID   string
	Name string
}

func userLookup(calls *int) validator.Lookup {
	return validator.LookupFunc(func(ctx context.Context, kind, id string) (any, error) {
		*calls++
		if kind != "user" {
			return nil, errors.New("unexpected kind " + kind)
		}
		if tenant, _ := ctx.Value(ctxKey{}).(string); tenant != "acme" {
			return nil, errors.New("missing tenant")
		}
		switch id {
		case "1":
			return &user{ID: "1", Name: "Ann"}, nil
		case "2":
			return nil, nil
		case "3":
			var missing *user
			return missing, nil
		case "500":
			return nil, errors.New("connection reset")
		}
		return nil, validator.ErrNotFound
	})
}

func TestObject(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), ctxKey{}, "acme")

	calls := 0
	v := validator.New(validator.WithLookup(userLookup(&calls)))
	rule := v.Object(ctx, "owner", "user")

	t.Run("resolves object", func(t *testing.T) {
		obj, err := rule.Require(validator.Input{"owner": "1"})
		require.NoError(t, err)
		assert.Equal(t, &user{ID: "1", Name: "Ann"}, obj)

		obj, err = rule.Require(validator.Input{"owner": 1})
		require.NoError(t, err)
		assert.Equal(t, &user{ID: "1", Name: "Ann"}, obj)
	})

	t.Run("not found", func(t *testing.T) {
		for _, id := range []string{"2", "3", "404"} {
			_, err := rule.Require(validator.Input{"owner": id})
			verr := requireCode(t, err, validator.CodeObjectNotFound)
			assert.Equal(t, "invalid ID", verr.Message)
		}
	})

	t.Run("unusable ids skip the lookup", func(t *testing.T) {
		before := calls
		for _, raw := range []any{"", []any{"1"}, map[string]any{"id": "1"}} {
			_, err := rule.Require(validator.Input{"owner": raw})
			requireCode(t, err, validator.CodeObjectNotFound)
		}
		assert.Equal(t, before, calls)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := rule.Require(validator.Input{})
		requireCode(t, err, validator.CodeObjectMissing)
	})

	t.Run("lookup failure surfaces from require only", func(t *testing.T) {
		in := validator.Input{"owner": "500"}
		_, err := rule.Require(in)
		require.ErrorIs(t, err, validator.ErrLookupFailed)
		assert.False(t, validator.IsValidationError(err))
		assert.False(t, validator.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "connection reset")

		assert.NotPanics(t, func() {
			_, ok := rule.Has(in)
			assert.False(t, ok)
		})
		fallback := &user{ID: "0"}
		assert.Equal(t, fallback, rule.Include(in, fallback))
	})

	t.Run("include and into", func(t *testing.T) {
		fallback := &user{ID: "0"}
		assert.Equal(t, fallback, rule.Include(validator.Input{"owner": "404"}, fallback))

		var dst any = "unchanged"
		assert.False(t, rule.Into(validator.Input{"owner": "404"}, &dst))
		assert.Equal(t, "unchanged", dst)
		assert.True(t, rule.Into(validator.Input{"owner": "1"}, &dst))
		assert.Equal(t, &user{ID: "1", Name: "Ann"}, dst)
	})
}

func TestObject_Context(t *testing.T) {
	t.Parallel()

	calls := 0
	v := validator.New(validator.WithLookup(userLookup(&calls)))
	rule := v.Object(context.Background(), "owner", "user")
	in := validator.Input{"owner": "1"}

	t.Run("context is read when the rule runs", func(t *testing.T) {
		_, err := rule.Require(in)
		require.ErrorIs(t, err, validator.ErrLookupFailed)

		ctx := context.WithValue(context.Background(), ctxKey{}, "acme")
		obj, err := rule.WithContext(ctx).Require(in)
		require.NoError(t, err)
		assert.Equal(t, &user{ID: "1", Name: "Ann"}, obj)

		_, err = rule.Require(in)
		assert.ErrorIs(t, err, validator.ErrLookupFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		lv := validator.New(validator.WithLookup(validator.LookupFunc(func(ctx context.Context, kind, id string) (any, error) {
			return nil, ctx.Err()
		})))
		cancelled := lv.Object(ctx, "owner", "user")

		_, err := cancelled.Require(in)
		require.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, validator.ErrLookupFailed)

		assert.NotPanics(t, func() {
			assert.Equal(t, "default", cancelled.Include(in, "default"))
			var dst any = "unchanged"
			assert.False(t, cancelled.Into(in, &dst))
			assert.Equal(t, "unchanged", dst)
		})
	})
}

func TestObject_WithoutLookup(t *testing.T) {
	t.Parallel()

	rule := validator.New().Object(context.Background(), "owner", "user")
	_, err := rule.Require(validator.Input{"owner": "1"})
	assert.ErrorIs(t, err, validator.ErrLookupNotConfigured)

	_, err = rule.Require(validator.Input{})
	assert.ErrorIs(t, err, validator.ErrLookupNotConfigured)

	assert.Panics(t, func() { rule.Include(validator.Input{"owner": "1"}, nil) })
}
