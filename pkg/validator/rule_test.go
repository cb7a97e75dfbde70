package validator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soterkit/soter/pkg/validator"
)

func TestRule_Conventions(t *testing.T) {
	t.Parallel()
	v := validator.New()
	in := validator.Input{"good": "42", "bad": "x"}

	t.Run("include returns value or default", func(t *testing.T) {
		assert.Equal(t, int64(42), v.Int("good", 0, 100).Include(in, 7))
		assert.Equal(t, int64(7), v.Int("bad", 0, 100).Include(in, 7))
		assert.Equal(t, int64(7), v.Int("missing", 0, 100).Include(in, 7))
	})

	t.Run("has reports presence", func(t *testing.T) {
		n, ok := v.Int("good", 0, 100).Has(in)
		assert.True(t, ok)
		assert.Equal(t, int64(42), n)

		n, ok = v.Int("bad", 0, 100).Has(in)
		assert.False(t, ok)
		assert.Zero(t, n)
	})

	t.Run("into leaves destination untouched on failure", func(t *testing.T) {
		dst := int64(-1)
		assert.False(t, v.Int("bad", 0, 100).Into(in, &dst))
		assert.Equal(t, int64(-1), dst)

		assert.True(t, v.Int("good", 0, 100).Into(in, &dst))
		assert.Equal(t, int64(42), dst)
	})

	t.Run("conventions agree", func(t *testing.T) {
		for _, field := range []string{"good", "bad", "missing"} {
			rule := v.Int(field, 0, 100)
			val, err := rule.Require(in)
			hasVal, ok := rule.Has(in)
			assert.Equal(t, err == nil, ok, field)
			assert.Equal(t, val, hasVal, field)
			if err == nil {
				assert.Equal(t, val, rule.Include(in, 99), field)
			} else {
				assert.Equal(t, int64(99), rule.Include(in, 99), field)
			}
		}
	})
}

func TestRule_ConfigurationErrorsPanic(t *testing.T) {
	t.Parallel()
	v := validator.New()
	in := validator.Input{"code": "abc", "owner": "1"}

	badPattern := v.Regex("code", "[")
	_, err := badPattern.Require(in)
	require.ErrorIs(t, err, validator.ErrInvalidPattern)
	assert.False(t, validator.IsValidationError(err))

	assert.Panics(t, func() { badPattern.Include(in, nil) })
	assert.Panics(t, func() { badPattern.Has(in) })
	assert.Panics(t, func() {
		var dst []string
		badPattern.Into(in, &dst)
	})

	noLookup := v.Object(context.Background(), "owner", "user")
	_, err = noLookup.Require(in)
	assert.ErrorIs(t, err, validator.ErrLookupNotConfigured)
	assert.Panics(t, func() { noLookup.Include(in, nil) })
}

func TestRule_Idempotent(t *testing.T) {
	t.Parallel()
	v := validator.New()
	in := validator.Input{
		"name": "  Jane  ",
		"tags": []any{"a", "b"},
	}

	rule := v.String("name", 1, 10)
	first, err1 := rule.Require(in)
	second, err2 := rule.Require(in)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	assert.Equal(t, "  Jane  ", in["name"])

	tags, err := v.List("tags", 2).Require(in)
	require.NoError(t, err)
	tags[0] = "changed"
	assert.Equal(t, []any{"a", "b"}, in["tags"])

	_, errA := v.Int("name", 0, 1).Require(in)
	_, errB := v.Int("name", 0, 1).Require(in)
	assert.Equal(t, errA, errB)
}

func TestRule_IdempotentOnOwnOutput(t *testing.T) {
	t.Parallel()
	v := validator.New()

	t.Run("date", func(t *testing.T) {
		min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		max := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		rule := v.Date("d", min, max)

		first, err := rule.Require(validator.Input{"d": "2024-06-01"})
		require.NoError(t, err)
		again, err := rule.Require(validator.Input{"d": "2024-06-01"})
		require.NoError(t, err)
		assert.True(t, first.Equal(again))

		second, err := rule.Require(validator.Input{"d": first})
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	})

	t.Run("files", func(t *testing.T) {
		rule := v.Files("docs", 1, validator.MaxFileSize)
		in := validator.Input{"docs": map[string]any{
			"name":     []any{"a.txt", "b.txt"},
			"type":     []any{"text/plain", "text/csv"},
			"tmp_name": []any{"/tmp/a", "/tmp/b"},
			"error":    []any{0, 0},
			"size":     []any{10, 20},
		}}

		first, err := rule.Require(in)
		require.NoError(t, err)
		again, err := rule.Require(in)
		require.NoError(t, err)
		assert.Equal(t, first, again)

		second, err := rule.Require(validator.Input{"docs": first})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("fqdn", func(t *testing.T) {
		rule := v.FQDN("host")
		first, err := rule.Require(validator.Input{"host": " api.example.com "})
		require.NoError(t, err)
		second, err := rule.Require(validator.Input{"host": first})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestRule_NilCountsAsAbsent(t *testing.T) {
	t.Parallel()
	v := validator.New()

	_, err := v.String("name", 0, 10).Require(validator.Input{"name": nil})
	requireCode(t, err, validator.CodeStringMissing)

	_, err = v.Int("n", 0, 10).Require(nil)
	requireCode(t, err, validator.CodeIntMissing)
}
