package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soterkit/soter/pkg/validator"
)

func TestList(t *testing.T) {
	t.Parallel()
	v := validator.New()

	t.Run("any slice or array", func(t *testing.T) {
		items, err := v.List("tags", 0).Require(validator.Input{"tags": []string{"a", "b"}})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, items)

		items, err = v.List("tags", 3).Require(validator.Input{"tags": [3]int{1, 2, 3}})
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, items)

		items, err = v.List("tags", 0).Require(validator.Input{"tags": []any{}})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("exact size", func(t *testing.T) {
		_, err := v.List("tags", 2).Require(validator.Input{"tags": []any{"a"}})
		verr := requireCode(t, err, validator.CodeListSize)
		assert.Equal(t, "invalid size, expected 2", verr.Message)
	})

	t.Run("not a list", func(t *testing.T) {
		for _, raw := range []any{"a,b", 3, []byte("ab"), map[string]any{"a": 1}} {
			_, err := v.List("tags", 0).Require(validator.Input{"tags": raw})
			requireCode(t, err, validator.CodeListNotList)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := v.List("tags", 0).Require(validator.Input{})
		verr := requireCode(t, err, validator.CodeListMissing)
		assert.Equal(t, "missing list", verr.Message)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()
	v := validator.New()
	keys := []string{"name", "qty"}

	t.Run("parallel lists", func(t *testing.T) {
		got, err := v.Map(keys, 0).Require(validator.Input{
			"name": []any{"apple", "pear"},
			"qty":  []string{"1", "2"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string][]any{
			"name": {"apple", "pear"},
			"qty":  {"1", "2"},
		}, got)
	})

	t.Run("first list sets the length", func(t *testing.T) {
		_, err := v.Map(keys, 0).Require(validator.Input{
			"name": []any{"a", "b", "c"},
			"qty":  []any{1, 2, 3, 4},
		})
		verr := requireCode(t, err, validator.CodeListSize)
		assert.Equal(t, "qty", verr.Field)
		assert.Equal(t, "invalid size, expected 3", verr.Message)
	})

	t.Run("empty first list sets no length", func(t *testing.T) {
		got, err := v.Map(keys, 0).Require(validator.Input{
			"name": []any{},
			"qty":  []any{1},
		})
		require.NoError(t, err)
		assert.Empty(t, got["name"])
		assert.Equal(t, []any{1}, got["qty"])

		_, err = v.Map([]string{"a", "b", "c"}, 0).Require(validator.Input{
			"a": []any{},
			"b": []any{1, 2},
			"c": []any{1},
		})
		verr := requireCode(t, err, validator.CodeListSize)
		assert.Equal(t, "c", verr.Field)
		assert.Equal(t, "invalid size, expected 2", verr.Message)
	})

	t.Run("fixed length", func(t *testing.T) {
		_, err := v.Map(keys, 2).Require(validator.Input{
			"name": []any{"a", "b", "c"},
			"qty":  []any{1, 2, 3},
		})
		verr := requireCode(t, err, validator.CodeListSize)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("missing key names the key", func(t *testing.T) {
		rule := v.Map(keys, 0)
		assert.Equal(t, "name,qty", rule.Field())

		_, err := rule.Require(validator.Input{"name": []any{"a"}})
		verr := requireCode(t, err, validator.CodeListMissing)
		assert.Equal(t, "qty", verr.Field)
		assert.Equal(t, "qty", verr.TranslationValues["field"])
	})

	t.Run("non list value", func(t *testing.T) {
		_, err := v.Map(keys, 0).Require(validator.Input{"name": "a", "qty": []any{1}})
		verr := requireCode(t, err, validator.CodeListNotList)
		assert.Equal(t, "name", verr.Field)
	})
}
