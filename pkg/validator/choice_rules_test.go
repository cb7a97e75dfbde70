package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soterkit/soter/pkg/validator"
)

func TestOneOfKeys(t *testing.T) {
	t.Parallel()
	v := validator.New()
	colors := map[string]string{"red": "Red", "blue": "Blue", "3": "Three"}

	key, err := validator.OneOfKeys(v, "color", colors).Require(validator.Input{"color": "blue"})
	require.NoError(t, err)
	assert.Equal(t, "blue", key)

	key, err = validator.OneOfKeys(v, "color", colors).Require(validator.Input{"color": 3})
	require.NoError(t, err)
	assert.Equal(t, "3", key)

	_, err = validator.OneOfKeys(v, "color", colors).Require(validator.Input{"color": "Red"})
	verr := requireCode(t, err, validator.CodeKeyUnknown)
	assert.Equal(t, "unexpected value", verr.Message)

	_, err = validator.OneOfKeys(v, "color", colors).Require(validator.Input{"color": []any{"red"}})
	requireCode(t, err, validator.CodeKeyUnknown)

	_, err = validator.OneOfKeys(v, "color", colors).Require(validator.Input{})
	requireCode(t, err, validator.CodeKeyMissing)
}

func TestOneOf(t *testing.T) {
	t.Parallel()
	v := validator.New()

	t.Run("numbers compare by value", func(t *testing.T) {
		n, err := validator.OneOf(v, "n", []int{1, 2, 3}).Require(validator.Input{"n": "3"})
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		n, err = validator.OneOf(v, "n", []int{1, 2, 3}).Require(validator.Input{"n": 2.0})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("strings compare by text", func(t *testing.T) {
		s, err := validator.OneOf(v, "plan", []string{"free", "pro"}).Require(validator.Input{"plan": "pro"})
		require.NoError(t, err)
		assert.Equal(t, "pro", s)

		_, err = validator.OneOf(v, "plan", []string{"free", "pro"}).Require(validator.Input{"plan": "Pro"})
		requireCode(t, err, validator.CodeValueUnknown)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := validator.OneOf(v, "n", []int{1, 2, 3}).Require(validator.Input{"n": 4})
		verr := requireCode(t, err, validator.CodeValueUnknown)
		assert.Equal(t, "unexpected value", verr.Message)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := validator.OneOf(v, "n", []int{1}).Require(validator.Input{})
		requireCode(t, err, validator.CodeValueMissing)
	})

	t.Run("default through include", func(t *testing.T) {
		plan := validator.OneOf(v, "plan", []string{"free", "pro"}).Include(validator.Input{"plan": "gold"}, "free")
		assert.Equal(t, "free", plan)
	})
}
