package validator_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soterkit/soter/pkg/validator"
)

func TestInt(t *testing.T) {
	t.Parallel()
	v := validator.New()

	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		cases := map[string]struct {
			raw  any
			want int64
		}{
			"int":            {5, 5},
			"string":         {"5", 5},
			"padded string":  {" 7 ", 7},
			"truncated":      {"3.9", 3},
			"float":          {9.99, 9},
			"exponent":       {"1e1", 10},
			"json number":    {json.Number("8"), 8},
			"uint":           {uint8(2), 2},
			"negative bound": {"-0.5", 0},
		}
		for name, tc := range cases {
			got, err := v.Int("n", 0, 11).Require(validator.Input{"n": tc.raw})
			require.NoError(t, err, name)
			assert.Equal(t, tc.want, got, name)
		}
	})

	t.Run("min is inclusive", func(t *testing.T) {
		n, err := v.Int("n", 1, 10).Require(validator.Input{"n": 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = v.Int("n", 1, 10).Require(validator.Input{"n": 0})
		verr := requireCode(t, err, validator.CodeIntTooSmall)
		assert.Equal(t, "less than 1", verr.Message)
	})

	t.Run("max is exclusive", func(t *testing.T) {
		n, err := v.Int("n", 1, 10).Require(validator.Input{"n": 9})
		require.NoError(t, err)
		assert.Equal(t, int64(9), n)

		_, err = v.Int("n", 1, 10).Require(validator.Input{"n": 10})
		verr := requireCode(t, err, validator.CodeIntTooLarge)
		assert.Equal(t, "more than 10", verr.Message)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := v.Int("n", 0, 10).Require(validator.Input{})
		verr := requireCode(t, err, validator.CodeIntMissing)
		assert.Equal(t, "not found", verr.Message)
		assert.Equal(t, "n", verr.Field)
	})

	t.Run("not numeric", func(t *testing.T) {
		for _, raw := range []any{"abc", "", "0x10", "1_000", true, []any{1}, math.NaN()} {
			_, err := v.Int("n", 0, 10).Require(validator.Input{"n": raw})
			requireCode(t, err, validator.CodeIntNotNumeric)
		}
	})

	t.Run("saturates huge values", func(t *testing.T) {
		_, err := v.Int("n", 0, math.MaxInt64).Require(validator.Input{"n": "1e30"})
		requireCode(t, err, validator.CodeIntTooLarge)
	})

	t.Run("overflow to infinity is not numeric", func(t *testing.T) {
		for _, raw := range []any{"1e400", "-1e400", math.Inf(1), math.Inf(-1)} {
			_, err := v.Int("n", math.MinInt64, math.MaxInt64).Require(validator.Input{"n": raw})
			requireCode(t, err, validator.CodeIntNotNumeric)
		}
	})
}

func TestFloat(t *testing.T) {
	t.Parallel()
	v := validator.New()

	t.Run("both bounds inclusive", func(t *testing.T) {
		for _, raw := range []any{0, "0", 1, "1.0", 0.5, ".5"} {
			_, err := v.Float("f", 0, 1).Require(validator.Input{"f": raw})
			assert.NoError(t, err, raw)
		}
	})

	t.Run("returns the parsed value", func(t *testing.T) {
		f, err := v.Float("f", -10, 10).Require(validator.Input{"f": " -2.75 "})
		require.NoError(t, err)
		assert.InDelta(t, -2.75, f, 1e-9)
	})

	t.Run("too small", func(t *testing.T) {
		_, err := v.Float("f", 0.5, 1).Require(validator.Input{"f": "0.25"})
		verr := requireCode(t, err, validator.CodeFloatTooSmall)
		assert.Equal(t, "less than 0.5", verr.Message)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := v.Float("f", 0, 1).Require(validator.Input{"f": 1.0001})
		verr := requireCode(t, err, validator.CodeFloatTooLarge)
		assert.Equal(t, "more than 1.0", verr.Message)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := v.Float("f", 0, 1).Require(validator.Input{"g": 1})
		requireCode(t, err, validator.CodeFloatMissing)
	})

	t.Run("not numeric", func(t *testing.T) {
		for _, raw := range []any{"NaN", "Inf", "one", math.Inf(1), "1e400", "-1e400", map[string]any{}} {
			_, err := v.Float("f", 0, 1).Require(validator.Input{"f": raw})
			requireCode(t, err, validator.CodeFloatNotNumeric)
		}
	})

	t.Run("underflow rounds to zero", func(t *testing.T) {
		f, err := v.Float("f", 0, 1).Require(validator.Input{"f": "1e-400"})
		require.NoError(t, err)
		assert.Zero(t, f)
	})
}
