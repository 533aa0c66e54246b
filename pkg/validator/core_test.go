package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcalc/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "numbers", Message: "too long"})
		errs.Add(validator.ValidationError{Field: "delimiters", Message: "must not contain empty items"})

		assert.Equal(t, "validation failed: numbers: too long; delimiters: must not contain empty items", errs.Error())
	})

	t.Run("unwraps to the category sentinel", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "x", Message: "bad"}}
		assert.ErrorIs(t, errs, validator.ErrValidationFailed)
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "items", Message: "field is required"})
	errs.Add(validator.ValidationError{Field: "delimiters[0]", Message: "must not contain digits"})
	errs.Add(validator.ValidationError{Field: "items", Message: "must have at most 2 items"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("items"))
		assert.False(t, errs.Has("numbers"))
	})

	t.Run("get keeps order", func(t *testing.T) {
		assert.Equal(t, []string{"field is required", "must have at most 2 items"}, errs.Get("items"))
		assert.Empty(t, errs.Get("numbers"))
	})

	t.Run("fields are unique in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"items", "delimiters[0]"}, errs.Fields())
	})

	t.Run("map groups messages", func(t *testing.T) {
		assert.Equal(t, map[string][]string{
			"items":         {"field is required", "must have at most 2 items"},
			"delimiters[0]": {"must not contain digits"},
		}, errs.Map())
		assert.Nil(t, validator.ValidationErrors{}.Map())
	})
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "a"}}
	fail := func(field string) validator.Rule {
		return validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: field, Message: "bad"}}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure in rule order", func(t *testing.T) {
		err := validator.Apply(fail("b"), pass, fail("c"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"b", "c"}, errs.Fields())
	})
}

func TestJoin(t *testing.T) {
	a := validator.ValidationErrors{{Field: "a", Message: "bad"}}
	b := validator.ValidationErrors{{Field: "b", Message: "bad"}}

	t.Run("merges validation errors", func(t *testing.T) {
		err := validator.Join(a, nil, b)
		assert.Equal(t, validator.ValidationErrors{a[0], b[0]}, err)
	})

	t.Run("nil when nothing failed", func(t *testing.T) {
		assert.NoError(t, validator.Join(nil, nil))
	})

	t.Run("returns foreign errors as is", func(t *testing.T) {
		boom := errors.New("boom")
		assert.Equal(t, boom, validator.Join(a, boom))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts wrapped validation errors", func(t *testing.T) {
		orig := validator.ValidationErrors{{Field: "numbers", Message: "too long"}}
		wrapped := errors.Join(errors.New("request"), orig)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("numbers"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("regular error")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
