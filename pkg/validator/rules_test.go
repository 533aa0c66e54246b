package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strcalc/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("numbers", "1,2")
		assert.True(t, rule.Check())
		assert.Equal(t, "numbers", rule.Error.Field)
		assert.Equal(t, "required", rule.Error.Code)
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, validator.RequiredString("numbers", " \t").Check())
		assert.False(t, validator.RequiredString("numbers", "").Check())
	})
}

func TestMaxLenString(t *testing.T) {
	assert.True(t, validator.MaxLenString("numbers", "12345", 5).Check())
	assert.False(t, validator.MaxLenString("numbers", "123456", 5).Check())
	assert.Equal(t, "must be at most 5 bytes long", validator.MaxLenString("numbers", "", 5).Error.Message)
}

func TestNoDigits(t *testing.T) {
	tests := map[string]bool{
		";":    true,
		"***":  true,
		"":     true,
		"a1":   false,
		"9":    false,
		"[٣]":  false,
		"\n":   true,
		"abc_": true,
	}
	for value, want := range tests {
		assert.Equal(t, want, validator.NoDigits("delimiters", value).Check(), "value %q", value)
	}
}

func TestRequiredSlice(t *testing.T) {
	assert.True(t, validator.RequiredSlice("items", []int{1}).Check())
	assert.False(t, validator.RequiredSlice[int]("items", nil).Check())
	assert.False(t, validator.RequiredSlice("items", []string{}).Check())
}

func TestMaxLenSlice(t *testing.T) {
	assert.True(t, validator.MaxLenSlice("items", []int{1, 2}, 2).Check())
	assert.True(t, validator.MaxLenSlice[int]("items", nil, 0).Check())
	assert.False(t, validator.MaxLenSlice("items", []int{1, 2, 3}, 2).Check())
	assert.Equal(t, "must have at most 2 items", validator.MaxLenSlice[int]("items", nil, 2).Error.Message)
}

func TestEachRequired(t *testing.T) {
	assert.True(t, validator.EachRequired("delimiters", []string{";", "*"}).Check())
	assert.True(t, validator.EachRequired("delimiters", nil).Check())
	assert.False(t, validator.EachRequired("delimiters", []string{";", ""}).Check())
}

func TestEach(t *testing.T) {
	rules := validator.Each("delimiters", []string{";", "1", "x2"}, validator.NoDigits)
	err := validator.Apply(rules...)

	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"delimiters[1]", "delimiters[2]"}, errs.Fields())
}
