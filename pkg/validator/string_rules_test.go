package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crandicha/acncheck/pkg/validator"
)

func TestMinLength(t *testing.T) {
	t.Run("default minimum of one", func(t *testing.T) {
		rule := validator.MinLength()

		assert.Equal(t, validator.NameMinLength, rule.Name)
		assert.True(t, rule.Test("a"))
		assert.True(t, rule.Test("abc"))
		assert.False(t, rule.Test(""))
		assert.False(t, rule.Test("   "))
	})

	t.Run("custom minimum", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters: &validator.MinLengthParams{MinLength: 5},
		})

		assert.True(t, rule.Test("12345"))
		assert.True(t, rule.Test("123456"))
		assert.False(t, rule.Test("1234"))
	})

	t.Run("ignores spaces", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters: &validator.MinLengthParams{MinLength: 5},
		})

		assert.True(t, rule.Test("1 2 3 4 5"))
		assert.False(t, rule.Test("1 2 3 4"))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters: &validator.MinLengthParams{MinLength: 3},
		})

		assert.False(t, rule.Test("éé"))
		assert.True(t, rule.Test("ééé"))
	})

	t.Run("renders default message", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters: &validator.MinLengthParams{MinLength: 5},
		})
		assert.Equal(t, "Value must be at least 5 characters long", rule.Message)
		assert.Equal(t, "Value must be at least 1 characters long", validator.MinLength().Message)
	})

	t.Run("custom message replaces default", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters:    &validator.MinLengthParams{MinLength: 5},
			CustomMessage: "Custom error message",
		})

		assert.Equal(t, "Custom error message", rule.Message)
		assert.False(t, rule.Test("1234"), "message must not affect the predicate")
	})

	t.Run("custom message without parameters keeps defaults", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			CustomMessage: "Required",
		})

		assert.Equal(t, "Required", rule.Message)
		assert.True(t, rule.Test("a"))
		assert.False(t, rule.Test(""))
	})

	t.Run("zero minimum is kept and always passes", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters: &validator.MinLengthParams{MinLength: 0},
		})
		assert.Equal(t, "Value must be at least 0 characters long", rule.Message)
		assert.True(t, rule.Test(""))
		assert.True(t, rule.Test("   "))
		assert.True(t, rule.Test("abc"))
	})

	t.Run("negative minimum always passes", func(t *testing.T) {
		rule := validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters: &validator.MinLengthParams{MinLength: -1},
		})
		assert.True(t, rule.Test(""))
	})
}

func TestMaxLength(t *testing.T) {
	t.Run("default maximum of one hundred", func(t *testing.T) {
		rule := validator.MaxLength()

		assert.Equal(t, validator.NameMaxLength, rule.Name)
		assert.True(t, rule.Test(strings.Repeat("a", 100)))
		assert.True(t, rule.Test("abc"))
		assert.False(t, rule.Test(strings.Repeat("a", 101)))
	})

	t.Run("custom maximum", func(t *testing.T) {
		rule := validator.MaxLength(validator.Config[validator.MaxLengthParams]{
			Parameters: &validator.MaxLengthParams{MaxLength: 5},
		})

		assert.True(t, rule.Test("12345"))
		assert.True(t, rule.Test("1234"))
		assert.False(t, rule.Test("123456"))
	})

	t.Run("ignores spaces", func(t *testing.T) {
		rule := validator.MaxLength(validator.Config[validator.MaxLengthParams]{
			Parameters: &validator.MaxLengthParams{MaxLength: 5},
		})

		assert.True(t, rule.Test("1 2 3 4 5"))
		assert.False(t, rule.Test("1 2 3 4 5 6"))
	})

	t.Run("messages", func(t *testing.T) {
		rule := validator.MaxLength(validator.Config[validator.MaxLengthParams]{
			Parameters: &validator.MaxLengthParams{MaxLength: 10},
		})
		assert.Equal(t, "Value must be at most 10 characters long", rule.Message)

		custom := validator.MaxLength(validator.Config[validator.MaxLengthParams]{
			Parameters:    &validator.MaxLengthParams{MaxLength: 10},
			CustomMessage: "Too long!",
		})
		assert.Equal(t, "Too long!", custom.Message)
	})

	t.Run("zero maximum is kept and rejects non empty input", func(t *testing.T) {
		rule := validator.MaxLength(validator.Config[validator.MaxLengthParams]{
			Parameters: &validator.MaxLengthParams{MaxLength: 0},
		})
		assert.Equal(t, "Value must be at most 0 characters long", rule.Message)
		assert.False(t, rule.Test("abc"))
		assert.False(t, rule.Test("a"))
		assert.True(t, rule.Test(""))
		assert.True(t, rule.Test("  "), "white space alone measures zero")
	})

	t.Run("message only config keeps the default", func(t *testing.T) {
		rule := validator.MaxLength(validator.Config[validator.MaxLengthParams]{CustomMessage: "Too long"})
		assert.Equal(t, "Too long", rule.Message)
		assert.True(t, rule.Test(strings.Repeat("a", 100)))
		assert.False(t, rule.Test(strings.Repeat("a", 101)))
	})

	t.Run("negative maximum always fails", func(t *testing.T) {
		rule := validator.MaxLength(validator.Config[validator.MaxLengthParams]{
			Parameters: &validator.MaxLengthParams{MaxLength: -1},
		})
		assert.False(t, rule.Test(""))
		assert.False(t, rule.Test("a"))
	})
}

func TestStripSpaces(t *testing.T) {
	assert.Equal(t, "12345", validator.StripSpaces("1 2 3 4 5"))
	assert.Equal(t, "abc", validator.StripSpaces(" a\tb\nc "))
	assert.Equal(t, "abc", validator.StripSpaces("abc"))
	assert.Equal(t, "", validator.StripSpaces(""))
}
