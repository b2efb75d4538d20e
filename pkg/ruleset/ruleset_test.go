package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crandicha/acncheck/pkg/ruleset"
	"github.com/crandicha/acncheck/pkg/validator"
)

const acnYAML = `
name: acn
successMessage: Valid ACN Number
rules:
  - rule: minLength
    parameters: {minLength: 9}
  - rule: maxLength
    parameters:
      maxLength: 9
  - rule: whitespaceEveryNthCharacter
    parameters: {nthCharacter: 3}
    message: Group the digits as 3-3-3
  - rule: numberOnly
  - rule: isValidACNNumber
`

func TestACN(t *testing.T) {
	rules := ruleset.ACN()
	require.Len(t, rules, 5)

	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		validator.NameMinLength,
		validator.NameMaxLength,
		validator.NameWhitespaceEveryNthCharacter,
		validator.NameNumberOnly,
		validator.NameValidACN,
	}, names)

	assert.Equal(t,
		validator.Verdict{Success: true, Message: ruleset.ACNSuccessMessage},
		validator.Evaluate(rules, "000 000 019", ruleset.ACNSuccessMessage))
}

func TestACNSet(t *testing.T) {
	built, err := ruleset.ACNSet().Build()
	require.NoError(t, err)

	preset := ruleset.ACN()
	require.Len(t, built, len(preset))
	for i := range preset {
		assert.Equal(t, preset[i].Name, built[i].Name)
		assert.Equal(t, preset[i].Message, built[i].Message)
	}

	for _, value := range []string{"000 000 019", "1234 567 89", "abc def ghi", "004085615", ""} {
		assert.Equal(t,
			validator.EvaluateAll(preset, value),
			validator.EvaluateAll(built, value),
			"value %q", value)
	}
}

func TestParse(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		set, err := ruleset.Parse([]byte(acnYAML))
		require.NoError(t, err)

		assert.Equal(t, "acn", set.Name)
		assert.Equal(t, "Valid ACN Number", set.SuccessMessage)
		require.Len(t, set.Rules, 5)
		assert.Equal(t, map[string]int{"maxLength": 9}, set.Rules[1].Parameters)
		assert.Equal(t, "Group the digits as 3-3-3", set.Rules[2].Message)

		rules, err := set.Build()
		require.NoError(t, err)
		verdict := validator.Evaluate(rules, "1234 567 89", set.SuccessMessage)
		assert.Equal(t, "Group the digits as 3-3-3", verdict.Message)
	})

	t.Run("json", func(t *testing.T) {
		set, err := ruleset.Parse([]byte(`{"name":"digits","rules":[{"rule":"numberOnly","message":"digits only"}]}`))
		require.NoError(t, err)

		rules, err := set.Build()
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, "digits only", rules[0].Message)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("rules: [unterminated"))
		assert.ErrorIs(t, err, ruleset.ErrParse)
	})

	t.Run("non integer parameter", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("rules:\n  - rule: minLength\n    parameters: {minLength: nine}\n"))
		assert.ErrorIs(t, err, ruleset.ErrParse)
	})
}

func TestSet_Build(t *testing.T) {
	t.Run("unknown rule", func(t *testing.T) {
		set := ruleset.Set{Rules: []ruleset.Definition{{Rule: "numberOnly"}, {Rule: "isValidABN"}}}

		_, err := set.Build()
		assert.ErrorIs(t, err, ruleset.ErrInvalidRule)
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
		assert.Contains(t, err.Error(), "rules[1]")
	})

	t.Run("unknown parameter", func(t *testing.T) {
		set := ruleset.Set{Rules: []ruleset.Definition{{Rule: "maxLength", Parameters: map[string]int{"max": 9}}}}

		_, err := set.Build()
		assert.ErrorIs(t, err, validator.ErrUnknownParameter)
	})

	t.Run("explicit zero from yaml is kept", func(t *testing.T) {
		set, err := ruleset.Parse([]byte("rules:\n  - rule: minLength\n    parameters: {minLength: 0}\n  - rule: maxLength\n    parameters: {maxLength: 0}\n"))
		require.NoError(t, err)

		rules, err := set.Build()
		require.NoError(t, err)
		require.Len(t, rules, 2)

		assert.True(t, rules[0].Validator(""))
		assert.Equal(t, "Value must be at least 0 characters long", rules[0].Message)
		assert.True(t, rules[1].Validator(""))
		assert.False(t, rules[1].Validator("1"))
		assert.Equal(t, "Value must be at most 0 characters long", rules[1].Message)
	})

	t.Run("empty set", func(t *testing.T) {
		rules, err := ruleset.Set{}.Build()
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "acn.yaml")
		require.NoError(t, os.WriteFile(path, []byte(acnYAML), 0o600))

		set, err := ruleset.Load(path)
		require.NoError(t, err)
		assert.Len(t, set.Rules, 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ruleset.ErrRead)
	})

	t.Run("round trips through Marshal", func(t *testing.T) {
		data, err := ruleset.ACNSet().Marshal()
		require.NoError(t, err)

		set, err := ruleset.Parse(data)
		require.NoError(t, err)
		assert.Equal(t, ruleset.ACNSet(), set)
	})
}
