package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appbuild/cli/internal/platform"
)

func TestValidator_DefaultsAreValid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	for _, p := range platform.All() {
		assert.NoError(t, v.Validate(Defaults(p)), "defaults for %s", p)
	}
}

func TestValidator_AcceptsUnknownKeys(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	values := Merge(Defaults(platform.Linux), Values{"onefile": true})
	assert.NoError(t, v.Validate(values))
}

func TestValidator_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		change func(Values)
		field  string
	}{
		{"missing app name", func(v Values) { delete(v, KeyAppName) }, KeyAppName},
		{"empty main script", func(v Values) { v[KeyMainScript] = "" }, KeyMainScript},
		{"console not bool", func(v Values) { v[KeyConsole] = "yes" }, KeyConsole},
		{"hidden imports not strings", func(v Values) { v[KeyHiddenImports] = []any{1, 2} }, KeyHiddenImports},
		{"data file wrong arity", func(v Values) { v[KeyAdditionalData] = []any{[]any{"a", "b", "c"}} }, KeyAdditionalData},
		{"version not string", func(v Values) { v[KeyVersion] = 1.5 }, KeyVersion},
	}

	v, err := NewValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := Defaults(platform.Linux)
			tt.change(values)

			err := v.Validate(values)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.NotEmpty(t, verrs)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	errs := ValidationErrors{{Field: "app_name", Message: "incomplete value"}}
	assert.Contains(t, errs.Error(), "config validation failed")
	assert.Contains(t, errs.Error(), "app_name: incomplete value")

	single := &ValidationError{Field: "console", Message: "conflicting values"}
	assert.Equal(t, "console: conflicting values", single.Error())
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "(root)", fieldName(nil))
	assert.Equal(t, "(root)", fieldName([]string{"#BuildConfig"}))
	assert.Equal(t, "company.name", fieldName([]string{"#BuildConfig", "company", "name"}))
	assert.Equal(t, "app_name", fieldName([]string{"app_name"}))
}
