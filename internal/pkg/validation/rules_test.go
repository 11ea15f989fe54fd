package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type sample struct {
	Name string `validate:"notblank"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(sample{Name: "Ada"}))
	assert.NoError(t, v.Struct(sample{Name: "  Ada  "}))
	assert.Error(t, v.Struct(sample{Name: " \t "}))
	assert.Error(t, v.Struct(sample{}))
}

func TestRegisterIsIdempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}

func TestProperty_NotBlankMatchesTrim(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[ \tA-Za-z]{0,8}`).Draw(t, "name")
		err := v.Struct(sample{Name: name})
		if blank := strings.TrimSpace(name) == ""; blank != (err != nil) {
			t.Fatalf("name %q: blank=%v but err=%v", name, blank, err)
		}
	})
}
