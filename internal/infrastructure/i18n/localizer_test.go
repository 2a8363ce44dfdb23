package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizerResolve(t *testing.T) {
	loc, err := NewLocalizer("en")
	require.NoError(t, err)

	// app namespace wins.
	assert.Equal(t, "Formula not found", loc.Resolve("FORMULA_NOT_FOUND"))
	// falls through to the general namespace.
	assert.Equal(t, "Invalid request", loc.Resolve("INVALID_REQUEST"))
	// miss returns the raw key.
	assert.Equal(t, "NO_SUCH_KEY", loc.Resolve("NO_SUCH_KEY"))
	assert.Equal(t, "", loc.Resolve(""))
}

func TestLocalizerPortuguese(t *testing.T) {
	loc, err := NewLocalizer("pt-BR")
	require.NoError(t, err)

	assert.Equal(t, "Fórmula não encontrada", loc.Resolve("FORMULA_NOT_FOUND"))
	assert.Equal(t, "Requisição inválida", loc.Resolve("INVALID_REQUEST"))
}

func TestLocalizerUnknownLanguageFallsBack(t *testing.T) {
	loc, err := NewLocalizer("xx")
	require.NoError(t, err)

	assert.Equal(t, "Formula not found", loc.Resolve("FORMULA_NOT_FOUND"))
}
