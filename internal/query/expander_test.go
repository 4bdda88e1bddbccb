package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GerardoDiaz22/gmail-drive-pipe/internal/spell"
)

func testExpander() *Expander {
	return NewExpander(spell.NewChecker(map[string]int{
		"factura":     19000,
		"facturas":    18500,
		"facturación": 3000,
	}))
}

func TestExpandContainsOriginalTokens(t *testing.T) {
	e := testExpander()

	terms := e.Expand("factura ziblors camión")
	for _, token := range []string{"factura", "ziblors", "camión"} {
		assert.Contains(t, terms, token, "every original token must survive expansion")
	}
}

func TestExpandKnownWord(t *testing.T) {
	e := testExpander()

	terms := e.Expand("factura")
	assert.Contains(t, terms, "factura")
	assert.Contains(t, terms, "facturas")
}

func TestExpandMissingAccent(t *testing.T) {
	e := testExpander()

	terms := e.Expand("facturacion")
	assert.Contains(t, terms, "facturacion", "original token kept verbatim")
	assert.Contains(t, terms, "facturación", "accented candidate added")
	assert.Contains(t, terms, "facturaciones", "candidate plural added")
}

func TestExpandInvariantUnknownToken(t *testing.T) {
	e := testExpander()

	// No distinct plural (polysyllable ending in s), no dictionary candidates
	terms := e.Expand("ziblors")
	assert.Equal(t, []string{"ziblors"}, terms)
}

func TestExpandEmptyInput(t *testing.T) {
	e := testExpander()

	assert.Empty(t, e.Expand(""))
	assert.Empty(t, e.Expand("   \t\n"))
}

func TestBuild(t *testing.T) {
	q := Build([]string{"factura", "facturas"})
	require.True(t, strings.HasSuffix(q, " "+InboxFilter), "query must end with the inbox filter")
	assert.Equal(t, "factura OR facturas "+InboxFilter, q)
}

func TestBuildNoTerms(t *testing.T) {
	assert.Equal(t, InboxFilter, Build(nil))
}
