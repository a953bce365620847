package accido

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeaningPrincipalAndAll(t *testing.T) {
	t.Parallel()
	m := NewMeaning("farmer", "cultivator")
	assert.Equal(t, "farmer", m.Principal())
	assert.Equal(t, []string{"farmer", "cultivator"}, m.All())
	assert.Equal(t, "farmer/cultivator", m.String())
}

func TestMeaningEmpty(t *testing.T) {
	t.Parallel()
	m := NewMeaning()
	assert.Equal(t, "", m.Principal())
	assert.Empty(t, m.All())
}

func TestFoldCase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hic", foldCase("  Hic  "))
	assert.Equal(t, "amo", foldCase("AMO"))
}
