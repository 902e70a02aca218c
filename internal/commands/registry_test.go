package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	r := NewRegistry("!")
	r.Register(&PrefixCommand{Name: "loot", Category: "utility", Aliases: []string{"split", "splitloot"}})
	r.Register(&PrefixCommand{Name: "share", Category: "utility"})
	r.Register(&PrefixCommand{Name: "info", Category: "help", Aliases: []string{"ayuda"}})
	return r
}

func TestRegistry_Parse(t *testing.T) {
	r := testRegistry()

	cmd, inv, ok := r.Parse("!share 100")
	require.True(t, ok)
	assert.Equal(t, "share", cmd.Name)
	assert.Equal(t, []string{"100"}, inv.Args)

	cmd, inv, ok = r.Parse("  !SPLIT\nSession: 01:00h\nLoot: 5")
	require.True(t, ok)
	assert.Equal(t, "loot", cmd.Name)
	assert.Equal(t, "split", inv.Name)
	assert.Equal(t, "\nSession: 01:00h\nLoot: 5", inv.Raw)

	cmd, _, ok = r.Parse("!ayuda")
	require.True(t, ok)
	assert.Equal(t, "info", cmd.Name)
}

func TestRegistry_ParseRejects(t *testing.T) {
	r := testRegistry()
	for _, in := range []string{"", "!", "share 100", "!unknown", "?share 1"} {
		_, _, ok := r.Parse(in)
		assert.False(t, ok, in)
	}
}

func TestRegistry_Categories(t *testing.T) {
	cats := testRegistry().Categories()
	require.Len(t, cats, 2)
	require.Len(t, cats["utility"], 2)
	assert.Equal(t, "loot", cats["utility"][0].Name)
	assert.Equal(t, "share", cats["utility"][1].Name)
}
