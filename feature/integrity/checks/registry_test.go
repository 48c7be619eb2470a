package checks

import (
	"testing"

	"pass-finder/core/availability"
	"pass-finder/core/registry"
	"pass-finder/core/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRegistry_Embedded(t *testing.T) {
	reg, err := registry.Embedded()
	require.NoError(t, err)

	report := CheckRegistry(reg, availability.DefaultSystems(), resolver.DefaultAliases)
	assert.True(t, report.Matched, "%v", report.Problems)
	assert.Equal(t, reg.Len(), report.Locations)
	assert.Equal(t, 1, report.Systems["mv"])
	assert.Equal(t, 3, report.Systems["sclibrary"])
}

func TestCheckRegistry_Problems(t *testing.T) {
	reg, err := registry.New([]registry.Location{
		{ID: "sjpl-AL", Name: "Almaden", System: "SJPL"},
		{ID: "mv-a", Name: "A", System: "MountainView"},
		{ID: "mv-b", Name: "B", System: "MountainView"},
		{ID: "la-1", Name: "Central", System: "LAPL"},
	})
	require.NoError(t, err)

	systems := []availability.SystemConfig{
		{ID: "sjpl", Kind: availability.KindBiblioCommons},
		{ID: "sccl", Kind: availability.KindBiblioCommons},
		{ID: "mv", Kind: availability.KindScrape},
		{ID: "nope", Kind: availability.KindVega},
	}

	report := CheckRegistry(reg, systems, resolver.DefaultAliases)
	assert.False(t, report.Matched)
	assert.ElementsMatch(t, []string{
		"system sccl (SCCLD) has no locations",
		"scrape-only system mv has 2 locations, expected 1",
		"system nope has no alias",
		"locations of system LAPL are not tracked by any configured system",
	}, report.Problems)
}
