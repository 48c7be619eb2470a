package resolver_test

import (
	"sync"
	"testing"

	"pass-finder/core/registry"
	"pass-finder/core/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New([]registry.Location{
		{ID: "sjpl-AL", Name: "Almaden", System: "SJPL"},
		{ID: "sjpl-BE", Name: "Berryessa", System: "SJPL"},
		{ID: "sccl-CAM", Name: "Campbell Library", System: "SCCLD"},
		{ID: "sccl-CUP", Name: "Cupertino Library", System: "SCCLD"},
		{ID: "mv-main", Name: "Mountain View Public Library", System: "MountainView"},
	})
	require.NoError(t, err)
	return r
}

func TestResolve_Rules(t *testing.T) {
	res := resolver.New(newRegistry(t), nil)

	tests := []struct {
		name   string
		code   string
		raw    string
		wantID string
		wantOK bool
	}{
		{"Exact", "sjpl", "Almaden", "sjpl-AL", true},
		{"Substring Case Insensitive", "sjpl", "ALMADEN BRANCH", "sjpl-AL", true},
		{"Raw With Library Suffix", "sjpl", "Almaden Library", "sjpl-AL", true},
		{"Raw Is Substring Of Canonical", "sccl", "cupertino", "sccl-CUP", true},
		{"Raw Without Suffix", "sccl", "Campbell", "sccl-CAM", true},
		{"Unrelated", "sjpl", "Rose Garden", "", false},
		{"Wrong System", "sccl", "Almaden", "", false},
		{"Unknown Code", "xyz", "Almaden", "", false},
		{"Empty Name", "sjpl", "", "", false},
		{"Scrape Branch", "mv", "Mountain View Public Library", "mv-main", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := res.Resolve(tt.code, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	reg, err := registry.New([]registry.Location{
		{ID: "x-1", Name: "Valley", System: "X"},
		{ID: "x-2", Name: "West Valley", System: "X"},
	})
	require.NoError(t, err)
	res := resolver.New(reg, map[string]string{"x": "X"})

	// The exact rule beats an earlier substring candidate.
	id, ok := res.Resolve("x", "West Valley")
	assert.True(t, ok)
	assert.Equal(t, "x-2", id)

	// Among substring candidates registry order decides.
	id, ok = res.Resolve("x", "west valley branch")
	assert.True(t, ok)
	assert.Equal(t, "x-1", id)
}

func TestResolve_UnicodeFolding(t *testing.T) {
	reg, err := registry.New([]registry.Location{
		{ID: "x-sj", Name: "San José Branch", System: "X"},
	})
	require.NoError(t, err)
	res := resolver.New(reg, map[string]string{"x": "X"})

	id, ok := res.Resolve("x", "SAN JOSÉ")
	assert.True(t, ok)
	assert.Equal(t, "x-sj", id)
}

func TestSystem(t *testing.T) {
	res := resolver.New(newRegistry(t), nil)

	system, ok := res.System("sclibrary")
	assert.True(t, ok)
	assert.Equal(t, "SantaClaraCity", system)

	_, ok = res.System("nope")
	assert.False(t, ok)
}

func TestResolve_Concurrent(t *testing.T) {
	res := resolver.New(newRegistry(t), nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, ok := res.Resolve("sjpl", "ALMADEN BRANCH")
			assert.True(t, ok)
			assert.Equal(t, "sjpl-AL", id)
		}()
	}
	wg.Wait()
}
