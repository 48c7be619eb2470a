package availability_test

import (
	"context"
	"testing"

	"pass-finder/core/availability"
	"pass-finder/core/registry"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	name string
	fn   func(ctx context.Context, req availability.Request) []availability.Fact
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) Fetch(ctx context.Context, req availability.Request) []availability.Fact {
	return f.fn(ctx, req)
}

// staticSource answers from a (system, pass) keyed table.
func staticSource(name string, table map[string][]availability.Fact) fakeSource {
	return fakeSource{name: name, fn: func(_ context.Context, req availability.Request) []availability.Fact {
		return table[req.System+"/"+string(req.Pass)]
	}}
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New([]registry.Location{
		{ID: "sjpl-AL", Name: "Almaden", System: "SJPL"},
		{ID: "sjpl-BE", Name: "Berryessa", System: "SJPL"},
		{ID: "sccl-CUP", Name: "Cupertino Library", System: "SCCLD"},
		{ID: "sccl-MIL", Name: "Milpitas Library", System: "SCCLD"},
		{ID: "mv-main", Name: "Mountain View Public Library", System: "MountainView"},
	})
	require.NoError(t, err)
	return r
}

func testSystems(mvKind availability.Kind) []availability.SystemConfig {
	return []availability.SystemConfig{
		{ID: "sjpl", APIID: "sjpl", Kind: availability.KindBiblioCommons, Passes: []availability.PassConfig{
			{Type: "caState", BibID: "S156C6422417"},
		}},
		{ID: "sccl", APIID: "sccl", Kind: availability.KindBiblioCommons, Passes: []availability.PassConfig{
			{Type: "caState", BibID: "S118C1014941"},
			{Type: "sccCounty", BibID: "S118C1019385"},
		}},
		{ID: "mv", APIID: "mv", Kind: mvKind, BranchName: "Mountain View Public Library", Passes: []availability.PassConfig{
			{Type: "caState", BibID: "3087456", FormatGroupID: "1b0787a7-4c03-49ee-8787-a74c0349ee3a"},
		}},
	}
}

func byID(records []availability.Record) map[string]availability.Record {
	out := make(map[string]availability.Record, len(records))
	for _, r := range records {
		out[r.ID] = r
	}
	return out
}
