package availability_test

import (
	"testing"

	"pass-finder/core/availability"
	"pass-finder/core/registry"

	"github.com/stretchr/testify/assert"
)

func TestNewFact_Invariant(t *testing.T) {
	tests := []struct {
		name      string
		available int
		total     int
		want      availability.Fact
	}{
		{"Some Available", 2, 5, availability.Fact{BranchName: "b", Available: 2, Total: 5, Status: availability.StatusAvailable}},
		{"None Available", 0, 3, availability.Fact{BranchName: "b", Available: 0, Total: 3, Status: availability.StatusUnavailable}},
		{"Total Below Available", 4, 1, availability.Fact{BranchName: "b", Available: 4, Total: 4, Status: availability.StatusAvailable}},
		{"Negative", -2, -1, availability.Fact{BranchName: "b", Available: 0, Total: 0, Status: availability.StatusUnavailable}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.NewFact("b", tt.available, tt.total)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Available, got.Total)
			assert.GreaterOrEqual(t, got.Available, 0)
		})
	}
}

func TestSentinels(t *testing.T) {
	assert.Equal(t, availability.Fact{BranchName: "x", Status: availability.StatusCheckLibrary}, availability.CheckLibrary("x"))
	assert.Equal(t, availability.Fact{BranchName: "x", Status: availability.StatusUnavailable}, availability.Unavailable("x"))
}

func TestParsePassType(t *testing.T) {
	for _, in := range []string{"caState", "caStatePass"} {
		pt, ok := availability.ParsePassType(in)
		assert.True(t, ok)
		assert.Equal(t, availability.PassCAState, pt)
	}
	pt, ok := availability.ParsePassType("sccCounty")
	assert.True(t, ok)
	assert.Equal(t, availability.PassSCCCounty, pt)

	_, ok = availability.ParsePassType("museum")
	assert.False(t, ok)
}

func TestRecord_Clone(t *testing.T) {
	rec := availability.Record{
		Location:     registry.Location{ID: "sjpl-AL", Name: "Almaden", System: "SJPL"},
		Availability: map[availability.PassType]availability.Fact{availability.PassCAState: availability.NewFact("Almaden", 1, 1)},
	}

	clone := rec.Clone()
	clone.Availability[availability.PassCAState] = availability.Unavailable("Almaden")

	assert.Equal(t, availability.StatusAvailable, rec.Availability[availability.PassCAState].Status)
}
