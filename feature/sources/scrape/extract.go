package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"pass-finder/core/availability"
)

var (
	copyPattern      = regexp.MustCompile(`(?i)(\d+)\s*cop(?:y|ies)`)
	availablePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:of\s*\d+\s*)?available`)
)

// Result is what the text heuristics found on a catalog page.
type Result struct {
	HasAvailable bool
	Available    int
	Total        int
}

// Extract applies the text rules to the visible text of a catalog page:
//
//  1. "Available" or "On shelf" anywhere sets HasAvailable
//  2. "<N> copies" sets Total, and implies max(1, N) available copies when HasAvailable
//  3. "<N> available" or "<N> of <M> available" sets Available, overriding rule 2
func Extract(text string) Result {
	var r Result
	r.HasAvailable = strings.Contains(text, "Available") || strings.Contains(text, "On shelf")

	if m := copyPattern.FindStringSubmatch(text); m != nil {
		r.Total = atoi(m[1])
		if r.HasAvailable {
			r.Available = max(1, r.Total)
		}
	}

	if m := availablePattern.FindStringSubmatch(text); m != nil {
		r.Available = atoi(m[1])
	}

	return r
}

// Fact turns the extraction into a fact for the given branch. An available result
// always reports at least one copy, and total never drops below available.
func (r Result) Fact(branchName string) availability.Fact {
	if r.HasAvailable || r.Available > 0 {
		available := r.Available
		if available == 0 {
			available = 1
		}
		total := r.Total
		if total == 0 {
			total = 1
		}
		return availability.Fact{
			BranchName: branchName,
			Available:  available,
			Total:      max(total, available),
			Status:     availability.StatusAvailable,
		}
	}
	return availability.Fact{
		BranchName: branchName,
		Total:      r.Total,
		Status:     availability.StatusUnavailable,
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
