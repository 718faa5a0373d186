package ordination_test

import (
	"fmt"

	"github.com/katalvlaran/ecotone/community"
	"github.com/katalvlaran/ecotone/ordination"
)

// ExampleSolve runs the dispatcher on a degenerate input: two communities
// cannot support a meaningful two-axis ordination, so the engine answers
// with the clearly flagged fallback layout instead of an error.
func ExampleSolve() {
	cs := []community.Community{
		{ID: 0, Species: []int{1, 2}, Abundance: []int{8, 2}},
		{ID: 1, Species: []int{2, 3}, Abundance: []int{5, 5}},
	}

	res, err := ordination.Solve(cs, ordination.Options{Method: ordination.PCoA})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("degenerate=%v points=%d\n", res.Degenerate, len(res.Points))
	// Output: degenerate=true points=2
}
