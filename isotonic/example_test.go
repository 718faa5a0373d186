package isotonic_test

import (
	"fmt"

	"github.com/katalvlaran/ecotone/isotonic"
)

// ExampleRegression demonstrates the classic pooling case: the sequence
// [3,1,2] read in index order violates monotonicity twice, so all three
// values merge into a single pool whose fitted value is their mean.
func ExampleRegression() {
	out, err := isotonic.Regression([]float64{3, 1, 2}, []int{0, 1, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output: [2 2 2]
}
