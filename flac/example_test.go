package flac_test

import (
	"fmt"

	"github.com/katalvlaran/dst-flac/dstgraph"
	"github.com/katalvlaran/dst-flac/flac"
)

// ExampleSolve builds the S2 scenario — two terminals sharing a costly
// path out of the root — and prints the resulting arborescence's cost.
func ExampleSolve() {
	inst, err := dstgraph.NewBuilder().
		SetRoot("0").
		AddTerminal("2").
		AddTerminal("3").
		AddArc("0", "1", 10).
		AddArc("1", "2", 1).
		AddArc("1", "3", 1).
		Build()
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	res, err := flac.Solve(inst)
	if err != nil {
		fmt.Println("solve error:", err)
		return
	}
	fmt.Println(res.Feasible, res.TotalCost)
	// Output:
	// true 12
}
