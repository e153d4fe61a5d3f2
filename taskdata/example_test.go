package taskdata_test

import (
	"fmt"

	"github.com/katalvlaran/taskbench/taskdata"
)

// ExampleTaskData populates a descriptor the way the dijkstra task expects it.
func ExampleTaskData() {
	adj := []int32{
		0, 4, -1,
		-1, 0, 1,
		2, -1, 0,
	}
	dist := make([]int64, 3)

	d := taskdata.New().
		AddInput(taskdata.Slice(adj)).
		AddInputMeta(0).
		AddOutput(taskdata.Slice(dist))

	in, _ := d.Input(0)
	out, _ := d.Output(0)
	src, _ := d.InputMeta(0)
	fmt.Println(in, out, src)
	// Output: int32[9] int64[3] 0
}
