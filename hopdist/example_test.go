package hopdist_test

import (
	"fmt"
	"log"

	"github.com/katalvlaran/linehop/hopdist"
	"github.com/katalvlaran/linehop/linegraph"
)

// ExampleDistances computes hop counts on a 5-position line where
// position 0 shortcuts straight to position 4, so the far end of the
// line is one hop away and position 3 is best reached by jumping
// ahead and walking back.
func ExampleDistances() {
	lg, err := linegraph.New([]int{5, 2, 3, 4, 5}) // 1-based targets
	if err != nil {
		log.Fatal(err)
	}

	res, err := hopdist.Distances(lg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Dist)
	// Output:
	// [0 1 2 2 1]
}

// ExampleResult_PathTo reconstructs one fewest-hop route, which here
// takes the shortcut to the end and steps back one position.
func ExampleResult_PathTo() {
	lg, err := linegraph.New([]int{5, 2, 3, 4, 5})
	if err != nil {
		log.Fatal(err)
	}

	res, err := hopdist.Distances(lg, hopdist.WithReturnParents())
	if err != nil {
		log.Fatal(err)
	}

	path, err := res.PathTo(3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(path)
	// Output:
	// [0 4 3]
}
