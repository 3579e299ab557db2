package lineio_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/linehop/hopdist"
	"github.com/katalvlaran/linehop/linegraph"
	"github.com/katalvlaran/linehop/lineio"
)

// ExampleParseProblem runs the full pipeline: parse the textual
// problem, build the line, propagate distances, print the result line.
func ExampleParseProblem() {
	input := "5\n5 2 3 4 5\n"

	targets, err := lineio.ParseProblem(strings.NewReader(input))
	if err != nil {
		log.Fatal(err)
	}
	lg, err := linegraph.New(targets)
	if err != nil {
		log.Fatal(err)
	}
	res, err := hopdist.Distances(lg)
	if err != nil {
		log.Fatal(err)
	}
	if err := lineio.FormatDistances(os.Stdout, res.Dist); err != nil {
		log.Fatal(err)
	}
	// Output:
	// 0 1 2 2 1
}

// ExampleParseProblem_classifiedFailure shows the error classes a
// caller can branch on.
func ExampleParseProblem_classifiedFailure() {
	_, err := lineio.ParseProblem(strings.NewReader("3 2 9 3"))
	fmt.Println(err)
	// Output:
	// lineio: shortcut target out of range: position 2 targets 9, want 1..3
}
