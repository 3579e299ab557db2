// Command linehop reads a shortcut-line problem from standard input
// (position count N, then N 1-based shortcut targets; 0-based with
// --zero-based) and prints the fewest-hop distance from position 0 to
// every position as a single space-separated line.
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linehop/hopdist"
	"github.com/katalvlaran/linehop/linegraph"
	"github.com/katalvlaran/linehop/lineio"
)

var (
	zeroBased  bool
	pathTarget int
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command and (re)binds its flags to their
// defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "linehop",
		Short:        "Compute fewest-hop distances on a line with one shortcut per position",
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVar(&zeroBased, "zero-based", false, "treat input shortcut targets as 0-based")
	rootCmd.Flags().IntVar(&pathTarget, "path", -1, "also print one fewest-hop path to this position (0-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Parsing and construction must agree on the target numbering.
	var popts []lineio.Option
	var gopts []linegraph.Option
	if zeroBased {
		popts = append(popts, lineio.WithZeroBased())
		gopts = append(gopts, linegraph.WithZeroBased())
	}

	targets, err := lineio.ParseProblem(cmd.InOrStdin(), popts...)
	if err != nil {
		return err
	}
	log.Debugf("parsed %d shortcut targets", len(targets))

	lg, err := linegraph.New(targets, gopts...)
	if err != nil {
		return err
	}

	var dopts []hopdist.Option
	if pathTarget >= 0 {
		dopts = append(dopts, hopdist.WithReturnParents())
	}
	res, err := hopdist.Distances(lg, dopts...)
	if err != nil {
		return err
	}

	if err := lineio.FormatDistances(cmd.OutOrStdout(), res.Dist); err != nil {
		return err
	}

	if pathTarget >= 0 {
		path, err := res.PathTo(pathTarget)
		if err != nil {
			return err
		}
		hops := make([]string, len(path))
		for i, p := range path {
			hops[i] = fmt.Sprintf("%d", p)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "path to %d: %s\n", pathTarget, strings.Join(hops, " -> "))
	}

	return nil
}
