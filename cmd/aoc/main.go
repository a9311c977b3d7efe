// Command aoc runs one puzzle solver on an input file and prints the answer.
//
// Usage:
//
//	aoc -day 15 -part 2 -input input/day15.txt [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ed-w-lee/advent-of-code-2021/basin"
	"github.com/ed-w-lee/advent-of-code-2021/caves"
	"github.com/ed-w-lee/advent-of-code-2021/riskpath"
)

// solver answers one part of one day from the input file at path.
type solver func(path string, log logrus.FieldLogger) (int64, error)

func widen(fn func(string) (int, error)) solver {
	return func(path string, _ logrus.FieldLogger) (int64, error) {
		n, err := fn(path)
		return int64(n), err
	}
}

// solvers maps day → part → solver.
var solvers = map[int]map[int]solver{
	9: {
		1: widen(basin.SolvePart1),
		2: widen(basin.SolvePart2),
	},
	12: {
		1: widen(caves.SolvePart1),
		2: widen(caves.SolvePart2),
	},
	15: {
		1: func(path string, log logrus.FieldLogger) (int64, error) {
			return riskpath.SolveBase(path, riskpath.WithLogger(log))
		},
		2: func(path string, log logrus.FieldLogger) (int64, error) {
			return riskpath.SolveTiled(path, riskpath.WithLogger(log))
		},
	},
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	if err := run(os.Args[1:], os.Stdout, os.Stderr, log); err != nil {
		log.WithError(err).Error("aoc: failed")
		os.Exit(1)
	}
}

// run parses args, runs the selected solver and writes the answer to out.
// Usage and flag errors go to errOut; -h prints usage and succeeds.
func run(args []string, out, errOut io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(errOut)
	day := fs.Int("day", 15, "puzzle day (9, 12 or 15)")
	part := fs.Int("part", 1, "puzzle part (1 or 2)")
	path := fs.String("input", "", "path to the puzzle input (default input/day<N>.txt)")
	verbose := fs.Bool("v", false, "log search diagnostics")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *path == "" {
		*path = fmt.Sprintf("input/day%d.txt", *day)
	}

	parts, ok := solvers[*day]
	if !ok {
		return fmt.Errorf("aoc: no solver for day %d", *day)
	}
	solve, ok := parts[*part]
	if !ok {
		return fmt.Errorf("aoc: day %d has no part %d", *day, *part)
	}

	entry := log.WithFields(logrus.Fields{"day": *day, "part": *part, "input": *path})
	entry.Debug("aoc: solving")
	answer, err := solve(*path, entry)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, answer)
	return err
}
