// Package main is the tdakit CLI entry point.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mirvel/tdakit/diagram"
	"github.com/mirvel/tdakit/distmat"
	"github.com/mirvel/tdakit/landmark"
	"github.com/mirvel/tdakit/persistence"
	"github.com/mirvel/tdakit/rips"
	"github.com/mirvel/tdakit/zp"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "run":
		runRun()
	case "landmarks":
		runLandmarks()
	case "version", "--version", "-v":
		fmt.Printf("tdakit version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// newLogger returns a zap logger: human-readable at debug level when debug
// is set, JSON at info level otherwise.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadMatrix reads a square CSV of pairwise distances. Cells may be plain
// floats or "inf" for points beyond every scale.
func loadMatrix(path string) (*distmat.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if strings.EqualFold(cell, "inf") {
				rows[i][j] = math.Inf(1)
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) of %s: %w", i, j, path, err)
			}
			rows[i][j] = v
		}
	}

	return distmat.New(rows, distmat.WithAllowInf())
}

func runRun() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	input := fs.String("input", "", "CSV file with a square pairwise-distance matrix")
	rmax := fs.Float64("rmax", math.Inf(1), "maximum Rips radius")
	maxDim := fs.Int("maxdim", rips.DefaultMaxDim, "maximum simplex dimension")
	p := fs.Int64("p", 2, "coefficient field modulus (prime)")
	landmarks := fs.Int("landmarks", 0, "subsample to this many landmarks before building (0 = all points)")
	seed := fs.Int("seed", 0, "landmark seed index")
	workers := fs.Int("workers", 0, "parallel workers for the Rips scan (0 = sequential)")
	all := fs.Bool("all", false, "print zero-persistence pairs too")
	debug := fs.Bool("debug", false, "human-readable debug logging")
	_ = fs.Parse(os.Args[2:])

	if *input == "" {
		fmt.Println("Usage: tdakit run -input dists.csv [flags]")
		fs.PrintDefaults()
		os.Exit(1)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m, err := loadMatrix(*input)
	if err != nil {
		logger.Fatal("load distance matrix", zap.Error(err))
	}
	logger.Info("matrix loaded", zap.String("input", *input), zap.Int("points", m.N()))

	if *landmarks > 0 && *landmarks < m.N() {
		start := time.Now()
		seq, err := landmark.MaxMin(m, *seed)
		if err != nil {
			logger.Fatal("landmark selection", zap.Error(err))
		}
		m, err = m.Submatrix(seq.Prefix(*landmarks))
		if err != nil {
			logger.Fatal("landmark restriction", zap.Error(err))
		}
		logger.Info("landmarks selected",
			zap.Int("count", *landmarks),
			zap.Float64("covering_radius", seq.Radii[*landmarks]),
			zap.Duration("took", time.Since(start)),
		)
	}

	start := time.Now()
	filt, err := rips.Build(m,
		rips.WithMaxRadius(*rmax),
		rips.WithMaxDim(*maxDim),
		rips.WithWorkers(*workers),
	)
	if err != nil {
		logger.Fatal("rips construction", zap.Error(err))
	}
	logger.Info("filtration built",
		zap.Int("simplices", filt.Size()),
		zap.Int("max_dim", filt.MaxDim()),
		zap.Duration("took", time.Since(start)),
	)

	field, err := zp.New(*p)
	if err != nil {
		logger.Fatal("field construction", zap.Int64("p", *p), zap.Error(err))
	}

	start = time.Now()
	dgm, err := persistence.Run(filt, field)
	if err != nil {
		logger.Fatal("reduction", zap.Error(err))
	}
	logger.Info("diagram computed",
		zap.Int("pairs", len(dgm.AllPairs())),
		zap.Duration("took", time.Since(start)),
	)

	printDiagram(dgm, *all)
}

// printDiagram writes the bars and per-dimension summaries to stdout.
func printDiagram(dgm *persistence.Diagram, includeZero bool) {
	for _, pair := range dgm.AllPairs() {
		if !includeZero && pair.Persistence() == 0 {
			continue
		}
		death := "inf"
		if !pair.Infinite {
			death = strconv.FormatFloat(pair.Death, 'g', -1, 64)
		}
		fmt.Printf("H%d\t%g\t%s\n", pair.Dim, pair.Birth, death)
	}

	for dim := 0; dim <= dgm.MaxDim(); dim++ {
		s, err := diagram.Summarize(dgm, dim)
		if err != nil {
			continue
		}
		fmt.Printf("# H%d: %d finite, %d infinite", dim, s.Finite, s.Infinite)
		if s.Finite > 0 {
			fmt.Printf(", mean life %.4g, max life %.4g", s.MeanLife, s.MaxLife)
		}
		fmt.Println()
	}
}

func runLandmarks() {
	fs := flag.NewFlagSet("landmarks", flag.ExitOnError)
	input := fs.String("input", "", "CSV file with a square pairwise-distance matrix")
	seed := fs.Int("seed", 0, "seed index")
	count := fs.Int("count", 0, "print only the first N landmarks (0 = all)")
	debug := fs.Bool("debug", false, "human-readable debug logging")
	_ = fs.Parse(os.Args[2:])

	if *input == "" {
		fmt.Println("Usage: tdakit landmarks -input dists.csv [flags]")
		fs.PrintDefaults()
		os.Exit(1)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m, err := loadMatrix(*input)
	if err != nil {
		logger.Fatal("load distance matrix", zap.Error(err))
	}

	seq, err := landmark.MaxMin(m, *seed)
	if err != nil {
		logger.Fatal("landmark selection", zap.Error(err))
	}

	n := len(seq.Indices)
	if *count > 0 && *count < n {
		n = *count
	}
	for k := 0; k < n; k++ {
		fmt.Printf("%d\t%g\n", seq.Indices[k], seq.Radii[k+1])
	}
}

func printUsage() {
	fmt.Println(`tdakit - persistent homology over distance matrices

Usage:
  tdakit run [flags]        Build a Rips filtration and compute its diagram
  tdakit landmarks [flags]  Print the MaxMin landmark order with covering radii
  tdakit version            Show version
  tdakit help               Show this help

Run Flags:
  -input string      CSV file with a square pairwise-distance matrix (required)
  -rmax float        Maximum Rips radius (default: +Inf)
  -maxdim int        Maximum simplex dimension (default: 2)
  -p int             Coefficient field modulus, must be prime (default: 2)
  -landmarks int     Subsample to this many landmarks first (default: 0 = all)
  -seed int          Landmark seed index (default: 0)
  -workers int       Parallel workers for the Rips scan (default: 0 = sequential)
  -all               Print zero-persistence pairs too
  -debug             Human-readable debug logging

Landmarks Flags:
  -input string      CSV distance matrix (required)
  -seed int          Seed index (default: 0)
  -count int         Print only the first N landmarks (default: 0 = all)

Examples:
  tdakit run -input dists.csv -rmax 0.7 -maxdim 2
  tdakit run -input dists.csv -landmarks 64 -seed 3 -p 5
  tdakit landmarks -input dists.csv -count 10`)
}
