package main

import (
	"fmt"
	"io"
	"os"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/kr/pretty"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/domenkozar/language-ecmascript/ast"
	"github.com/domenkozar/language-ecmascript/generator"
	"github.com/domenkozar/language-ecmascript/parser"
)

type args struct {
	Files   []string `arg:"positional,required" help:"source files to parse"`
	Config  string   `help:"YAML file with maxDepth and print settings"`
	Print   string   `help:"what to print: tree, js, parens or none"`
	Repeat  int      `help:"parse each file repeatedly (for performance)"`
	Time    bool     `help:"print parse duration statistics"`
	Verbose bool     `help:"log debug output"`
}

func main() {
	a := args{Repeat: 1}
	arg.MustParse(&a)

	logger, err := newLogger(a.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if err := run(a, os.Stdout, logger); err != nil {
		logger.Error("es5parse failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(a args, w io.Writer, logger *zap.Logger) error {
	cfg := defaultConfig()
	if a.Config != "" {
		var err error
		if cfg, err = loadConfig(a.Config); err != nil {
			return err
		}
	}
	if a.Print != "" {
		cfg.Print = a.Print
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if a.Repeat < 1 {
		a.Repeat = 1
	}

	opts := parser.Options{MaxDepth: cfg.MaxDepth, Logger: logger}

	var failed int
	for _, path := range a.Files {
		if err := parseOne(path, a, cfg, opts, w, logger); err != nil {
			logger.Error("parse", zap.String("file", path), zap.Error(err))
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed to parse", failed, len(a.Files))
	}
	return nil
}

func parseOne(path string, a args, cfg config, opts parser.Options, w io.Writer, logger *zap.Logger) error {
	src, err := parser.ReadSource(path)
	if err != nil {
		return err
	}

	var times []float64
	var program *ast.Program
	for i := 0; i < a.Repeat; i++ {
		begin := time.Now()
		program, err = parser.Parse(path, src, opts)
		if err != nil {
			return err
		}
		times = append(times, float64(time.Since(begin)))
	}

	logger.Debug("parsed", zap.String("file", path), zap.Int("nodes", countNodes(program)))

	switch cfg.Print {
	case printTree:
		pretty.Fprintf(w, "%# v\n", program.Body)
	case printJS:
		fmt.Fprint(w, generator.Generate(program))
	case printParens:
		fmt.Fprint(w, generator.Parenthesize(program))
	}

	if a.Time {
		printTimes(w, path, times)
	}
	return nil
}

func countNodes(node ast.Node) int {
	var n int
	ast.Inspect(node, func(node ast.Node) bool {
		if node != nil {
			n++
		}
		return true
	})
	return n
}

func printTimes(w io.Writer, path string, times []float64) {
	fmt.Fprintf(w, "Parse time for %s (%d runs):\n", path, len(times))
	f, _ := stats.Median(times)
	fmt.Fprintf(w, "  Median: %v\n", time.Duration(f))
	f, _ = stats.Mean(times)
	fmt.Fprintf(w, "  Mean: %v\n", time.Duration(f))
	f, _ = stats.StdDevS(times)
	fmt.Fprintf(w, "  StdDev: %v\n", time.Duration(f))
	f, _ = stats.Min(times)
	fmt.Fprintf(w, "  Min: %v\n", time.Duration(f))
	f, _ = stats.Max(times)
	fmt.Fprintf(w, "  Max: %v\n", time.Duration(f))
}
