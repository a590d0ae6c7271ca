package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/alokyd/jsondiff"
)

// exit statuses
const (
	exitSame   = 0
	exitDiffer = 1
	exitError  = 2
)

// stdinName is the argument that reads a side from stdin
const stdinName = "-"

// input is one side of a comparison
type input struct {
	name string
	data []byte
}

// result holds everything computed for one pair of inputs
type result struct {
	left, right input

	lineLeft, lineRight []jsondiff.LineDiff
	lineStats           *jsondiff.Stats

	tree      jsondiff.Diffs
	treeStats *jsondiff.Stats

	// treeErr is set when the tree diff couldn't run, eg: invalid JSON
	treeErr error
}

func (r *result) differs() bool {
	return len(r.lineLeft)+len(r.lineRight)+len(r.tree) > 0
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{}
	p := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "jsondiff"
	p.Usage = "[OPTIONS] LEFT RIGHT [LEFT RIGHT ...]"

	paths, err := p.ParseArgs(args)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, fe.Message)
			return exitSame
		}
		fmt.Fprintf(stderr, "jsondiff: %s\n", err)
		return exitError
	}

	log := newLogger(opts.Verbose, stderr)
	defer log.Sync() //nolint:errcheck

	configPath, required := opts.Config, opts.Config != ""
	if !required {
		configPath = DefaultConfigFile
	}
	s, err := loadSettings(configPath, required)
	if err != nil {
		fmt.Fprintf(stderr, "jsondiff: %s\n", err)
		return exitError
	}
	s.apply(p, opts)
	if err := s.validate(); err != nil {
		fmt.Fprintf(stderr, "jsondiff: %s\n", err)
		return exitError
	}
	log.Debug("resolved settings",
		zap.String("mode", s.Mode),
		zap.String("format", s.Format),
		zap.Int("maxLines", s.MaxLines),
		zap.Int("threshold", s.Threshold),
		zap.String("basePath", s.BasePath),
		zap.String("filter", s.Filter),
	)

	if len(paths) == 0 || len(paths)%2 != 0 {
		fmt.Fprintf(stderr, "jsondiff: expected pairs of files to compare, got %d argument(s)\n", len(paths))
		p.WriteHelp(stderr)
		return exitError
	}
	if s.Filter != "" {
		// compile once up front so a bad expression fails before any work
		if _, err := jsondiff.Filter(jsondiff.Diffs{}, s.Filter); err != nil {
			fmt.Fprintf(stderr, "jsondiff: %s\n", err)
			return exitError
		}
	}

	stdinData, err := readStdin(paths, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "jsondiff: %s\n", err)
		return exitError
	}

	results := make([]*result, len(paths)/2)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range results {
		i := i // per-iteration copy; module targets go 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			left, err := readInput(paths[2*i], stdinData)
			if err != nil {
				return err
			}
			right, err := readInput(paths[2*i+1], stdinData)
			if err != nil {
				return err
			}
			results[i] = diffPair(s, left, right, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(stderr, "jsondiff: %s\n", err)
		return exitError
	}

	if err := writeResults(stdout, results, s, useColor(s.Color, stdout)); err != nil {
		fmt.Fprintf(stderr, "jsondiff: writing output: %s\n", err)
		return exitError
	}

	code := exitSame
	for _, r := range results {
		if r.treeErr != nil {
			fmt.Fprintf(stderr, "jsondiff: %s: %s\n", r.side(r.treeErr), r.treeErr)
			code = exitError
		} else if r.differs() && code == exitSame {
			code = exitDiffer
		}
	}
	return code
}

// side names the file a parse error came from
func (r *result) side(err error) string {
	var perr *jsondiff.ParseError
	if errors.As(err, &perr) && perr.Side == "right" {
		return r.right.name
	}
	return r.left.name
}

// diffPair runs every diff the settings ask for
func diffPair(s settings, left, right input, log *zap.Logger) *result {
	start := time.Now()
	r := &result{left: left, right: right}
	opts := s.diffOptions()

	if s.Mode == "lines" || s.Mode == "both" {
		r.lineStats = &jsondiff.Stats{}
		r.lineLeft, r.lineRight = jsondiff.ComputeLineDiffs(string(left.data), string(right.data),
			append(opts, jsondiff.OptionSetStats(r.lineStats))...)
		log.Debug("line diff",
			zap.String("left", left.name),
			zap.String("right", right.name),
			zap.String("algorithm", string(r.lineStats.Algorithm)),
			zap.Int("leftDiffs", len(r.lineLeft)),
			zap.Int("rightDiffs", len(r.lineRight)),
		)
	}

	if s.Mode == "tree" || s.Mode == "both" {
		r.treeStats = &jsondiff.Stats{}
		tree, err := jsondiff.DiffJSON(left.data, right.data, append(opts, jsondiff.OptionSetStats(r.treeStats))...)
		if err != nil {
			r.treeErr = err
			r.treeStats = nil
			log.Debug("parse failed", zap.String("left", left.name), zap.String("right", right.name), zap.Error(err))
			return r
		}
		if s.Filter != "" {
			// the expression compiled up front, so this can only fail at runtime
			if tree, err = jsondiff.Filter(tree, s.Filter); err != nil {
				r.treeErr = err
				return r
			}
		}
		r.tree = tree
		log.Debug("tree diff",
			zap.String("left", left.name),
			zap.String("right", right.name),
			zap.Int("entries", len(tree)),
		)
	}

	log.Debug("pair complete", zap.String("left", left.name), zap.Duration("took", time.Since(start)))
	return r
}

func readStdin(paths []string, stdin io.Reader) ([]byte, error) {
	count := 0
	for _, p := range paths {
		if p == stdinName {
			count++
		}
	}
	switch count {
	case 0:
		return nil, nil
	case 1:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("stdin can only be read for one side")
	}
}

func readInput(path string, stdinData []byte) (input, error) {
	if path == stdinName {
		return input{name: "<stdin>", data: stdinData}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return input{}, err
	}
	return input{name: path, data: data}, nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

// useColor resolves the color setting, auto only colors terminals
func useColor(setting string, w io.Writer) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
