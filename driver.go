package aocgrid

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Puzzle is handed to each part. It carries the run's logger.
type Puzzle struct {
	Part   int
	Input  string // path of the input file, or "sample"
	Logger *log.Logger
}

// Debugf logs at debug level; run with -v to see it.
func (p *Puzzle) Debugf(format string, args ...any) {
	p.Logger.Debugf(format, args...)
}

// Solver wires a puzzle's parser to its two parts.
type Solver[P any] struct {
	// Name is the command name shown in usage. Defaults to "solve".
	Name  string
	Parse func(lines []string) (P, error)
	Part1 func(p *Puzzle, in P) any
	Part2 func(p *Puzzle, in P) any

	// Samples holds the worked examples per part, usually built with
	// SamplesFor from the solver's embedded source.
	Samples map[int]Sample
}

// Run executes the solver as a command line program:
//
//	program [-v] [--config file] [--sample] <part:{1|2}> [input-path]
//
// It prints the part's result and exits 0, or prints the error and
// exits 1.
func Run[P any](s Solver[P]) {
	if err := s.Command().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command returns the cobra command behind Run.
func (s Solver[P]) Command() *cobra.Command {
	var (
		verbose bool
		sample  bool
		cfgPath string
	)
	cmd := &cobra.Command{
		Use:           Or(s.Name, "solve") + " <part:{1|2}> [input-path]",
		Short:         "Solve one part of a puzzle",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg Config
			if cfgPath != "" {
				var err error
				if cfg, err = LoadConfig(cfgPath); err != nil {
					return err
				}
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			part, err := parsePart(args[0])
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			out := cmd.OutOrStdout()

			if sample {
				got, err := s.checkSample(logger, part)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "part %d sample: %v ok\n", part, got)
				return err
			}
			if len(args) < 2 {
				return errors.New("missing input path")
			}
			res, err := s.solveFile(logger, part, cfg.resolve(args[1]), cfg.timing())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, res)
			return err
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&sample, "sample", false, "run the part on its sample and check the answer")
	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file")
	return cmd
}

func parsePart(s string) (int, error) {
	switch s {
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	}
	return 0, errors.Wrapf(ErrParse, "part must be 1 or 2, got %q", s)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func (s Solver[P]) checkSample(logger *log.Logger, part int) (string, error) {
	sm, ok := s.Samples[part]
	if !ok {
		return "", errors.Errorf("no sample for part %d", part)
	}
	lines, err := Lines(strings.NewReader(sm.Input))
	if err != nil {
		return "", err
	}
	res, err := s.solve(logger, part, "sample", lines, false)
	if err != nil {
		return "", err
	}
	got := fmt.Sprint(res)
	if got != sm.Want {
		return got, errors.Wrapf(ErrSampleMismatch, "part %d: got %s, want %s", part, got, sm.Want)
	}
	return got, nil
}

func (s Solver[P]) solveFile(logger *log.Logger, part int, path string, timing bool) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	lines, err := Lines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	logger.Debug("read input", "path", path, "lines", len(lines))
	return s.solve(logger, part, path, lines, timing)
}

func (s Solver[P]) solve(logger *log.Logger, part int, input string, lines []string, timing bool) (res any, err error) {
	fn := s.Part1
	if part == 2 {
		fn = s.Part2
	}
	if s.Parse == nil || fn == nil {
		return nil, errors.Errorf("part %d not implemented", part)
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrapf(e, "part %d panicked", part)
			} else {
				err = errors.Errorf("part %d panicked: %v", part, r)
			}
		}
	}()
	in, err := s.Parse(lines)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", input)
	}
	t0 := time.Now()
	res = fn(&Puzzle{Part: part, Input: input, Logger: logger}, in)
	if timing {
		logger.Info("solved", "part", part, "took", time.Since(t0).Round(time.Microsecond))
	}
	return res, nil
}
