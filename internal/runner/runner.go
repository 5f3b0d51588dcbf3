// Package runner solves a set of maze files with a set of algorithms and
// fans each result out to the renderer, the metrics recorder and the report.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/frontier"
	"github.com/katalvlaran/mazesolver/maze"
	"github.com/katalvlaran/mazesolver/metrics"
	"github.com/katalvlaran/mazesolver/render"
	"github.com/katalvlaran/mazesolver/report"
	"github.com/katalvlaran/mazesolver/search"
)

var (
	// ErrNoMazes is returned when Run is given nothing to solve.
	ErrNoMazes = errors.New("runner: no maze files given")

	// ErrMazesFailed is returned after a run in which at least one maze
	// could not be loaded. The report still holds every other maze.
	ErrMazesFailed = errors.New("runner: some mazes could not be loaded")
)

// Options selects what a run solves and which outputs it produces.
type Options struct {
	Mazes        []string
	Kinds        []frontier.Kind
	OutDir       string // PNG per (maze, algorithm) when set
	ShowExplored bool
	Print        bool // text rendering to the runner's output
	Embed        bool // log the <img> tag of each rendering
	Parallel     int
}

// OptionsFromConfig maps a validated config onto run Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	kinds, err := cfg.Kinds()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Mazes:        cfg.Mazes,
		Kinds:        kinds,
		OutDir:       cfg.OutDir,
		ShowExplored: cfg.ShowExplored,
		Print:        cfg.Print,
		Embed:        cfg.Embed,
		Parallel:     cfg.Parallel,
	}, nil
}

// Runner executes Options. It is safe to reuse across runs.
type Runner struct {
	log     *logrus.Logger
	metrics *metrics.Recorder
	out     io.Writer
	outMu   sync.Mutex
}

// New creates a Runner. rec may be nil to skip metrics; out receives text
// renderings and defaults to os.Stdout.
func New(log *logrus.Logger, rec *metrics.Recorder, out io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{log: log, metrics: rec, out: out}
}

// Run solves every maze with every kind. Mazes run concurrently, at most
// opts.Parallel at a time; kinds for one maze run in order.
//
// A maze that fails to load is logged and skipped; Run then returns the
// report together with ErrMazesFailed. Rendering I/O errors and context
// cancellation stop the whole run.
func (r *Runner) Run(ctx context.Context, opts Options) (*report.Report, error) {
	if len(opts.Mazes) == 0 {
		return nil, ErrNoMazes
	}
	if len(opts.Kinds) == 0 {
		return nil, fmt.Errorf("%w: no algorithms selected", frontier.ErrInvalidAlgorithm)
	}
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("runner: create output dir: %w", err)
		}
	}

	rep := report.New()
	rep.SetOrder(opts.Mazes)
	r.log.WithFields(logrus.Fields{
		"run_id":     rep.RunID,
		"mazes":      len(opts.Mazes),
		"algorithms": len(opts.Kinds),
	}).Info("run started")

	var (
		mu     sync.Mutex
		failed []string
	)

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for _, path := range opts.Mazes {
		path := path
		g.Go(func() error {
			grid, err := maze.Load(path)
			if err != nil {
				r.log.WithError(err).WithField("maze", path).Error("maze skipped")
				mu.Lock()
				failed = append(failed, path)
				mu.Unlock()
				return nil
			}
			if r.log.IsLevelEnabled(logrus.DebugLevel) {
				_, regions := grid.Regions()
				r.log.WithFields(logrus.Fields{
					"maze":           path,
					"size":           fmt.Sprintf("%dx%d", grid.Height, grid.Width),
					"regions":        regions,
					"goal_reachable": grid.Connected(grid.Start, grid.Goal),
				}).Debug("maze loaded")
			}
			return r.solveMaze(ctx, path, grid, opts, rep)
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}

	if len(failed) > 0 {
		return rep, fmt.Errorf("%w: %s", ErrMazesFailed, strings.Join(failed, ", "))
	}
	return rep, nil
}

// solveMaze runs every kind on one grid.
func (r *Runner) solveMaze(ctx context.Context, path string, grid *maze.Grid, opts Options, rep *report.Report) error {
	for _, kind := range opts.Kinds {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry, err := r.solveOne(ctx, path, grid, kind, opts)
		if err != nil {
			return err
		}
		rep.Add(entry)
	}
	return nil
}

// solveOne runs a single (maze, kind) pair and produces its outputs.
func (r *Runner) solveOne(ctx context.Context, path string, grid *maze.Grid, kind frontier.Kind, opts Options) (report.Entry, error) {
	log := r.log.WithFields(logrus.Fields{"maze": path, "algorithm": kind})

	// 1. Search, tracing every expansion and honouring cancellation
	trace := r.log.IsLevelEnabled(logrus.TraceLevel)
	res, err := search.Solve(grid, kind,
		search.WithContext(ctx),
		search.WithOnExpand(func(n frontier.Node, explored int) error {
			if trace {
				log.WithFields(logrus.Fields{"cell": n.State.String(), "explored": explored}).Trace("expand")
			}
			return nil
		}),
	)
	solved := err == nil
	if err != nil && !errors.Is(err, search.ErrNoSolution) {
		return report.Entry{}, err
	}

	entry := report.Entry{
		Maze:       path,
		Algorithm:  kind,
		Explored:   res.Explored,
		PathLength: res.Len(),
		Solved:     solved,
	}

	log = log.WithFields(logrus.Fields{"explored": res.Explored, "solved": solved})
	if solved {
		log.WithField("path_length", res.Len()).Info("maze solved")
	} else {
		log.Warn("no solution")
	}

	// 2. Metrics
	if r.metrics != nil {
		r.metrics.Observe(kind.String(), res.Explored, res.Len(), solved)
	}

	// 3. Image outputs
	if opts.OutDir != "" || opts.Embed {
		ropts := render.DefaultOptions()
		ropts.ShowExplored = opts.ShowExplored

		var data []byte
		if opts.OutDir != "" {
			entry.Image = filepath.Join(opts.OutDir, ImageName(path, kind))
			data, err = render.WriteFile(entry.Image, grid, res, ropts)
		} else {
			data, err = render.EncodePNG(grid, res, ropts)
		}
		if err != nil {
			return report.Entry{}, err
		}
		if entry.Image != "" {
			log.WithField("image", entry.Image).Debug("image written")
		}
		if opts.Embed {
			log.WithField("img", render.ImgTag(data, fmt.Sprintf("%s %s", filepath.Base(path), kind))).Info("embedded image")
		}
	}

	// 4. Text rendering, one maze at a time on the shared writer
	if opts.Print {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s (%s):\n", path, strings.ToUpper(kind.String()))
		if err := render.Text(&buf, grid, res); err != nil {
			return report.Entry{}, err
		}
		r.outMu.Lock()
		_, err := r.out.Write(buf.Bytes())
		r.outMu.Unlock()
		if err != nil {
			return report.Entry{}, fmt.Errorf("runner: print: %w", err)
		}
	}

	return entry, nil
}

// ImageName returns "<base>_<kind>.png" for the maze file at path,
// e.g. "maze1_bfs.png" for "mazes/maze1.txt".
func ImageName(path string, kind frontier.Kind) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s.png", base, kind)
}
