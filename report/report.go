// Package report collects per (maze, algorithm) search outcomes and
// formats them for humans and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazesolver/frontier"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects how a Report is written.
type Format string

const (
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatSummary Format = "summary"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatSummary:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (choose table, json, yaml or summary)", ErrUnknownFormat, s)
}

// Entry is the outcome of one solve.
type Entry struct {
	Maze       string        `json:"maze" yaml:"maze"`
	Algorithm  frontier.Kind `json:"algorithm" yaml:"algorithm"`
	Explored   int           `json:"states_explored" yaml:"states_explored"`
	PathLength int           `json:"path_length" yaml:"path_length"`
	Solved     bool          `json:"solved" yaml:"solved"`
	Image      string        `json:"image,omitempty" yaml:"image,omitempty"`
}

// Report aggregates entries of one run. Add is safe for concurrent use.
type Report struct {
	RunID   string  `json:"run_id" yaml:"run_id"`
	Entries []Entry `json:"results" yaml:"results"`

	mu    sync.Mutex
	order map[string]int
}

// New returns an empty report with a fresh run ID.
func New() *Report {
	return &Report{RunID: uuid.NewString(), order: make(map[string]int)}
}

// Add records e. Write orders entries by maze (see SetOrder) and, within a
// maze, by the order of frontier.Kinds, so Add may be called in any order.
func (r *Report) Add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, e)
}

// SetOrder fixes the maze order used when writing; mazes not listed follow
// in name order.
func (r *Report) SetOrder(mazes []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.order == nil {
		r.order = make(map[string]int, len(mazes))
	}
	for i, m := range mazes {
		r.order[m] = i
	}
}

// sorted returns a stable-ordered copy of the entries.
func (r *Report) sorted() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.Entries))
	copy(out, r.Entries)
	rank := func(m string) int {
		if i, ok := r.order[m]; ok {
			return i
		}
		return len(r.order)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].Maze), rank(out[j].Maze)
		if ri != rj {
			return ri < rj
		}
		if out[i].Maze != out[j].Maze {
			return out[i].Maze < out[j].Maze
		}
		return kindRank(out[i].Algorithm) < kindRank(out[j].Algorithm)
	})
	return out
}

func kindRank(k frontier.Kind) int {
	for i, known := range frontier.Kinds {
		if known == k {
			return i
		}
	}
	return len(frontier.Kinds)
}

// Write renders the report to w in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	entries := r.sorted()
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			RunID   string  `json:"run_id"`
			Entries []Entry `json:"results"`
		}{r.RunID, entries})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(struct {
			RunID   string  `yaml:"run_id"`
			Entries []Entry `yaml:"results"`
		}{r.RunID, entries}); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w, entries)
	case FormatSummary:
		return writeSummary(w, entries)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func pathLength(e Entry) string {
	if !e.Solved {
		return "none"
	}
	return strconv.Itoa(e.PathLength)
}

func writeTable(w io.Writer, entries []Entry) error {
	headers := []string{"MAZE", "ALGORITHM", "EXPLORED", "PATH"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Maze, strings.ToUpper(e.Algorithm.String()), strconv.Itoa(e.Explored), pathLength(e)})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteByte('\n')
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSummary prints the per-maze block layout:
//
//	Results for maze1.txt:
//	  DFS:
//	    States explored: 11
//	    Path length: 10
func writeSummary(w io.Writer, entries []Entry) error {
	var sb strings.Builder
	current := ""
	for i, e := range entries {
		if i == 0 || e.Maze != current {
			current = e.Maze
			fmt.Fprintf(&sb, "\nResults for %s:\n", e.Maze)
		}
		fmt.Fprintf(&sb, "  %s:\n", strings.ToUpper(e.Algorithm.String()))
		fmt.Fprintf(&sb, "    States explored: %d\n", e.Explored)
		fmt.Fprintf(&sb, "    Path length: %s\n", pathLength(e))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
