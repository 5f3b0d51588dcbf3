package solve_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/mazesolver/cmd/root"
	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/internal/runner"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "maze", "testdata", name)
}

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := root.NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"solve"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var _ = Describe("solve", func() {
	var tmp string

	BeforeEach(func() {
		tmp = GinkgoT().TempDir()
	})

	It("should print the summary for both algorithms by default", func() {
		m1 := fixture("maze1.txt")
		out, _, err := execute("--log-level", "error", m1)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("\nResults for " + m1 + ":\n" +
			"  DFS:\n    States explored: 11\n    Path length: 10\n" +
			"  BFS:\n    States explored: 11\n    Path length: 10\n"))
	})

	It("should report an unsolvable maze without failing", func() {
		m3 := fixture("maze3.txt")
		out, stderr, err := execute("--algorithms", "bfs", m3)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("Path length: none"))
		Expect(out).ToNot(ContainSubstring("DFS"))
		Expect(stderr).To(ContainSubstring("no solution"))
	})

	It("should emit JSON results in maze order", func() {
		out, _, err := execute("--log-level", "error", "--format", "json", fixture("maze2.txt"), fixture("maze1.txt"))
		Expect(err).ToNot(HaveOccurred())

		var doc struct {
			RunID   string `json:"run_id"`
			Results []struct {
				Maze      string `json:"maze"`
				Algorithm string `json:"algorithm"`
				Explored  int    `json:"states_explored"`
			} `json:"results"`
		}
		Expect(json.Unmarshal([]byte(out), &doc)).To(Succeed())
		Expect(doc.RunID).ToNot(BeEmpty())
		Expect(doc.Results).To(HaveLen(4))
		Expect(doc.Results[0].Maze).To(Equal(fixture("maze2.txt")))
		Expect(doc.Results[0].Algorithm).To(Equal("dfs"))
		Expect(doc.Results[0].Explored).To(Equal(194))
		Expect(doc.Results[1].Explored).To(Equal(77))
	})

	It("should write images and metrics", func() {
		outDir := filepath.Join(tmp, "png")
		prom := filepath.Join(tmp, "mazesolver.prom")
		_, _, err := execute("--log-level", "error", "--out-dir", outDir, "--show-explored",
			"--metrics-file", prom, fixture("maze1.txt"))
		Expect(err).ToNot(HaveOccurred())

		Expect(filepath.Join(outDir, "maze1_dfs.png")).To(BeARegularFile())
		Expect(filepath.Join(outDir, "maze1_bfs.png")).To(BeARegularFile())

		data, err := os.ReadFile(prom)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`mazesolver_solves_total{algorithm="bfs",outcome="solved"} 1`))
	})

	It("should print the solved maze as text", func() {
		out, _, err := execute("--log-level", "error", "--print", "--algorithms", "dfs", "--format", "table", fixture("short.txt"))
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("(DFS):"))
		Expect(out).To(ContainSubstring("*"))
		Expect(out).To(ContainSubstring("ALGORITHM"))
	})

	It("should take mazes and settings from a run file", func() {
		run := filepath.Join(tmp, "run.yaml")
		content := "mazes:\n  - " + fixture("maze1.txt") + "\nalgorithms: [bfs]\nformat: table\nparallel: 1\n"
		Expect(os.WriteFile(run, []byte(content), 0o600)).To(Succeed())

		out, _, err := execute("--log-level", "error", "--config", run)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("BFS"))
		Expect(out).ToNot(ContainSubstring("DFS"))
	})

	It("should let flags override the run file", func() {
		run := filepath.Join(tmp, "run.yaml")
		Expect(os.WriteFile(run, []byte("format: table\n"), 0o600)).To(Succeed())

		out, _, err := execute("--log-level", "error", "--config", run, "--format", "summary", fixture("maze1.txt"))
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(HavePrefix("\nResults for "))
	})

	It("should skip a malformed maze and fail after reporting the rest", func() {
		bad := filepath.Join(tmp, "bad.txt")
		Expect(os.WriteFile(bad, []byte("#A#\n"), 0o600)).To(Succeed())

		out, stderr, err := execute(bad, fixture("maze1.txt"))
		Expect(err).To(MatchError(runner.ErrMazesFailed))
		Expect(out).To(ContainSubstring("Results for " + fixture("maze1.txt")))
		Expect(stderr).To(ContainSubstring("maze skipped"))
	})

	It("should reject invalid settings", func() {
		_, _, err := execute("--format", "xml", fixture("maze1.txt"))
		Expect(err).To(MatchError(config.ErrInvalidConfig))

		_, _, err = execute("--algorithms", "astar", fixture("maze1.txt"))
		Expect(err).To(MatchError(config.ErrInvalidConfig))

		_, _, err = execute("--parallel", "0", fixture("maze1.txt"))
		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})

	It("should fail without mazes", func() {
		_, _, err := execute()
		Expect(err).To(MatchError(runner.ErrNoMazes))
	})
})
