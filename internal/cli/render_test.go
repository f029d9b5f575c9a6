package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/logging"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/testutil"
	"github.com/spf13/cobra"
)

func runPipeline(t *testing.T, input string, opts RenderOptions) string {
	t.Helper()
	var out bytes.Buffer
	if err := Render(strings.NewReader(input), &out, opts, logging.Discard()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return out.String()
}

func TestRender_WritesSVG(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "chart.svg")

	out := runPipeline(t, testutil.ScenarioA+"\n", RenderOptions{OutPath: path})

	if !strings.HasPrefix(out, "--- Gantt Chart Generator (Single-Paste Mode) ---\n") {
		t.Errorf("expected banner first, got %q", out)
	}
	if !strings.Contains(out, "Paste tasks here and press ENTER: ") {
		t.Errorf("expected prompt, got %q", out)
	}
	if !strings.Contains(out, "✅ Rendering chart...") {
		t.Errorf("expected rendering notice, got %q", out)
	}
	if !strings.Contains(out, "Chart saved to "+path) {
		t.Errorf("expected saved notice, got %q", out)
	}
	if strings.Contains(out, "❌") {
		t.Errorf("expected no diagnostics, got %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected chart file: %v", err)
	}
	if !strings.Contains(string(data), ">Design<") {
		t.Error("expected Design in SVG")
	}
}

func TestRender_InvalidStartDateAborts(t *testing.T) {
	tmpDir := testutil.SetupTestDir(t)

	out := runPipeline(t, "Bad, 2024-13-01, 2024-01-05\n", RenderOptions{})

	if !strings.Contains(out, "❌ ERROR: Start date '2024-13-01' in 'Bad' must be YYYY-MM-DD.") {
		t.Errorf("expected start date diagnostic, got %q", out)
	}
	if !strings.Contains(out, "\nNo valid tasks found. Chart generation aborted.") {
		t.Errorf("expected abort message, got %q", out)
	}
	if strings.Contains(out, "Rendering chart") {
		t.Errorf("expected no rendering, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "gantt.svg")); !os.IsNotExist(err) {
		t.Errorf("expected no chart file, got err=%v", err)
	}
}

func TestRender_InvertedRange(t *testing.T) {
	testutil.SetupTestDir(t)

	out := runPipeline(t, "Task, 2024-02-10, 2024-02-05\n", RenderOptions{})

	if strings.Count(out, "❌") != 1 {
		t.Errorf("expected exactly one diagnostic, got %q", out)
	}
	if !strings.Contains(out, "Task 'Task' ends before it starts (2024-02-05 < 2024-02-10).") {
		t.Errorf("expected inverted range diagnostic, got %q", out)
	}
}

func TestRender_EmptyInput(t *testing.T) {
	testutil.SetupTestDir(t)

	for _, input := range []string{"", "\n", "    \n"} {
		out := runPipeline(t, input, RenderOptions{})
		if !strings.Contains(out, "❌ No input detected.") {
			t.Errorf("input %q: expected empty input message, got %q", input, out)
		}
		if strings.Contains(out, "No valid tasks") {
			t.Errorf("input %q: expected no NoValidTasks message, got %q", input, out)
		}
	}
}

func TestRender_PartialFailureStillRenders(t *testing.T) {
	out := runPipeline(t, "Oops; A, 2024-01-01, 2024-01-02\n", RenderOptions{Text: true, Width: 60})

	if !strings.Contains(out, "❌ ERROR: 'Oops' is missing commas or dates.") {
		t.Errorf("expected malformed entry diagnostic, got %q", out)
	}
	errAt := strings.Index(out, "❌ ERROR")
	renderAt := strings.Index(out, "✅ Rendering chart...")
	if renderAt < errAt {
		t.Errorf("expected diagnostics before rendering notice, got %q", out)
	}
}

func TestRender_TextChart(t *testing.T) {
	out := ansi.Strip(runPipeline(t, testutil.ScenarioA, RenderOptions{Text: true, Width: 80}))

	if !strings.Contains(out, "Project Schedule Overview") {
		t.Errorf("expected chart title, got %q", out)
	}
	design := strings.Index(out, "Design │")
	build := strings.Index(out, "Build │")
	if design < 0 || build < 0 || design > build {
		t.Errorf("expected Design row above Build row, got %q", out)
	}
	if !strings.Contains(out, "3d") || !strings.Contains(out, "7d") {
		t.Errorf("expected duration labels, got %q", out)
	}
}

func TestRender_OnlyReadsOneLine(t *testing.T) {
	out := runPipeline(t, "A, 2024-01-01, 2024-01-02\nB, 2024-01-03, 2024-01-04\n", RenderOptions{Text: true, Width: 60})

	if !strings.Contains(out, "A │") {
		t.Errorf("expected A row, got %q", out)
	}
	if strings.Contains(out, "B │") {
		t.Errorf("expected second line to be ignored, got %q", out)
	}
}

func TestRunRender_UsesCommandStreams(t *testing.T) {
	testutil.SetupTestDir(t)

	origText, origWidth := renderText, renderWidth
	t.Cleanup(func() { renderText, renderWidth = origText, origWidth })
	renderText, renderWidth = true, 60

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("A, 2024-01-01, 2024-01-02\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err := runRender(cmd, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Rendering chart") {
		t.Errorf("expected output on command stdout, got %q", out.String())
	}
}

func TestRunRender_InvalidWidth(t *testing.T) {
	origWidth := renderWidth
	t.Cleanup(func() { renderWidth = origWidth })
	renderWidth = 0

	err := runRender(&cobra.Command{}, nil)
	if err == nil {
		t.Fatal("expected error for zero width")
	}
	if err.Error() != "--width must be positive, got 0" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRenderCmd_RejectsArgs(t *testing.T) {
	if err := renderCmd.Args(renderCmd, []string{"extra"}); err == nil {
		t.Error("expected error for positional args, got nil")
	}
}
