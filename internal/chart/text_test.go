package chart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func lineIndex(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

func TestRenderText_EarliestTaskIsTopRow(t *testing.T) {
	l := NewLayout(mustBuild(t, "Design, 2024-01-01, 2024-01-03; Build, 2024-01-04, 2024-01-10"))
	lines := plainLines(RenderText(l, 80))

	design := lineIndex(lines, "Design")
	build := lineIndex(lines, "Build")
	if design < 0 || build < 0 {
		t.Fatalf("expected both task rows, got:\n%s", strings.Join(lines, "\n"))
	}
	if design >= build {
		t.Errorf("expected Design (earliest) above Build, got Design=%d Build=%d", design, build)
	}
}

func TestRenderText_TitleAndAxisLabel(t *testing.T) {
	l := NewLayout(mustBuild(t, "A, 2024-01-01, 2024-01-02"))
	lines := plainLines(RenderText(l, 60))

	if !strings.Contains(lines[0], DefaultTitle) {
		t.Errorf("expected title on first line, got %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], DefaultXLabel) {
		t.Errorf("expected x label on last line, got %q", lines[len(lines)-1])
	}
}

func TestRenderText_DurationLabelsFollowBars(t *testing.T) {
	l := NewLayout(mustBuild(t, "Design, 2024-01-01, 2024-01-03; Build, 2024-01-04, 2024-01-10"))
	lines := plainLines(RenderText(l, 80))

	for name, label := range map[string]string{"Design": "3d", "Build": "7d"} {
		line := lines[lineIndex(lines, name)]
		lastBar := strings.LastIndex(line, string(barRune))
		at := strings.Index(line, label)
		if lastBar < 0 || at < 0 {
			t.Fatalf("expected bar and %s on %s row, got %q", label, name, line)
		}
		if at <= lastBar {
			t.Errorf("expected %s after the bar on %s row, got %q", label, name, line)
		}
	}
}

func TestRenderText_BarsAreContiguousForBackToBackTasks(t *testing.T) {
	l := NewLayout(mustBuild(t, "Design, 2024-01-01, 2024-01-03; Build, 2024-01-04, 2024-01-10"))
	lines := plainLines(RenderText(l, 80))

	design := []rune(lines[lineIndex(lines, "Design")])
	build := []rune(lines[lineIndex(lines, "Build")])

	lastDesign := -1
	for i, r := range design {
		if r == barRune {
			lastDesign = i
		}
	}
	firstBuild := -1
	for i, r := range build {
		if r == barRune {
			firstBuild = i
			break
		}
	}

	if lastDesign < 0 || firstBuild < 0 {
		t.Fatal("expected bars on both rows")
	}
	if firstBuild != lastDesign+1 {
		t.Errorf("expected Build to start right after Design ends, got %d vs %d", firstBuild, lastDesign)
	}
}

func TestRenderText_SameDayTaskStillVisible(t *testing.T) {
	l := NewLayout(mustBuild(t, "A,2024-01-01,2024-01-01; B,2024-01-01,2024-12-31"))
	lines := plainLines(RenderText(l, 80))

	row := lines[lineIndex(lines, "A ")]
	if !strings.ContainsRune(row, barRune) {
		t.Errorf("expected a visible bar for a one-day task, got %q", row)
	}
	if !strings.Contains(row, "1d") {
		t.Errorf("expected 1d label, got %q", row)
	}
}

func TestRenderText_TickLabelsRunDiagonally(t *testing.T) {
	l := NewLayout(mustBuild(t, "A, 2024-01-01, 2024-01-05"))
	lines := plainLines(RenderText(l, 60))

	axis := lineIndex(lines, string(cornerRune))
	if axis < 0 {
		t.Fatal("expected an axis line")
	}

	// The first tick sits on the axis origin, so its label starts one column
	// right of the corner and shifts one column per line.
	origin := strings.IndexRune(lines[axis], cornerRune)
	originCol := len([]rune(lines[axis][:origin])) + 1
	want := []rune("2024-01-01")
	for i, r := range want {
		line := []rune(lines[axis+1+i])
		col := originCol + i
		if col >= len(line) || line[col] != r {
			t.Fatalf("expected %q at line %d col %d, got %q", r, axis+1+i, col, string(line))
		}
	}
}

func TestRenderText_GridlinesAtTicks(t *testing.T) {
	l := NewLayout(mustBuild(t, "A, 2024-01-01, 2024-01-02; B, 2024-01-20, 2024-01-30"))
	lines := plainLines(RenderText(l, 80))

	row := lines[lineIndex(lines, "B ")]
	if !strings.ContainsRune(row, gridRune) {
		t.Errorf("expected dashed gridline marks on a row, got %q", row)
	}
}

func TestRenderText_LongNamesTruncated(t *testing.T) {
	long := strings.Repeat("VeryLongTaskName", 6)
	l := NewLayout(mustBuild(t, long+", 2024-01-01, 2024-01-02"))
	lines := plainLines(RenderText(l, 60))

	for _, line := range lines {
		if strings.Contains(line, long) {
			t.Fatalf("expected long name to be truncated, got %q", line)
		}
	}
	if lineIndex(lines, "…") < 0 {
		t.Error("expected truncation marker")
	}
}

func TestRenderText_Empty(t *testing.T) {
	if got := RenderText(NewLayout(nil), 80); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
