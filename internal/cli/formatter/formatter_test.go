package formatter

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/workplan/internal/contract"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scope"
	"github.com/alexanderramin/workplan/internal/testutil"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, name, []byte(stripANSI(got)))
}

func TestFormatPlan_Golden(t *testing.T) {
	assertGolden(t, "plan_sample", FormatPlan(testutil.SamplePlan()))
}

func TestFormatPlan_Empty(t *testing.T) {
	out := stripANSI(FormatPlan(domain.Plan{}))
	assert.Contains(t, out, "(empty plan)")
}

func TestFormatMilestones_Golden(t *testing.T) {
	items := []domain.Milestone{
		{ID: 1, WorkstreamID: 5, Name: "IT – Milestone 1"},
		{ID: 2, WorkstreamID: 5, Name: "IT – Milestone 2"},
	}
	assertGolden(t, "milestones_suggested", FormatMilestones(items))
}

func TestFormatTasks(t *testing.T) {
	out := stripANSI(FormatTasks(testutil.SamplePlan().Tasks))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[3], "Assign contracts")
	assert.True(t, strings.HasSuffix(lines[3], "Dana"))
	assert.True(t, strings.HasSuffix(lines[2], "-"))
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))

	out := stripANSI(RenderTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}, {"y"}}))
	assert.Equal(t, "A          LONGER\n─────────  ──────\nwide cell  x\ny          \n", out)
}

func TestMarkLastAndTree(t *testing.T) {
	items := []TreeItem{
		{Title: "root", Level: 0},
		{Title: "a", Level: 1},
		{Title: "a1", Level: 2},
		{Title: "b", Level: 1},
		{Title: "b1", Level: 2},
	}
	MarkLast(items)

	assert.False(t, items[1].IsLast)
	assert.True(t, items[2].IsLast)
	assert.True(t, items[3].IsLast)

	out := stripANSI(RenderTree(items))
	assert.Equal(t, "root\n├─ a\n│  └─ a1\n└─ b\n   └─ b1\n", out)
	assert.Empty(t, RenderTree(nil))
}

func TestRenderKeptBar(t *testing.T) {
	tests := []struct {
		name           string
		kept, proposed int
		want           string
	}{
		{"all kept", 4, 4, "████ 4/4"},
		{"half kept", 2, 4, "██░░ 2/4"},
		{"none kept", 0, 3, "░░░░ 0/3"},
		{"nothing proposed", 0, 0, "-"},
		{"kept clamps", 9, 2, "████ 2/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderKeptBar(tt.kept, tt.proposed, 4)))
		})
	}
}

func TestDateSpan(t *testing.T) {
	assert.Equal(t, "2025-01-01 → 2025-02-01", DateSpan("2025-01-01", "2025-02-01"))
	assert.Equal(t, "from 2025-01-01", DateSpan("2025-01-01", ""))
	assert.Equal(t, "until 2025-02-01", DateSpan("", "2025-02-01"))
	assert.Empty(t, DateSpan("", ""))
}

func TestAgoFrom(t *testing.T) {
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", AgoFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", AgoFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", AgoFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", AgoFrom(now.Add(-49*time.Hour), now))
}

func TestFormatChatResponse(t *testing.T) {
	id := 10
	name := "Contracts v2"
	resp := contract.ChatResponse{
		Role:              contract.RoleAssistant,
		Text:              "Renamed the contracts milestone.",
		UpdatedMilestones: []domain.MilestoneUpdate{{ID: &id, Name: &name}, {Name: &name}},
		UpdatedTasks:      []domain.TaskUpdate{},
	}

	out := stripANSI(FormatChatResponse(resp))

	assert.Contains(t, out, "Renamed the contracts milestone.")
	assert.Contains(t, out, "Workstreams: no change")
	assert.Contains(t, out, "Milestones: 2 update(s)")
	assert.Contains(t, out, "Contracts v2")
	assert.Contains(t, out, "new")
	assert.Contains(t, out, "Tasks: nothing in scope")
}

func TestFormatScope(t *testing.T) {
	plan := testutil.SamplePlan()

	t.Run("restricted", func(t *testing.T) {
		sc := scope.Resolve(plan, scope.Selection{Milestones: []int{20}})
		out := stripANSI(FormatScope(plan, sc))

		assert.Contains(t, out, "SCOPE")
		for _, line := range strings.Split(out, "\n") {
			switch {
			case strings.Contains(line, "Cutover"), strings.Contains(line, "Switch ERP"):
				assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "yes"), line)
			case strings.Contains(line, "Contracts"), strings.Contains(line, "Merge entities"):
				assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "no"), line)
			}
		}
	})

	t.Run("unrestricted", func(t *testing.T) {
		out := stripANSI(FormatScope(plan, scope.Resolve(plan, scope.Selection{})))
		assert.Contains(t, out, "every item is editable")
		assert.NotContains(t, out, " no\n")
	})
}

func TestFormatHints(t *testing.T) {
	out := stripANSI(FormatHints("", "No milestone dates currently defined.", "March 04, 2025 (2025-03-04)"))
	assert.Contains(t, out, "Hints   None provided.")
	assert.Contains(t, out, "Today   March 04, 2025 (2025-03-04)")
}

func TestFormatAudit(t *testing.T) {
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	applied := testutil.NewTestReconciliation(
		testutil.WithRequestID("abcdef1234567890"),
		testutil.WithCreatedAt(now.Add(-2*time.Hour)),
		testutil.WithLevel(domain.LevelOutcome{Level: domain.LevelWorkstreams, Absent: true}),
		testutil.WithLevel(domain.LevelOutcome{Level: domain.LevelMilestones, Proposed: 2, Kept: 1, Dropped: 1}),
	)
	failed := testutil.NewTestReconciliation(
		testutil.WithRequestID("req-2"),
		testutil.WithCreatedAt(now),
		testutil.WithOutcome(domain.OutcomeFailed),
	)
	failed.FailureCode = "TIMEOUT"

	out := stripANSI(FormatAudit([]*domain.Reconciliation{failed, applied}, now))

	assert.Contains(t, out, "abcdef12 ")
	assert.NotContains(t, out, "abcdef1234")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "██░░ 1/2")
	assert.Contains(t, out, "✖ failed")
	assert.Contains(t, out, "TIMEOUT")
	assert.Contains(t, out, "● applied")

	assert.Contains(t, stripANSI(FormatAudit(nil, now)), "No reconciliations recorded.")
}

func TestOutcomeIndicator(t *testing.T) {
	assert.Equal(t, "○ no change", stripANSI(OutcomeIndicator(domain.OutcomeNoChange)))
	assert.Equal(t, "weird", stripANSI(OutcomeIndicator(domain.Outcome("weird"))))
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "waiting")

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that was never started")
	}

	s.Start()
	assert.Empty(t, buf.String(), "a stopped spinner must not draw")
}

func TestSpinner_StartStopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "waiting")
	time.Sleep(100 * time.Millisecond)
	stop()
	stop()

	assert.True(t, strings.HasSuffix(buf.String(), "\r\033[K"))
}
