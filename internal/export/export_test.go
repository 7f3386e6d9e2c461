package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "Contracts", "Contracts"},
		{"tags", "<p>Assign <b>all</b> contracts</p>", "Assign all contracts"},
		{"entities", "R&amp;D &lt;core&gt;", "R&D"},
		{"nbsp", "&nbsp;Kick off ", "Kick off"},
		{"trim", "  spaced  ", "spaced"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestRows_Hierarchy(t *testing.T) {
	rows := Rows(testutil.SamplePlan())

	var ids []string
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{
		"1", "1.1", "1.1.1", "1.1.2", "1.2", "1.2.1",
		"2", "2.1", "2.1.1",
	}, ids)

	assert.Equal(t, KindWorkstream, rows[0].Kind)
	assert.Equal(t, KindMilestone, rows[1].Kind)
	assert.Equal(t, "2025-01-15", rows[1].StartDate)
	assert.Equal(t, KindTask, rows[3].Kind)
	assert.Equal(t, "Dana", rows[3].Owner)
}

func TestRows_OrphansSkipped(t *testing.T) {
	plan := domain.Plan{
		Workstreams: []domain.Workstream{{ID: 1, Name: "Legal"}},
		Milestones: []domain.Milestone{
			testutil.NewTestMilestone(10, 1, "Kept"),
			testutil.NewTestMilestone(30, 9, "Orphan"),
		},
		Tasks: []domain.Task{testutil.NewTestTask(300, 99, "Orphan task")},
	}

	rows := Rows(plan)
	require.Len(t, rows, 2)
	assert.Equal(t, "Kept", rows[1].Title)
}

func TestRow_CellsMilestoneFlag(t *testing.T) {
	assert.Equal(t, "", Row{Kind: KindWorkstream}.Cells()[3])
	assert.Equal(t, true, Row{Kind: KindMilestone}.Cells()[3])
	assert.Equal(t, false, Row{Kind: KindTask}.Cells()[3])
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 4, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "workplan_20250304_090507.xlsx", Filename(now))
}

func TestWrite_RoundTrip(t *testing.T) {
	plan := testutil.SamplePlan()
	plan.Workstreams[0].Description = "<p>Legal &amp; entity</p>"

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, plan))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, []string{"1", "Legal", "Legal & entity"}, rows[1])
	assert.Equal(t, []string{"1.1", "Contracts", "Contracts milestone", "TRUE", "", "2025-01-15", "2025-02-28"}, rows[2])
	assert.Equal(t, []string{"1.1.2", "Assign contracts", "Assign contracts task", "FALSE", "Dana"}, rows[4])
}
