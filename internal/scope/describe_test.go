package scope

import (
	"testing"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestFormatSelection(t *testing.T) {
	assert.Equal(t, "ALL", FormatSelection(nil))
	assert.Equal(t, "ALL", FormatSelection([]int{}))
	assert.Equal(t, "3, 1", FormatSelection([]int{3, 1}))
}

func TestDescribe(t *testing.T) {
	items := []Named{{ID: 1, Name: "Legal"}, {ID: 2, Name: "IT"}}

	tests := []struct {
		name     string
		items    []Named
		selected []int
		want     string
	}{
		{
			name:  "no items",
			items: nil,
			want:  "Workstreams: none defined.",
		},
		{
			name:  "no selection",
			items: items,
			want:  "Workstreams (all editable): (id=1) Legal, (id=2) IT",
		},
		{
			name:     "partial selection",
			items:    items,
			selected: []int{2},
			want: "Workstreams selected: (id=2) IT\n" +
				"Workstreams locked (do NOT change): (id=1) Legal",
		},
		{
			name:     "everything selected",
			items:    items,
			selected: []int{1, 2},
			want: "Workstreams selected: (id=1) Legal, (id=2) IT\n" +
				"Workstreams locked (do NOT change): none",
		},
		{
			name:     "selection matches nothing",
			items:    items,
			selected: []int{7},
			want: "Workstreams selected: none\n" +
				"Workstreams locked (do NOT change): (id=1) Legal, (id=2) IT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe("Workstreams", tt.items, tt.selected))
		})
	}
}

func TestSummary_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	plan := samplePlan()
	g.Assert(t, "summary_workstream_selected",
		[]byte(Summary(plan, Selection{Workstreams: []int{1}}, domain.StepMilestones)))

	plan.Tasks = nil
	g.Assert(t, "summary_unrestricted",
		[]byte(Summary(plan, Selection{}, domain.StepTasks)))
}
