package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/planfile"
	"github.com/alexanderramin/workplan/internal/scope"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errNoPlan = errors.New("--plan is required")

// selectionFlags is the selection shared by chat and scope.
type selectionFlags struct {
	workstreams []int
	milestones  []int
	tasks       []int
	step        int
}

func (f *selectionFlags) register(fs *pflag.FlagSet) {
	fs.IntSliceVar(&f.workstreams, "workstreams", nil, "Selected workstream ids (comma separated)")
	fs.IntSliceVar(&f.milestones, "milestones", nil, "Selected milestone ids (comma separated)")
	fs.IntSliceVar(&f.tasks, "tasks", nil, "Selected task ids (comma separated)")
	fs.IntVar(&f.step, "step", int(domain.StepTasks), "Active step: 1 workstreams, 2 milestones, 3 tasks")
}

func (f *selectionFlags) selection() scope.Selection {
	return scope.Selection{
		Workstreams: f.workstreams,
		Milestones:  f.milestones,
		Tasks:       f.tasks,
	}
}

func (f *selectionFlags) activeStep() (domain.ActiveStep, error) {
	step := domain.ActiveStep(f.step)
	switch step {
	case domain.StepWorkstreams, domain.StepMilestones, domain.StepTasks:
		return step, nil
	default:
		return 0, fmt.Errorf("--step must be 1, 2 or 3, got %d", f.step)
	}
}

// planFlag registers --plan on cmd and returns the loader for it.
func planFlag(cmd *cobra.Command) func() (domain.Plan, error) {
	var path string
	cmd.Flags().StringVar(&path, "plan", "", "Plan file (.json, .yaml or .yml)")
	return func() (domain.Plan, error) {
		if path == "" {
			return domain.Plan{}, errNoPlan
		}
		return planfile.Load(path)
	}
}
