package planfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/alexanderramin/workplan/internal/domain"
)

// planSchema describes a well-formed plan document. The engine tolerates
// everything this rejects; Lint only reports it.
const planSchema = `
#Date: =~"^[0-9]{4}-[0-9]{2}-[0-9]{2}$"

#Workstream: {
	id:          int & >=1
	name:        string & !=""
	description: string
}

#Milestone: {
	id:           int & >=1
	workstreamId: int & >=1
	name:         string & !=""
	description:  string
	startDate:    #Date | null
	endDate:      #Date | null
}

#Task: {
	id:          int & >=1
	milestoneId: int & >=1
	name:        string & !=""
	description: string
	owner:       string | null
	startDate:   #Date | null
	endDate:     #Date | null
}

#Plan: {
	workstreams: [...#Workstream] | null
	milestones:  [...#Milestone] | null
	tasks:       [...#Task] | null
}
`

// Problem is one schema violation found by Lint.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// Lint checks plan against the plan schema and returns every violation.
// A nil result means the plan is well formed.
func Lint(plan domain.Plan) ([]Problem, error) {
	doc, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(planSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling plan schema: %w", err)
	}
	value := ctx.CompileBytes(doc)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building plan value: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Plan")).Unify(value)
	verr := unified.Validate(cue.Concrete(true), cue.All())
	if verr == nil {
		return nil, nil
	}

	var problems []Problem
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(verr) {
		format, args := e.Msg()
		p := Problem{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		}
		if key := p.String(); !seen[key] {
			seen[key] = true
			problems = append(problems, p)
		}
	}
	return problems, nil
}
