package domain

// Candidate updates are the partial entities an external generator proposes.
// Every field is optional so a missing parent reference can be told apart
// from a zero one.

// WorkstreamUpdate is a proposed workstream row.
type WorkstreamUpdate struct {
	ID          *int    `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// MilestoneUpdate is a proposed milestone row.
type MilestoneUpdate struct {
	ID           *int    `json:"id,omitempty"`
	WorkstreamID *int    `json:"workstreamId,omitempty"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
}

// TaskUpdate is a proposed task row.
type TaskUpdate struct {
	ID          *int    `json:"id,omitempty"`
	MilestoneID *int    `json:"milestoneId,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Owner       *string `json:"owner,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

// ItemID returns the proposed id, if any.
func (u WorkstreamUpdate) ItemID() (int, bool) { return derefInt(u.ID) }

// ParentID always reports false: workstreams have no parent.
func (u WorkstreamUpdate) ParentID() (int, bool) { return 0, false }

// ItemID returns the proposed id, if any.
func (u MilestoneUpdate) ItemID() (int, bool) { return derefInt(u.ID) }

// ParentID returns the workstream id carried on the update itself.
func (u MilestoneUpdate) ParentID() (int, bool) { return derefInt(u.WorkstreamID) }

// ItemID returns the proposed id, if any.
func (u TaskUpdate) ItemID() (int, bool) { return derefInt(u.ID) }

// ParentID returns the milestone id carried on the update itself.
func (u TaskUpdate) ParentID() (int, bool) { return derefInt(u.MilestoneID) }

// Proposal is one batch of candidate updates. A nil slice means the
// generator proposed no change at that level; an empty non-nil slice means
// it proposed removing everything it was allowed to touch.
type Proposal struct {
	Workstreams []WorkstreamUpdate
	Milestones  []MilestoneUpdate
	Tasks       []TaskUpdate
}

func derefInt(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
