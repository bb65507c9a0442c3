package worker

import (
	"slices"

	"github.com/google/uuid"
)

// Role tags a worker with its job. Role-specific behavior (assignment
// caps, veterinarian care limits) is dispatched through the lookup
// tables below rather than per-role types.
type Role string

const (
	Director     Role = "director"
	Veterinarian Role = "veterinarian"
	Cleaner      Role = "cleaner"
	Feeder       Role = "feeder"
)

// Salaries is the static per-role daily payroll table.
var Salaries = map[Role]int{
	Director:     60,
	Veterinarian: 50,
	Cleaner:      30,
	Feeder:       40,
}

// AssignmentCaps limits how many enclosures a role may hold at once.
// Zero means unbounded (veterinarians are bounded by animals under
// care instead; directors are never assignable at all).
var AssignmentCaps = map[Role]int{
	Cleaner: 1,
	Feeder:  2,
}

type Worker struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Salary       int    `json:"salary"`
	Enclosures   []int  `json:"enclosures,omitempty"`
	DaysAssigned int    `json:"days_assigned"`
	DaysWorked   int    `json:"days_worked"`
	MaxAnimals   int    `json:"max_animals,omitempty"` // veterinarians only
}

// New builds a worker with the role's table salary and a fresh ID.
func New(name string, role Role, maxAnimals int) Worker {
	return Worker{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       role,
		Salary:     Salaries[role],
		MaxAnimals: maxAnimals,
	}
}

func (w Worker) AssignedTo(enclosureID int) bool {
	return slices.Contains(w.Enclosures, enclosureID)
}

func (w *Worker) Assign(enclosureID int) {
	if w.AssignedTo(enclosureID) {
		return
	}
	w.Enclosures = append(w.Enclosures, enclosureID)
}

func (w *Worker) ClearAssignments() {
	w.Enclosures = nil
}
