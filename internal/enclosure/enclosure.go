package enclosure

import (
	"slices"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
)

// Enclosure houses animals of a single diet class and climate.
// Residents holds animal IDs only; full animal state lives in the
// animal registry.
type Enclosure struct {
	ID        int            `json:"id"`
	Capacity  int            `json:"capacity"`
	Diet      animal.Diet    `json:"diet"`
	Climate   animal.Climate `json:"climate"`
	DailyCost int            `json:"daily_cost"`
	Residents []int          `json:"residents,omitempty"`
}

// CanHouse reports whether a fits here: free capacity, matching diet
// class and matching climate.
func (e Enclosure) CanHouse(a animal.Animal) bool {
	return len(e.Residents) < e.Capacity &&
		a.Diet == e.Diet &&
		a.Climate == e.Climate
}

func (e Enclosure) Houses(animalID int) bool {
	return slices.Contains(e.Residents, animalID)
}

func (e *Enclosure) AddResident(animalID int) {
	if e.Houses(animalID) {
		return
	}
	e.Residents = append(e.Residents, animalID)
}

func (e *Enclosure) RemoveResident(animalID int) {
	out := make([]int, 0, len(e.Residents))
	for _, id := range e.Residents {
		if id != animalID {
			out = append(out, id)
		}
	}
	e.Residents = out
}
