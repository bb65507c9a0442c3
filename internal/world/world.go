package world

// SpecialVisitor is today's special-guest kind.
type SpecialVisitor string

const (
	SpecialNone         SpecialVisitor = "none"
	SpecialCelebrity    SpecialVisitor = "celebrity"
	SpecialPhotographer SpecialVisitor = "photographer"
)

// World is the zoo's aggregate scoreboard: cash, stock and the per-day
// counters the engine resets and recomputes on every tick. Money may go
// negative; the turn loop treats that as the loss condition.
type World struct {
	Name         string         `json:"name"`
	Money        float64        `json:"money"`
	Food         int            `json:"food"`
	Popularity   float64        `json:"popularity"`
	Day          int            `json:"day"`
	Visitors     int            `json:"visitors"`
	TotalAnimals int            `json:"total_animals"`
	Special      SpecialVisitor `json:"special_visitor"`
	SpecialCount int            `json:"special_visitor_count"`
	BoughtToday  int            `json:"bought_today"`
}
