package animal

// Diet classifies what an animal eats; enclosures accept a single diet.
type Diet string

const (
	Herbivore Diet = "herbivore"
	Carnivore Diet = "carnivore"
)

// Climate is the habitat an animal needs; enclosures provide exactly one.
type Climate string

const (
	Tropical  Climate = "tropical"
	Temperate Climate = "temperate"
	Arctic    Climate = "arctic"
)

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Animal is a single resident (or market offer). ID is assigned by the
// registry on admission and never changes; EnclosureID is 0 while the
// animal is unplaced (market offers).
type Animal struct {
	ID                int     `json:"id"`
	Species           string  `json:"species"`
	DisplayName       string  `json:"display_name"`
	AgeDays           int     `json:"age_days"`
	Weight            float64 `json:"weight"`
	Climate           Climate `json:"climate"`
	Price             int     `json:"price"`
	Diet              Diet    `json:"diet"`
	EnclosureID       int     `json:"enclosure_id,omitempty"`
	DaysSincePurchase int     `json:"days_since_purchase"`
	Sex               Sex     `json:"sex"`
	BornInZoo         bool    `json:"born_in_zoo"`
	ParentA           string  `json:"parent_a,omitempty"`
	ParentB           string  `json:"parent_b,omitempty"`
	Sick              bool    `json:"sick"`
}

// FoodUnits is the daily feed demand: carnivores eat double rations.
func (a Animal) FoodUnits() int {
	if a.Diet == Carnivore {
		return 2
	}
	return 1
}

func (a Animal) Placed() bool { return a.EnclosureID != 0 }
