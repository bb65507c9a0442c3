package market

import (
	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/rng"
)

// MaxOffers caps how many offers a single refresh produces.
const MaxOffers = 10

// Catalog is the fixed set of species templates the market draws from.
// Sex is rolled per instantiation; everything else is fixed per species.
func Catalog() []animal.Animal {
	return []animal.Animal{
		{Species: "Deer", DisplayName: "Deer", AgeDays: 10, Weight: 200, Climate: animal.Temperate, Price: 150, Diet: animal.Herbivore},
		{Species: "Elephant", DisplayName: "Elephant", AgeDays: 15, Weight: 6000, Climate: animal.Tropical, Price: 350, Diet: animal.Herbivore},
		{Species: "Giraffe", DisplayName: "Giraffe", AgeDays: 12, Weight: 1800, Climate: animal.Tropical, Price: 300, Diet: animal.Herbivore},
		{Species: "Zebra", DisplayName: "Zebra", AgeDays: 8, Weight: 400, Climate: animal.Tropical, Price: 200, Diet: animal.Herbivore},
		{Species: "Rabbit", DisplayName: "Rabbit", AgeDays: 3, Weight: 5, Climate: animal.Temperate, Price: 100, Diet: animal.Herbivore},
		{Species: "Lion", DisplayName: "Lion", AgeDays: 10, Weight: 300, Climate: animal.Tropical, Price: 400, Diet: animal.Carnivore},
		{Species: "Wolf", DisplayName: "Wolf", AgeDays: 7, Weight: 150, Climate: animal.Temperate, Price: 250, Diet: animal.Carnivore},
		{Species: "Polar Bear", DisplayName: "Polar Bear", AgeDays: 14, Weight: 800, Climate: animal.Arctic, Price: 450, Diet: animal.Carnivore},
		{Species: "Tiger", DisplayName: "Tiger", AgeDays: 9, Weight: 350, Climate: animal.Tropical, Price: 350, Diet: animal.Carnivore},
		{Species: "Fox", DisplayName: "Fox", AgeDays: 5, Weight: 100, Climate: animal.Temperate, Price: 200, Diet: animal.Carnivore},
	}
}

// Market holds the current rotating offer list. Offers carry no
// identity until purchased; the animal registry assigns IDs on
// admission.
type Market struct {
	offers []animal.Animal
}

func New() *Market {
	return &Market{}
}

// Refresh replaces the whole offer list with a random subset, without
// replacement, of size min(MaxOffers, catalog size). Stale offers are
// discarded.
func (m *Market) Refresh(src rng.Source) {
	catalog := Catalog()
	order := rng.Shuffle(src, len(catalog))

	n := len(catalog)
	if n > MaxOffers {
		n = MaxOffers
	}

	offers := make([]animal.Animal, 0, n)
	for _, i := range order[:n] {
		a := catalog[i]
		if src.Intn(2) == 0 {
			a.Sex = animal.Male
		} else {
			a.Sex = animal.Female
		}
		offers = append(offers, a)
	}
	m.offers = offers
}

// Offers returns the current offer list (index order is stable until
// the next refresh or purchase).
func (m *Market) Offers() []animal.Animal {
	out := make([]animal.Animal, len(m.offers))
	copy(out, m.offers)
	return out
}

// Take removes and returns the offer at index (0-based).
func (m *Market) Take(index int) (animal.Animal, bool) {
	if index < 0 || index >= len(m.offers) {
		return animal.Animal{}, false
	}
	a := m.offers[index]
	m.offers = append(m.offers[:index], m.offers[index+1:]...)
	return a, true
}

func (m *Market) Len() int { return len(m.offers) }
