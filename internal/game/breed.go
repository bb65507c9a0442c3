package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/rng"
)

// NewbornSuffix marks animals born in the zoo.
const NewbornSuffix = "_Newborn"

// Breed pairs two residents and admits their newborn to the mother
// pair's enclosure. The pairing rules live in pairingError; the free
// capacity check is the facade's job and happens here before the
// newborn exists.
func (e *Engine) Breed(ctx context.Context, animalIDA, animalIDB int) (animal.Animal, error) {
	if animalIDA == animalIDB {
		return animal.Animal{}, fmt.Errorf("%w: an animal cannot breed with itself", ErrValidation)
	}
	a, ok, err := e.Animals.Get(ctx, animalIDA)
	if err != nil {
		return animal.Animal{}, err
	}
	if !ok {
		return animal.Animal{}, fmt.Errorf("%w: animal %d", ErrNotFound, animalIDA)
	}
	b, ok, err := e.Animals.Get(ctx, animalIDB)
	if err != nil {
		return animal.Animal{}, err
	}
	if !ok {
		return animal.Animal{}, fmt.Errorf("%w: animal %d", ErrNotFound, animalIDB)
	}

	if err := pairingError(a, b, e.Balance.BreedingMinAgeDays); err != nil {
		return animal.Animal{}, err
	}

	enc, ok, err := e.Enclosures.Get(ctx, a.EnclosureID)
	if err != nil {
		return animal.Animal{}, err
	}
	if !ok {
		return animal.Animal{}, fmt.Errorf("%w: enclosure %d", ErrNotFound, a.EnclosureID)
	}
	if len(enc.Residents) >= enc.Capacity {
		return animal.Animal{}, fmt.Errorf("%w: no room for a newborn in enclosure %d", ErrIneligible, enc.ID)
	}

	born, err := e.Animals.Add(ctx, newborn(a, b, e.Rand))
	if err != nil {
		return animal.Animal{}, err
	}
	enc.AddResident(born.ID)
	if _, err := e.Enclosures.Update(ctx, enc); err != nil {
		return animal.Animal{}, err
	}

	w, err := e.World.Get(ctx)
	if err != nil {
		return animal.Animal{}, err
	}
	w.TotalAnimals++
	if err := e.World.Set(ctx, w); err != nil {
		return animal.Animal{}, err
	}

	e.log().Info("animal born",
		zap.String("species", born.Species),
		zap.String("parent_a", a.DisplayName),
		zap.String("parent_b", b.DisplayName))
	return born, nil
}

// pairingError reports why a and b may not breed: different enclosures
// (or unplaced), same sex, or either too young.
func pairingError(a, b animal.Animal, minAgeDays int) error {
	if !a.Placed() || a.EnclosureID != b.EnclosureID {
		return fmt.Errorf("%w: animals must share an enclosure", ErrIneligible)
	}
	if a.Sex == b.Sex {
		return fmt.Errorf("%w: animals must be of opposite sex", ErrIneligible)
	}
	if a.AgeDays <= minAgeDays || b.AgeDays <= minAgeDays {
		return fmt.Errorf("%w: both animals must be older than %d days", ErrIneligible, minAgeDays)
	}
	return nil
}

// newborn builds the offspring: hybrid species label from the halves of
// the parents' species names, quarter of the combined weight, averaged
// price, diet and climate from the first parent.
func newborn(a, b animal.Animal, src rng.Source) animal.Animal {
	ra, rb := []rune(a.Species), []rune(b.Species)
	species := string(ra[:len(ra)/2]) + string(rb[len(rb)/2:])

	sex := animal.Male
	if src.Intn(2) != 0 {
		sex = animal.Female
	}

	return animal.Animal{
		Species:     species,
		DisplayName: species + NewbornSuffix,
		AgeDays:     0,
		Weight:      (a.Weight + b.Weight) / 4,
		Climate:     a.Climate,
		Price:       (a.Price + b.Price) / 2,
		Diet:        a.Diet,
		EnclosureID: a.EnclosureID,
		Sex:         sex,
		BornInZoo:   true,
		ParentA:     a.DisplayName,
		ParentB:     b.DisplayName,
	}
}
