package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/config"
	"github.com/quinxq/zoo-zov-simulator/internal/market"
	"github.com/quinxq/zoo-zov-simulator/internal/rng"
)

// seedScript queues rolls behind the single market refresh NewZoo runs.
func seedScript(rolls ...int) *rng.Script {
	skip := make([]int, len(market.Catalog())-1+market.MaxOffers)
	return rng.NewScript(append(skip, rolls...)...)
}

func TestBreed(t *testing.T) {
	ctx := context.Background()
	e := testZoo(t, config.Default(), seedScript(1))

	sire := admit(t, e, animal.Animal{
		Species: "Lion", DisplayName: "Leo", AgeDays: 10, Weight: 300, Price: 400,
		Diet: animal.Carnivore, Climate: animal.Tropical, Sex: animal.Male, EnclosureID: 1,
	})
	dam := admit(t, e, animal.Animal{
		Species: "Deer", DisplayName: "Bess", AgeDays: 10, Weight: 200, Price: 150,
		Diet: animal.Herbivore, Climate: animal.Temperate, Sex: animal.Female, EnclosureID: 1,
	})

	born, err := e.Breed(ctx, sire.ID, dam.ID)
	require.NoError(t, err)

	assert.Equal(t, "Lier", born.Species)
	assert.Equal(t, "Lier_Newborn", born.DisplayName)
	assert.Zero(t, born.AgeDays)
	assert.InDelta(t, 125.0, born.Weight, 1e-9)
	assert.Equal(t, 275, born.Price)
	assert.Equal(t, animal.Carnivore, born.Diet, "diet follows the first parent")
	assert.Equal(t, animal.Tropical, born.Climate)
	assert.Equal(t, animal.Female, born.Sex)
	assert.Equal(t, 1, born.EnclosureID)
	assert.True(t, born.BornInZoo)
	assert.Equal(t, "Leo", born.ParentA)
	assert.Equal(t, "Bess", born.ParentB)

	w, err := e.World.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, w.TotalAnimals)

	enc, ok, err := e.Enclosures.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, enc.Houses(born.ID))
}

func TestBreedIneligiblePairs(t *testing.T) {
	ctx := context.Background()

	newPair := func(t *testing.T, mutate func(a, b *animal.Animal)) (*Engine, int, int) {
		t.Helper()
		e := testZoo(t, config.Default(), seedScript())
		a := animal.Animal{
			Species: "Deer", DisplayName: "Buck", AgeDays: 10, Weight: 200, Price: 150,
			Diet: animal.Herbivore, Climate: animal.Temperate, Sex: animal.Male, EnclosureID: 1,
		}
		b := animal.Animal{
			Species: "Deer", DisplayName: "Doe", AgeDays: 10, Weight: 200, Price: 150,
			Diet: animal.Herbivore, Climate: animal.Temperate, Sex: animal.Female, EnclosureID: 1,
		}
		mutate(&a, &b)
		first := admit(t, e, a)
		second := admit(t, e, b)
		return e, first.ID, second.ID
	}

	t.Run("same animal", func(t *testing.T) {
		e, first, _ := newPair(t, func(a, b *animal.Animal) {})
		_, err := e.Breed(ctx, first, first)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown animal", func(t *testing.T) {
		e, first, _ := newPair(t, func(a, b *animal.Animal) {})
		_, err := e.Breed(ctx, first, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("different enclosures", func(t *testing.T) {
		e, first, second := newPair(t, func(a, b *animal.Animal) { b.EnclosureID = 0 })
		_, err := e.Breed(ctx, second, first)
		assert.ErrorIs(t, err, ErrIneligible)
	})

	t.Run("same sex", func(t *testing.T) {
		e, first, second := newPair(t, func(a, b *animal.Animal) { b.Sex = animal.Male })
		_, err := e.Breed(ctx, first, second)
		assert.ErrorIs(t, err, ErrIneligible)
	})

	t.Run("too young", func(t *testing.T) {
		e, first, second := newPair(t, func(a, b *animal.Animal) { b.AgeDays = 5 })
		_, err := e.Breed(ctx, first, second)
		assert.ErrorIs(t, err, ErrIneligible)
	})

	t.Run("full enclosure", func(t *testing.T) {
		e, first, second := newPair(t, func(a, b *animal.Animal) {})
		for i := 0; i < 3; i++ {
			admit(t, e, animal.Animal{
				Species: "Rabbit", DisplayName: "Filler", AgeDays: 3,
				Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1,
			})
		}
		_, err := e.Breed(ctx, first, second)
		assert.ErrorIs(t, err, ErrIneligible)
	})

	t.Run("failed pairing mutates nothing", func(t *testing.T) {
		e, first, second := newPair(t, func(a, b *animal.Animal) { b.Sex = animal.Male })
		_, err := e.Breed(ctx, first, second)
		require.Error(t, err)

		count, err := e.Animals.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		w, err := e.World.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, w.TotalAnimals)
	})
}
