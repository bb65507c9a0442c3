package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/rng"
)

func TestRefreshStocksWithoutDuplicates(t *testing.T) {
	m := New()
	m.Refresh(rng.New(42))

	offers := m.Offers()
	require.Len(t, offers, MaxOffers)

	seen := map[string]bool{}
	for _, a := range offers {
		assert.False(t, seen[a.Species], "species %s offered twice", a.Species)
		seen[a.Species] = true
		assert.Contains(t, []animal.Sex{animal.Male, animal.Female}, a.Sex)
		assert.Zero(t, a.ID, "offers carry no identity until purchased")
	}
}

func TestRefreshReplacesStaleOffers(t *testing.T) {
	m := New()
	m.Refresh(rng.New(1))

	_, ok := m.Take(0)
	require.True(t, ok)
	_, ok = m.Take(0)
	require.True(t, ok)
	require.Equal(t, MaxOffers-2, m.Len())

	m.Refresh(rng.New(2))
	assert.Equal(t, MaxOffers, m.Len())
}

func TestTake(t *testing.T) {
	m := New()
	m.Refresh(rng.NewScript())

	first := m.Offers()[0]
	got, ok := m.Take(0)
	require.True(t, ok)
	assert.Equal(t, first.Species, got.Species)
	assert.Equal(t, MaxOffers-1, m.Len())

	_, ok = m.Take(MaxOffers)
	assert.False(t, ok)
	_, ok = m.Take(-1)
	assert.False(t, ok)
}

func TestCatalogTemplates(t *testing.T) {
	catalog := Catalog()
	require.NotEmpty(t, catalog)

	for _, a := range catalog {
		assert.NotEmpty(t, a.Species)
		assert.Positive(t, a.Price)
		assert.Contains(t, []animal.Diet{animal.Herbivore, animal.Carnivore}, a.Diet)
		assert.Contains(t, []animal.Climate{animal.Tropical, animal.Temperate, animal.Arctic}, a.Climate)
	}
}
