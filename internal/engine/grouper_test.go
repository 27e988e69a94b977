package engine

import (
	"testing"

	"github.com/PizzaDAO/rsv-pizza-sub001/internal/catalog"
	"github.com/PizzaDAO/rsv-pizza-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guest(id string, likes, dislikes []string, restrictions ...models.DietaryRestriction) models.Guest {
	return models.Guest{
		ID:                  id,
		Name:                id,
		DietaryRestrictions: restrictions,
		LikedToppings:       likes,
		DislikedToppings:    dislikes,
	}
}

func clusterIDs(clusters [][]models.Guest) [][]string {
	out := make([][]string, len(clusters))
	for i, c := range clusters {
		for _, g := range c {
			out[i] = append(out[i], g.ID)
		}
	}
	return out
}

func TestCompatibilityScore(t *testing.T) {
	testCases := []struct {
		name     string
		a        models.Guest
		b        models.Guest
		expected int
	}{
		{
			name:     "shared likes score two each",
			a:        guest("a", []string{"pepperoni", "mushrooms"}, nil),
			b:        guest("b", []string{"pepperoni", "mushrooms"}, nil),
			expected: 4,
		},
		{
			name:     "conflict costs one per direction",
			a:        guest("a", []string{"pepperoni"}, nil),
			b:        guest("b", []string{"mushrooms"}, []string{"pepperoni"}),
			expected: -1,
		},
		{
			name:     "mutual conflicts stack",
			a:        guest("a", []string{"pepperoni"}, []string{"mushrooms"}),
			b:        guest("b", []string{"mushrooms"}, []string{"pepperoni"}),
			expected: -2,
		},
		{
			name:     "no overlap is neutral",
			a:        guest("a", []string{"pepperoni"}, nil),
			b:        guest("b", []string{"olives"}, nil),
			expected: 0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compatibilityScore(tt.a, tt.b))
			assert.Equal(t, tt.expected, compatibilityScore(tt.b, tt.a), "score must be symmetric")
		})
	}
}

func TestGroupCompatibleGuestsRespectsCapacity(t *testing.T) {
	var guests []models.Guest
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		guests = append(guests, guest(id, []string{"pepperoni"}, nil))
	}

	clusters := GroupCompatibleGuests(guests, catalog.StyleByID("new-york"))
	total := 0
	for _, c := range clusters {
		assert.LessOrEqual(t, len(c), 5)
		total += len(c)
	}
	assert.Equal(t, len(guests), total)
}

func TestGroupCompatibleGuestsNeapolitanPairs(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni"}, nil),
		guest("b", []string{"pepperoni"}, nil),
		guest("c", []string{"mushrooms"}, nil),
	}

	clusters := GroupCompatibleGuests(guests, catalog.StyleByID("neapolitan"))
	require.Len(t, clusters, 2)
	for _, c := range clusters {
		assert.LessOrEqual(t, len(c), 2)
	}
}

func TestGroupCompatibleGuestsNeverMixesRestrictions(t *testing.T) {
	guests := []models.Guest{
		guest("omni", []string{"pepperoni"}, nil),
		guest("vegan", []string{"mushrooms"}, nil, models.Vegan),
		guest("omni2", []string{"pepperoni"}, nil),
		guest("veggie", []string{"mushrooms"}, nil, models.Vegetarian),
	}

	clusters := GroupCompatibleGuests(guests, catalog.StyleByID("new-york"))
	require.Len(t, clusters, 3)
	assert.Equal(t, [][]string{{"omni", "omni2"}, {"vegan"}, {"veggie"}}, clusterIDs(clusters))
}

func TestGroupCompatibleGuestsNoneEqualsEmptyRestrictions(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni"}, nil, models.NoDiet),
		guest("b", []string{"pepperoni"}, nil),
	}

	clusters := GroupCompatibleGuests(guests, catalog.StyleByID("new-york"))
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 2)
}

func TestGroupCompatibleGuestsGreedyPrefersCompatible(t *testing.T) {
	// Three pepperoni fans and three pepperoni haters, capacity two: the
	// packer should pull in like-minded guests before conflicting ones.
	guests := []models.Guest{
		guest("fan1", []string{"pepperoni"}, nil),
		guest("hater1", []string{"mushrooms"}, []string{"pepperoni"}),
		guest("fan2", []string{"pepperoni"}, nil),
		guest("hater2", []string{"mushrooms"}, []string{"pepperoni"}),
	}

	clusters := GroupCompatibleGuests(guests, catalog.StyleByID("neapolitan"))
	require.Len(t, clusters, 2)
	assert.Equal(t, [][]string{{"fan1", "fan2"}, {"hater1", "hater2"}}, clusterIDs(clusters))
}

func TestGroupCompatibleGuestsDeterministic(t *testing.T) {
	guests := []models.Guest{
		guest("a", []string{"pepperoni", "mushrooms"}, nil),
		guest("b", []string{"mushrooms"}, []string{"pepperoni"}),
		guest("c", []string{"pepperoni"}, nil),
		guest("d", []string{"olives"}, nil, models.Vegan),
		guest("e", []string{"pepperoni", "olives"}, nil),
		guest("f", []string{"mushrooms", "olives"}, nil),
	}

	first := clusterIDs(GroupCompatibleGuests(guests, catalog.StyleByID("neapolitan")))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, clusterIDs(GroupCompatibleGuests(guests, catalog.StyleByID("neapolitan"))))
	}
}

func TestGroupCompatibleGuestsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupCompatibleGuests(nil, catalog.StyleByID("new-york")))
}
