package offices

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedStrategy(name string, names []string, err error) Strategy {
	return Strategy{
		Name: name,
		Fetch: func(ctx context.Context) ([]string, error) {
			return names, err
		},
	}
}

func syntheticRoster(n int) []string {
	roster := make([]string, n)
	for i := range roster {
		roster[i] = fmt.Sprintf("Office %04d BO", i)
	}
	return roster
}

func TestArbitrate(t *testing.T) {
	ctx := context.Background()

	t.Run("TestLargestResultWins", func(t *testing.T) {
		// A chunked read capped at a silent page limit must lose to the
		// minimal-column fallback that got everything.
		strategies := []Strategy{
			namedStrategy("chunked-range", syntheticRoster(1000), nil),
			namedStrategy("minimal-columns", syntheticRoster(1247), nil),
		}

		best, winner := Arbitrate(ctx, strategies)
		assert.Equal(t, "minimal-columns", winner)
		assert.Len(t, best, 1247)
	})

	t.Run("TestFailedStrategyScoresZero", func(t *testing.T) {
		strategies := []Strategy{
			namedStrategy("single-range", nil, errors.New("timeout")),
			namedStrategy("small-batch", syntheticRoster(3), nil),
		}

		best, winner := Arbitrate(ctx, strategies)
		assert.Equal(t, "small-batch", winner)
		assert.Len(t, best, 3)
	})

	t.Run("TestAllStrategiesEmptyYieldsNothing", func(t *testing.T) {
		strategies := []Strategy{
			namedStrategy("a", nil, errors.New("down")),
			namedStrategy("b", []string{}, nil),
		}

		best, winner := Arbitrate(ctx, strategies)
		assert.Empty(t, best)
		assert.Equal(t, "", winner)
	})

	t.Run("TestTieGoesToEarlierStrategy", func(t *testing.T) {
		strategies := []Strategy{
			namedStrategy("first", syntheticRoster(10), nil),
			namedStrategy("second", syntheticRoster(10), nil),
		}

		_, winner := Arbitrate(ctx, strategies)
		assert.Equal(t, "first", winner)
	})
}

func TestFetchPaged(t *testing.T) {
	ctx := context.Background()

	t.Run("TestShortPageSignalsEnd", func(t *testing.T) {
		roster := syntheticRoster(250)
		calls := 0
		fetchPage := func(ctx context.Context, offset, limit int) ([]string, error) {
			calls++
			if offset >= len(roster) {
				return nil, nil
			}
			end := offset + limit
			if end > len(roster) {
				end = len(roster)
			}
			return roster[offset:end], nil
		}

		all, err := FetchPaged(ctx, 100, 25, fetchPage)
		assert.NoError(t, err)
		assert.Len(t, all, 250)
		assert.Equal(t, 3, calls)
	})

	t.Run("TestPageCapBoundsAlwaysFullPages", func(t *testing.T) {
		// Pathological store: every page comes back full forever.
		calls := 0
		fetchPage := func(ctx context.Context, offset, limit int) ([]string, error) {
			calls++
			return syntheticRoster(limit), nil
		}

		all, err := FetchPaged(ctx, 100, 5, fetchPage)
		assert.NoError(t, err)
		assert.Equal(t, 5, calls)
		assert.Len(t, all, 500)
	})

	t.Run("TestPageErrorAborts", func(t *testing.T) {
		fetchPage := func(ctx context.Context, offset, limit int) ([]string, error) {
			return nil, errors.New("range read failed")
		}

		_, err := FetchPaged(ctx, 100, 5, fetchPage)
		assert.Error(t, err)
	})
}

func TestDedupeSorted(t *testing.T) {
	t.Run("TestExactDuplicatesRemovedCasePreserved", func(t *testing.T) {
		names := DedupeSorted([]string{"Madurai BO", "Chennai RO", "Madurai BO", "", "chennai ro"})

		// Exact-string dedup only: distinct casings both survive, sorted
		// case-insensitively with exact spelling as tiebreak.
		assert.Equal(t, []string{"Chennai RO", "chennai ro", "Madurai BO"}, names)
	})

	t.Run("TestAlreadyUniqueJustSorts", func(t *testing.T) {
		names := DedupeSorted([]string{"Trichy SO", "Chennai RO"})
		assert.Equal(t, []string{"Chennai RO", "Trichy SO"}, names)
	})
}
