// Package offices retrieves the organizational office roster and resolves
// reporting hierarchies. The relational store behind the roster has silently
// truncated large result sets depending on ordering and load, so no single
// query shape is trusted: several independent retrieval strategies run and
// the one returning the most records wins.
package offices

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"

	"Backend-OfficeReports/src/cache"
	DB "Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/models"

	"gorm.io/gorm"
)

const (
	directoryCacheKey = "all"

	rangeLimit     = 10000
	chunkSize      = 1000
	smallBatchSize = 200
	// Upper bound on pages per chunked strategy. Guarantees termination even
	// if the store keeps returning full (or empty) pages forever.
	maxPages = 25
)

// ErrNoOfficeData is returned only when every strategy failed and no roster
// was ever cached. Anything short of that degrades to cached data.
var ErrNoOfficeData = errors.New("office roster unavailable and no cached copy exists")

var (
	directoryCache = cache.New[string, []string](cache.DefaultTTL)
	hierarchyCache = cache.New[string, models.UserOffices](cache.DefaultTTL)
)

// Strategy is one independent attempt at retrieving the full roster.
// A strategy that errors simply scores zero records.
type Strategy struct {
	Name  string
	Fetch func(ctx context.Context) ([]string, error)
}

// FetchOfficeNames returns the unique, sorted office names, served from
// cache when fresh. On refresh failure the last good cache is served even
// if expired; only a process that never saw the roster gets an error.
func FetchOfficeNames(ctx context.Context) ([]string, error) {
	if names, ok := directoryCache.Get(directoryCacheKey); ok {
		return names, nil
	}

	names, err := RefreshDirectory(ctx)
	if err == nil {
		return names, nil
	}

	if stale, ok := directoryCache.GetStale(directoryCacheKey); ok {
		log.Println("office roster refresh failed, serving stale cache:", err)
		return stale, nil
	}
	return nil, ErrNoOfficeData
}

// RefreshDirectory runs the full strategy arbitration against the store and
// repopulates the cache. Also invoked by the background refresh job.
func RefreshDirectory(ctx context.Context) ([]string, error) {
	db := DB.PG()
	if db == nil {
		return nil, errors.New("relational store not initialized")
	}

	best, winner := Arbitrate(ctx, storeStrategies(db))
	if len(best) == 0 {
		return nil, errors.New("every office retrieval strategy returned no records")
	}

	names := DedupeSorted(best)
	directoryCache.Set(directoryCacheKey, names)
	log.Printf("office roster refreshed: %d unique offices via %s", len(names), winner)
	return names, nil
}

// InvalidateCaches drops the roster and hierarchy caches.
func InvalidateCaches() {
	directoryCache.Clear()
	hierarchyCache.Clear()
}

// Arbitrate executes every strategy and keeps the result with the most
// records. Strategies run concurrently; they are independent reads and a
// failure of one must not disturb the others. Ties go to the earlier
// strategy in the list.
func Arbitrate(ctx context.Context, strategies []Strategy) ([]string, string) {
	results := make([][]string, len(strategies))

	var wg sync.WaitGroup
	for i, s := range strategies {
		wg.Add(1)
		go func(i int, s Strategy) {
			defer wg.Done()
			names, err := s.Fetch(ctx)
			if err != nil {
				log.Printf("office strategy %s failed: %v", s.Name, err)
				return
			}
			results[i] = names
		}(i, s)
	}
	wg.Wait()

	bestIdx := -1
	for i := range results {
		if bestIdx == -1 || len(results[i]) > len(results[bestIdx]) {
			bestIdx = i
		}
	}
	if bestIdx == -1 || len(results[bestIdx]) == 0 {
		return nil, ""
	}
	return results[bestIdx], strategies[bestIdx].Name
}

// FetchPaged accumulates pages from fetchPage until a short page signals
// end-of-data, bounded by pageCap iterations.
func FetchPaged(ctx context.Context, pageSize, pageCap int, fetchPage func(ctx context.Context, offset, limit int) ([]string, error)) ([]string, error) {
	var all []string
	for page := 0; page < pageCap; page++ {
		batch, err := fetchPage(ctx, page*pageSize, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < pageSize {
			break
		}
	}
	return all, nil
}

// DedupeSorted removes exact-string duplicates, preserving casing, and
// sorts alphabetically (case-insensitive, exact spelling as tiebreak).
func DedupeSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}
	sort.Slice(unique, func(i, j int) bool {
		a, b := strings.ToLower(unique[i]), strings.ToLower(unique[j])
		if a == b {
			return unique[i] < unique[j]
		}
		return a < b
	})
	return unique
}

func storeStrategies(db *gorm.DB) []Strategy {
	return []Strategy{
		{
			Name: "chunked-range",
			Fetch: func(ctx context.Context) ([]string, error) {
				return FetchPaged(ctx, chunkSize, maxPages, func(ctx context.Context, offset, limit int) ([]string, error) {
					return fetchOfficePage(ctx, db, true, offset, limit)
				})
			},
		},
		{
			Name: "single-range",
			Fetch: func(ctx context.Context) ([]string, error) {
				return fetchOfficePage(ctx, db, true, 0, rangeLimit)
			},
		},
		{
			Name: "unordered-range",
			Fetch: func(ctx context.Context) ([]string, error) {
				return fetchOfficePage(ctx, db, false, 0, rangeLimit)
			},
		},
		{
			Name: "small-batch",
			Fetch: func(ctx context.Context) ([]string, error) {
				return FetchPaged(ctx, smallBatchSize, maxPages, func(ctx context.Context, offset, limit int) ([]string, error) {
					return fetchOfficePage(ctx, db, true, offset, limit)
				})
			},
		},
		{
			// Some backends cap wide selects sooner than narrow ones;
			// asking for the single needed column is the fallback of record.
			Name: "minimal-columns",
			Fetch: func(ctx context.Context) ([]string, error) {
				var names []string
				err := db.WithContext(ctx).
					Model(&models.Office{}).
					Order("office_name").
					Limit(rangeLimit).
					Pluck("office_name", &names).Error
				if err != nil {
					return nil, err
				}
				return names, nil
			},
		},
	}
}

func fetchOfficePage(ctx context.Context, db *gorm.DB, ordered bool, offset, limit int) ([]string, error) {
	query := db.WithContext(ctx).Model(&models.Office{}).Offset(offset).Limit(limit)
	if ordered {
		query = query.Order("office_name")
	}

	var offices []models.Office
	if err := query.Find(&offices).Error; err != nil {
		return nil, err
	}

	names := make([]string, 0, len(offices))
	for _, office := range offices {
		names = append(names, office.OfficeName)
	}
	return names, nil
}
