// Package submissions reads and appends submission rows. Which relational
// table holds them has changed across deployments, so the live table is
// discovered at startup by probing an ordered candidate list with a cheap
// count; the first table that responds is used for the process lifetime.
package submissions

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	DB "Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/models"
)

// ErrSourceNotFound means no candidate submissions table responded. This is
// the one failure with nothing to degrade to, so it propagates to callers.
var ErrSourceNotFound = errors.New("no submissions data source responded")

// Probed in fixed preference order.
var candidateTables = []string{
	"form_submissions",
	"submissions",
	"page_submissions",
	"dynamic_form_submissions",
}

// locator probes an ordered candidate list and caches the first success for
// the process lifetime; it is never re-probed per call.
type locator struct {
	mu         sync.Mutex
	resolved   string
	candidates []string
	probe      func(ctx context.Context, name string) error
}

func (l *locator) Resolve(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resolved != "" {
		return l.resolved, nil
	}
	for _, name := range l.candidates {
		if err := l.probe(ctx, name); err != nil {
			continue
		}
		l.resolved = name
		log.Println("submissions source resolved to table:", name)
		return name, nil
	}
	return "", ErrSourceNotFound
}

var source = &locator{candidates: candidateTables, probe: probeTable}

func probeTable(ctx context.Context, name string) error {
	var n int64
	return DB.PG().WithContext(ctx).Table(name).Limit(1).Count(&n).Error
}

// Allowed sort columns for listings.
var sortColumns = map[string]bool{
	"id":              true,
	"form_identifier": true,
	"submitted_at":    true,
}

// Fetch returns a page of submissions, optionally restricted to one form,
// plus the total row count. Newest first by default.
func Fetch(ctx context.Context, formID string, params models.PaginationParams) ([]models.Submission, int64, error) {
	table, err := source.Resolve(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := DB.PG().WithContext(ctx).Table(table)
	if formID != "" {
		query = query.Where("form_identifier = ?", formID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !sortColumns[sortBy] {
		sortBy = "submitted_at"
	}
	direction := "desc"
	if params.Order == "asc" {
		direction = "asc"
	}

	var batch []models.Submission
	err = query.
		Order(sortBy + " " + direction).
		Offset(params.GetOffset()).
		Limit(params.Limit).
		Find(&batch).Error
	if err != nil {
		return nil, 0, err
	}
	return batch, total, nil
}

// FetchBatch loads the most recent submissions for reporting, up to limit.
func FetchBatch(ctx context.Context, formID string, limit int) ([]models.Submission, error) {
	params := models.DefaultPagination()
	params.Limit = limit
	batch, _, err := Fetch(ctx, formID, params)
	return batch, err
}

// Insert appends a submission. Payloads are not validated at write time;
// this system is read-side reconciliation and stores what it is given.
func Insert(ctx context.Context, sub *models.Submission) error {
	table, err := source.Resolve(ctx)
	if err != nil {
		return err
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now()
	}
	return DB.PG().WithContext(ctx).Table(table).Create(sub).Error
}
