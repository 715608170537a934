package offices

import (
	"context"
	"log"

	DB "Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ResolveUserOffices returns the user's own office and the offices reporting
// to it. A user with no office assignment gets an empty result, never the
// global roster; that is the primary defense against over-broad access.
// On store failure the result degrades in order: cached hierarchy for the
// office, own office alone, empty.
func ResolveUserOffices(ctx context.Context, userID string) models.UserOffices {
	own := lookupOwnOffice(ctx, userID)
	if own == "" {
		return models.UserOffices{Reporting: []string{}}
	}

	key := models.NormalizeOfficeName(own)
	if cached, ok := hierarchyCache.Get(key); ok {
		return cached
	}

	reporting, err := fetchReportingOffices(ctx, own)
	if err != nil {
		if stale, ok := hierarchyCache.GetStale(key); ok {
			log.Println("reporting office lookup failed, serving stale hierarchy:", err)
			return stale
		}
		log.Println("reporting office lookup failed, degrading to own office:", err)
		return models.UserOffices{Own: own, Reporting: []string{}}
	}

	resolved := models.UserOffices{Own: own, Reporting: reporting}
	hierarchyCache.Set(key, resolved)
	return resolved
}

func lookupOwnOffice(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}

	var employee models.Employee
	err := DB.EmployeeCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&employee)
	if err != nil {
		return ""
	}
	return employee.OfficeName
}

func fetchReportingOffices(ctx context.Context, officeName string) ([]string, error) {
	db := DB.PG()

	var names []string
	err := db.WithContext(ctx).
		Model(&models.Office{}).
		Where("reporting_office_nam = ?", officeName).
		Order("office_name").
		Pluck("office_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
