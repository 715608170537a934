package reports

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"Backend-OfficeReports/src/models"
	"Backend-OfficeReports/src/services/fieldschema"
)

// ExportHeader is the fixed CSV header row. The last column carries the raw
// field-id-keyed payload as a JSON string; the csv writer supplies the
// double-quote escaping.
var ExportHeader = []string{"ID", "Form Identifier", "User ID", "User Name", "User Office", "Submitted At", "Submission Data"}

// WriteSubmissionsCSV serializes the batch to w in the export format.
func WriteSubmissionsCSV(ctx context.Context, w io.Writer, batch []models.Submission) error {
	mappings := resolveMappings(ctx, distinctFormIDs(batch), fieldschema.GetFieldMapping)

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}

	for _, sub := range batch {
		mapping := mappings[sub.FormIdentifier]

		payload := "{}"
		if len(sub.SubmissionData) > 0 {
			raw, err := json.Marshal(sub.SubmissionData)
			if err != nil {
				return err
			}
			payload = string(raw)
		}

		submittedAt := ""
		if !sub.SubmittedAt.IsZero() {
			submittedAt = sub.SubmittedAt.Format(time.RFC3339)
		}

		record := []string{
			strconv.FormatInt(sub.ID, 10),
			sub.FormIdentifier,
			sub.UserID,
			ExtractUserName(sub, mapping),
			ExtractOfficeName(sub, mapping),
			submittedAt,
			payload,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
