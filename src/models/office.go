package models

import (
	"sort"
	"strings"
)

// Office is one row of the relational offices roster. The roster is owned by
// an external system and is read-only here. Office names are stored
// case-sensitively but always compared case-insensitively.
type Office struct {
	OfficeName string `gorm:"column:office_name" json:"officeName"`
	Region     string `gorm:"column:region" json:"region,omitempty"`
	Division   string `gorm:"column:division" json:"division,omitempty"`
	FacilityID string `gorm:"column:facility_id" json:"facilityId,omitempty"`
	// The legacy schema truncated this column name; keep it as stored.
	ReportingOfficeName string `gorm:"column:reporting_office_nam" json:"reportingOfficeName,omitempty"`
}

func (Office) TableName() string {
	return "offices"
}

// UserOffices is a user's own office plus every office reporting to it.
type UserOffices struct {
	Own       string   `json:"own"`
	Reporting []string `json:"reporting"`
}

// All returns Own and Reporting as one deduplicated, sorted list.
func (u UserOffices) All() []string {
	if u.Own == "" {
		return []string{}
	}
	return MergeOfficeNames(u.Own, u.Reporting)
}

// NormalizeOfficeName is the comparison key for office names: trimmed and
// lower-cased. Stored casing is preserved everywhere names are displayed.
func NormalizeOfficeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MergeOfficeNames unions own with reporting, dropping blanks and
// case/whitespace duplicates. The first spelling seen wins; the result is
// sorted alphabetically.
func MergeOfficeNames(own string, reporting []string) []string {
	seen := make(map[string]bool)
	merged := make([]string, 0, len(reporting)+1)
	for _, name := range append([]string{own}, reporting...) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := NormalizeOfficeName(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, trimmed)
	}
	sort.Slice(merged, func(i, j int) bool {
		a, b := strings.ToLower(merged[i]), strings.ToLower(merged[j])
		if a == b {
			return merged[i] < merged[j]
		}
		return a < b
	})
	return merged
}
