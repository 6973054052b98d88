package filter

import (
	"sort"
	"strings"

	"github.com/noah-isme/evep-admin/internal/models"
)

// Visible derives the subset of records matching the criteria. The text
// predicate is a case-insensitive substring match across first name, last
// name, national id, phone and email (a record passes if any field
// matches); the school and gender predicates are exact matches bypassed by
// the "all" selector. A record is visible only when all three predicates
// pass.
func Visible(records []models.TeacherRecord, criteria models.FilterCriteria) []models.TeacherRecord {
	result := make([]models.TeacherRecord, 0, len(records))
	search := strings.ToLower(criteria.Search)
	for _, record := range records {
		if !matchesText(record, search) {
			continue
		}
		if criteria.School != models.FilterAll && record.School != criteria.School {
			continue
		}
		if criteria.Gender != models.FilterAll && record.Gender != criteria.Gender {
			continue
		}
		result = append(result, record)
	}
	return result
}

func matchesText(record models.TeacherRecord, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{
		record.FirstName,
		record.LastName,
		record.NationalID,
		record.Phone,
		record.Email,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Schools returns the sorted distinct school names present in the records,
// feeding the school selector.
func Schools(records []models.TeacherRecord) []string {
	seen := make(map[string]struct{}, len(records))
	schools := make([]string, 0, len(records))
	for _, record := range records {
		if record.School == "" {
			continue
		}
		if _, ok := seen[record.School]; ok {
			continue
		}
		seen[record.School] = struct{}{}
		schools = append(schools, record.School)
	}
	sort.Strings(schools)
	return schools
}
