package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/evep-admin/internal/models"
)

func sampleRecords() []models.TeacherRecord {
	return []models.TeacherRecord{
		{ID: "1", FirstName: "Ann", LastName: "Kaew", NationalID: "1100501234567", Phone: "0812345678", Email: "ann@school-a.ac.th", School: "A", Gender: models.GenderFemale},
		{ID: "2", FirstName: "Bob", LastName: "Srisuk", NationalID: "1100507654321", Phone: "0898765432", Email: "bob@school-b.ac.th", School: "B", Gender: models.GenderMale},
		{ID: "3", FirstName: "Chai", LastName: "Anong", NationalID: "1100509999999", Phone: "0861112222", Email: "chai@school-a.ac.th", School: "A", Gender: models.GenderMale},
	}
}

func TestVisibleDefaultCriteriaReturnsEverything(t *testing.T) {
	records := sampleRecords()
	visible := Visible(records, models.DefaultCriteria())
	assert.Equal(t, records, visible)
}

func TestVisibleSearchIsCaseInsensitiveSubstring(t *testing.T) {
	records := []models.TeacherRecord{
		{FirstName: "Ann", School: "A", Gender: models.GenderFemale},
		{FirstName: "Bob", School: "B", Gender: models.GenderMale},
	}
	visible := Visible(records, models.FilterCriteria{Search: "an", School: models.FilterAll, Gender: models.FilterAll})
	require.Len(t, visible, 1)
	assert.Equal(t, "Ann", visible[0].FirstName)
}

func TestVisibleSearchMatchesAnyOfFiveFields(t *testing.T) {
	records := sampleRecords()

	byLastName := Visible(records, models.FilterCriteria{Search: "srisuk", School: models.FilterAll, Gender: models.FilterAll})
	require.Len(t, byLastName, 1)
	assert.Equal(t, "Bob", byLastName[0].FirstName)

	byNationalID := Visible(records, models.FilterCriteria{Search: "7654321", School: models.FilterAll, Gender: models.FilterAll})
	require.Len(t, byNationalID, 1)
	assert.Equal(t, "Bob", byNationalID[0].FirstName)

	byPhone := Visible(records, models.FilterCriteria{Search: "0861", School: models.FilterAll, Gender: models.FilterAll})
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Chai", byPhone[0].FirstName)

	byEmail := Visible(records, models.FilterCriteria{Search: "school-b", School: models.FilterAll, Gender: models.FilterAll})
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Bob", byEmail[0].FirstName)
}

func TestVisibleSearchKeepsWhitespaceSignificant(t *testing.T) {
	records := sampleRecords()

	// The match is a plain substring test; surrounding spaces are part of
	// the needle, not stripped.
	visible := Visible(records, models.FilterCriteria{Search: " ann", School: models.FilterAll, Gender: models.FilterAll})
	assert.Empty(t, visible)

	visible = Visible(records, models.FilterCriteria{Search: "ann ", School: models.FilterAll, Gender: models.FilterAll})
	assert.Empty(t, visible)
}

func TestVisiblePredicatesCombineWithAnd(t *testing.T) {
	records := sampleRecords()

	// "Anong" matches Chai's last name but the gender predicate cuts him.
	visible := Visible(records, models.FilterCriteria{Search: "anong", School: models.FilterAll, Gender: models.GenderFemale})
	assert.Empty(t, visible)

	visible = Visible(records, models.FilterCriteria{Search: "", School: "A", Gender: models.GenderMale})
	require.Len(t, visible, 1)
	assert.Equal(t, "Chai", visible[0].FirstName)
}

func TestVisibleEveryResultSatisfiesAllPredicates(t *testing.T) {
	records := sampleRecords()
	criteria := models.FilterCriteria{Search: "a", School: "A", Gender: models.GenderMale}
	for _, r := range Visible(records, criteria) {
		assert.Equal(t, "A", r.School)
		assert.Equal(t, models.GenderMale, r.Gender)
	}
}

func TestVisibleSchoolExactMatchOnly(t *testing.T) {
	records := sampleRecords()
	visible := Visible(records, models.FilterCriteria{Search: "", School: "AA", Gender: models.FilterAll})
	assert.Empty(t, visible)
}

func TestSchoolsSortedDistinct(t *testing.T) {
	records := sampleRecords()
	records = append(records, models.TeacherRecord{School: ""})
	assert.Equal(t, []string{"A", "B"}, Schools(records))
}
