package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/evep-admin/internal/models"
)

type mockSubmitter struct {
	created   []models.DraftForm
	updated   map[string]models.DraftForm
	err       error
	hookCalls int
}

func (m *mockSubmitter) Create(ctx context.Context, draft models.DraftForm, onSuccess func()) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, draft)
	if onSuccess != nil {
		onSuccess()
		m.hookCalls++
	}
	return nil
}

func (m *mockSubmitter) Update(ctx context.Context, id string, draft models.DraftForm, onSuccess func()) error {
	if m.err != nil {
		return m.err
	}
	if m.updated == nil {
		m.updated = make(map[string]models.DraftForm)
	}
	m.updated[id] = draft
	if onSuccess != nil {
		onSuccess()
		m.hookCalls++
	}
	return nil
}

func sampleRecord() models.TeacherRecord {
	return models.TeacherRecord{
		ID:         "t-9",
		Title:      "Mr.",
		FirstName:  "Chai",
		LastName:   "Anong",
		NationalID: "1100509999999",
		BirthDate:  "1979-11-02",
		Gender:     models.GenderMale,
		Phone:      "0861112222",
		Email:      "chai@school.ac.th",
		School:     "Ban Nong School",
		Position:   "Teacher",
		SchoolYear: "2567",
		Address: &models.WorkAddress{
			HouseNo:  "99",
			Province: "Udon Thani",
		},
	}
}

func TestOpenForCreateResetsDraft(t *testing.T) {
	ctrl := NewController(&mockSubmitter{})

	ctrl.OpenForEdit(sampleRecord())
	ctrl.OpenForCreate()

	assert.Equal(t, models.NewDraft(), ctrl.Draft())
	_, editing := ctrl.Editing()
	assert.False(t, editing)
}

func TestOpenForEditThenSubmitRoundTripsVerbatim(t *testing.T) {
	submitter := &mockSubmitter{}
	ctrl := NewController(submitter)
	record := sampleRecord()

	ctrl.OpenForEdit(record)
	require.NoError(t, ctrl.Submit(context.Background(), nil))

	payload, ok := submitter.updated[record.ID]
	require.True(t, ok, "submit should dispatch to update for an edit target")
	assert.Equal(t, models.DraftFromRecord(record), payload)
	assert.Equal(t, record.FirstName, payload.FirstName)
	assert.Equal(t, record.Address.HouseNo, payload.Address.HouseNo)
	assert.Equal(t, record.Address.Province, payload.Address.Province)
}

func TestSubmitWithoutTargetCreates(t *testing.T) {
	submitter := &mockSubmitter{}
	ctrl := NewController(submitter)

	ctrl.OpenForCreate()
	require.NoError(t, ctrl.SetField("first_name", "Ann"))
	require.NoError(t, ctrl.Submit(context.Background(), nil))

	require.Len(t, submitter.created, 1)
	assert.Equal(t, "Ann", submitter.created[0].FirstName)
	assert.Empty(t, submitter.updated)
}

func TestSetAddressFieldMergesSiblings(t *testing.T) {
	ctrl := NewController(&mockSubmitter{})
	ctrl.OpenForCreate()

	require.NoError(t, ctrl.SetAddressField("house_no", "12/3"))
	require.NoError(t, ctrl.SetAddressField("province", "Khon Kaen"))

	draft := ctrl.Draft()
	assert.Equal(t, "12/3", draft.Address.HouseNo)
	assert.Equal(t, "Khon Kaen", draft.Address.Province)
	assert.Equal(t, "", draft.Address.Road)
}

func TestSetFieldRejectsUnknownNames(t *testing.T) {
	ctrl := NewController(&mockSubmitter{})
	ctrl.OpenForCreate()

	assert.Error(t, ctrl.SetField("no_such_field", "x"))
	assert.Error(t, ctrl.SetAddressField("no_such_field", "x"))
}

func TestSubmitPropagatesStoreError(t *testing.T) {
	submitter := &mockSubmitter{err: errors.New("boom")}
	ctrl := NewController(submitter)

	ctrl.OpenForCreate()
	assert.Error(t, ctrl.Submit(context.Background(), nil))
	assert.Zero(t, submitter.hookCalls)
}

func TestSubmitSendsEmptyFieldsUnvalidated(t *testing.T) {
	submitter := &mockSubmitter{}
	ctrl := NewController(submitter)

	ctrl.OpenForCreate()
	require.NoError(t, ctrl.Submit(context.Background(), nil))

	require.Len(t, submitter.created, 1)
	assert.Equal(t, models.DraftForm{}, submitter.created[0])
}
