package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/evep-admin/internal/models"
	apperrors "github.com/noah-isme/evep-admin/pkg/errors"
)

type mockAPI struct {
	records   []models.TeacherRecord
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockAPI) ListTeachers(ctx context.Context) ([]models.TeacherRecord, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockAPI) CreateTeacher(ctx context.Context, draft models.DraftForm) error {
	m.createCalls++
	return m.createErr
}

func (m *mockAPI) UpdateTeacher(ctx context.Context, id string, draft models.DraftForm) error {
	m.updateCalls++
	return m.updateErr
}

func (m *mockAPI) DeleteTeacher(ctx context.Context, id string) error {
	m.deleteCalls++
	return m.deleteErr
}

type mockNotifier struct {
	successes []string
	failures  []string
}

func (m *mockNotifier) Success(message string) { m.successes = append(m.successes, message) }
func (m *mockNotifier) Failure(message string) { m.failures = append(m.failures, message) }

func confirmYes(string) bool { return true }
func confirmNo(string) bool  { return false }

func TestLoadReplacesWholeList(t *testing.T) {
	api := &mockAPI{records: []models.TeacherRecord{{ID: "1"}, {ID: "2"}}}
	ds := NewDataStore(api, &mockNotifier{}, nil, zap.NewNop())

	require.NoError(t, ds.Load(context.Background()))
	assert.Len(t, ds.Records(), 2)

	api.records = []models.TeacherRecord{{ID: "3"}}
	require.NoError(t, ds.Load(context.Background()))

	records := ds.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "3", records[0].ID)
}

func TestLoadFailureClearsListAndNotifies(t *testing.T) {
	api := &mockAPI{records: []models.TeacherRecord{{ID: "1"}}}
	notes := &mockNotifier{}
	ds := NewDataStore(api, notes, nil, zap.NewNop())

	require.NoError(t, ds.Load(context.Background()))
	require.Len(t, ds.Records(), 1)

	api.listErr = apperrors.Wrap(apperrors.ErrFetchFailed, assert.AnError)
	require.Error(t, ds.Load(context.Background()))

	assert.Empty(t, ds.Records())
	assert.Error(t, ds.Err())
	require.Len(t, notes.failures, 1)
	assert.Equal(t, apperrors.ErrFetchFailed.Message, notes.failures[0])
}

func TestCreateSuccessClosesDialogThenReloadsOnce(t *testing.T) {
	api := &mockAPI{records: []models.TeacherRecord{{ID: "1"}}}
	notes := &mockNotifier{}
	ds := NewDataStore(api, notes, nil, zap.NewNop())

	closed := 0
	require.NoError(t, ds.Create(context.Background(), models.NewDraft(), func() { closed++ }))

	assert.Equal(t, 1, closed)
	assert.Equal(t, 1, api.createCalls)
	assert.Equal(t, 1, api.listCalls, "create must trigger exactly one reload")
	assert.Len(t, notes.successes, 1)
}

func TestCreateFailureNotifiesWithoutReloadOrClose(t *testing.T) {
	api := &mockAPI{createErr: apperrors.Wrap(apperrors.ErrCreateFailed, assert.AnError)}
	notes := &mockNotifier{}
	ds := NewDataStore(api, notes, nil, zap.NewNop())

	closed := 0
	require.Error(t, ds.Create(context.Background(), models.NewDraft(), func() { closed++ }))

	assert.Zero(t, closed)
	assert.Zero(t, api.listCalls)
	require.Len(t, notes.failures, 1)
	assert.Equal(t, apperrors.ErrCreateFailed.Message, notes.failures[0])
}

func TestUpdateSuccessReloads(t *testing.T) {
	api := &mockAPI{}
	notes := &mockNotifier{}
	ds := NewDataStore(api, notes, nil, zap.NewNop())

	require.NoError(t, ds.Update(context.Background(), "t-1", models.NewDraft(), nil))

	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 1, api.listCalls)
	assert.Len(t, notes.successes, 1)
}

func TestDeleteFailureLeavesListUntouchedAndSkipsReload(t *testing.T) {
	api := &mockAPI{records: []models.TeacherRecord{{ID: "1"}, {ID: "2"}}}
	notes := &mockNotifier{}
	ds := NewDataStore(api, notes, confirmYes, zap.NewNop())

	require.NoError(t, ds.Load(context.Background()))
	listCallsBefore := api.listCalls

	api.deleteErr = apperrors.Wrap(apperrors.ErrDeleteFailed, assert.AnError)
	require.Error(t, ds.Delete(context.Background(), "1"))

	assert.Len(t, ds.Records(), 2)
	assert.Equal(t, listCallsBefore, api.listCalls, "failed delete must not reload")
	require.Len(t, notes.failures, 1)
	assert.Equal(t, apperrors.ErrDeleteFailed.Message, notes.failures[0])
}

func TestDeleteDeclinedIssuesNoRequest(t *testing.T) {
	api := &mockAPI{}
	ds := NewDataStore(api, &mockNotifier{}, confirmNo, zap.NewNop())

	require.NoError(t, ds.Delete(context.Background(), "1"))
	assert.Zero(t, api.deleteCalls)
}

func TestDeleteWithNilConfirmDenies(t *testing.T) {
	api := &mockAPI{}
	ds := NewDataStore(api, &mockNotifier{}, nil, zap.NewNop())

	require.NoError(t, ds.Delete(context.Background(), "1"))
	assert.Zero(t, api.deleteCalls)
}

func TestDeleteConfirmedReloads(t *testing.T) {
	api := &mockAPI{}
	notes := &mockNotifier{}
	ds := NewDataStore(api, notes, confirmYes, zap.NewNop())

	require.NoError(t, ds.Delete(context.Background(), "1"))
	assert.Equal(t, 1, api.deleteCalls)
	assert.Equal(t, 1, api.listCalls)
	assert.Len(t, notes.successes, 1)
}
