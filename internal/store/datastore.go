package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/evep-admin/internal/models"
	apperrors "github.com/noah-isme/evep-admin/pkg/errors"
)

type teacherAPI interface {
	ListTeachers(ctx context.Context) ([]models.TeacherRecord, error)
	CreateTeacher(ctx context.Context, draft models.DraftForm) error
	UpdateTeacher(ctx context.Context, id string, draft models.DraftForm) error
	DeleteTeacher(ctx context.Context, id string) error
}

type notifier interface {
	Success(message string)
	Failure(message string)
}

// ConfirmFunc asks the user to approve a destructive action before the
// request is issued. Returning false aborts the operation silently.
type ConfirmFunc func(prompt string) bool

// DataStore holds the in-memory mirror of the teacher record collection.
// It is the only writer of the list: every mutation goes to the backend and
// the list is fully replaced by a reload, never patched in place.
type DataStore struct {
	api      teacherAPI
	notifier notifier
	confirm  ConfirmFunc
	logger   *zap.Logger

	mu      sync.Mutex
	records []models.TeacherRecord
	loading bool
	lastErr error
}

// NewDataStore constructs a DataStore. A nil confirm denies every delete.
func NewDataStore(api teacherAPI, notifier notifier, confirm ConfirmFunc, logger *zap.Logger) *DataStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataStore{
		api:      api,
		notifier: notifier,
		confirm:  confirm,
		logger:   logger,
	}
}

// Load replaces the whole list with the backend collection. On any failure
// the list is cleared and a fetch-failure notification raised. Binary
// outcome, no partial state, no retry.
func (s *DataStore) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	records, err := s.api.ListTeachers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.records = nil
		s.lastErr = err
		s.notifier.Failure(apperrors.FromError(err).Message)
		return err
	}
	s.records = records
	s.lastErr = nil
	s.logger.Debug("teacher records loaded", zap.Int("count", len(records)))
	return nil
}

// Create posts the draft. On success the close hook runs, a success
// notification is raised and the list reloads exactly once. On failure only
// the failure notification is raised; the hook is not called.
func (s *DataStore) Create(ctx context.Context, draft models.DraftForm, onSuccess func()) error {
	if err := s.api.CreateTeacher(ctx, draft); err != nil {
		s.notifier.Failure(apperrors.FromError(err).Message)
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	s.notifier.Success("teacher record created")
	return s.Load(ctx)
}

// Update puts the full draft to the per-id endpoint. Same contract as Create.
func (s *DataStore) Update(ctx context.Context, id string, draft models.DraftForm, onSuccess func()) error {
	if err := s.api.UpdateTeacher(ctx, id, draft); err != nil {
		s.notifier.Failure(apperrors.FromError(err).Message)
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	s.notifier.Success("teacher record updated")
	return s.Load(ctx)
}

// Delete asks for confirmation before issuing the request. A declined
// confirmation is a no-op. On failure the list stays untouched and no
// reload happens.
func (s *DataStore) Delete(ctx context.Context, id string) error {
	if s.confirm == nil || !s.confirm("delete teacher record "+id+"?") {
		s.logger.Debug("delete not confirmed", zap.String("id", id))
		return nil
	}
	if err := s.api.DeleteTeacher(ctx, id); err != nil {
		s.notifier.Failure(apperrors.FromError(err).Message)
		return err
	}
	s.notifier.Success("teacher record deleted")
	return s.Load(ctx)
}

// Records returns a copy of the current list.
func (s *DataStore) Records() []models.TeacherRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TeacherRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Loading reports whether a load is in flight.
func (s *DataStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error of the last failed load, if any.
func (s *DataStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
