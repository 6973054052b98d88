package view

import "github.com/noah-isme/evep-admin/internal/models"

// Mode is the presentation state of the record dialog.
type Mode int

const (
	ModeClosed Mode = iota
	ModeViewing
	ModeEditing
)

// String names the mode for logs and prompts.
func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	default:
		return "closed"
	}
}

// Controller toggles between the mutually exclusive presentation modes of
// a single record dialog: closed, read-only detail, or editable form.
type Controller struct {
	mode   Mode
	viewed models.TeacherRecord
}

// NewController starts closed.
func NewController() *Controller {
	return &Controller{}
}

// OpenView shows the read-only detail of one record.
func (c *Controller) OpenView(record models.TeacherRecord) {
	c.mode = ModeViewing
	c.viewed = record
}

// OpenEditor switches to the editable form. The draft itself lives in the
// form controller; the view only tracks presentation mode.
func (c *Controller) OpenEditor() {
	c.mode = ModeEditing
	c.viewed = models.TeacherRecord{}
}

// Close resets both the viewed record and the editing state at once.
func (c *Controller) Close() {
	c.mode = ModeClosed
	c.viewed = models.TeacherRecord{}
}

// Mode returns the current presentation mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Viewed returns the record shown in detail mode and whether one is set.
func (c *Controller) Viewed() (models.TeacherRecord, bool) {
	return c.viewed, c.mode == ModeViewing
}
