package form

import (
	"context"
	"fmt"

	"github.com/noah-isme/evep-admin/internal/models"
)

type submitter interface {
	Create(ctx context.Context, draft models.DraftForm, onSuccess func()) error
	Update(ctx context.Context, id string, draft models.DraftForm, onSuccess func()) error
}

// Controller holds the draft state for create and edit operations. The
// draft's address block is always fully populated with strings so every
// bound input stays defined. No field validation happens here: empty
// values are submitted as empty strings.
type Controller struct {
	store  submitter
	draft  models.DraftForm
	editID string
}

// NewController builds a form controller submitting through the store.
func NewController(store submitter) *Controller {
	return &Controller{store: store}
}

// OpenForCreate resets the draft to all-empty values.
func (c *Controller) OpenForCreate() {
	c.draft = models.NewDraft()
	c.editID = ""
}

// OpenForEdit copies the record into the draft, normalising a missing
// address, and remembers the edit target.
func (c *Controller) OpenForEdit(record models.TeacherRecord) {
	c.draft = models.DraftFromRecord(record)
	c.editID = record.ID
}

// SetField assigns a top-level draft field by its wire name.
func (c *Controller) SetField(name, value string) error {
	switch name {
	case "title":
		c.draft.Title = value
	case "first_name":
		c.draft.FirstName = value
	case "last_name":
		c.draft.LastName = value
	case "national_id":
		c.draft.NationalID = value
	case "birth_date":
		c.draft.BirthDate = value
	case "gender":
		c.draft.Gender = value
	case "phone":
		c.draft.Phone = value
	case "email":
		c.draft.Email = value
	case "school":
		c.draft.School = value
	case "position":
		c.draft.Position = value
	case "school_year":
		c.draft.SchoolYear = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// SetAddressField assigns one nested address field, preserving the others.
func (c *Controller) SetAddressField(name, value string) error {
	switch name {
	case "house_no":
		c.draft.Address.HouseNo = value
	case "moo":
		c.draft.Address.Moo = value
	case "soi":
		c.draft.Address.Soi = value
	case "road":
		c.draft.Address.Road = value
	case "subdistrict":
		c.draft.Address.Subdistrict = value
	case "district":
		c.draft.Address.District = value
	case "province":
		c.draft.Address.Province = value
	case "postal_code":
		c.draft.Address.PostalCode = value
	default:
		return fmt.Errorf("unknown address field %q", name)
	}
	return nil
}

// Submit dispatches to update when an edit target is set, create otherwise.
func (c *Controller) Submit(ctx context.Context, onSuccess func()) error {
	if c.editID != "" {
		return c.store.Update(ctx, c.editID, c.draft, onSuccess)
	}
	return c.store.Create(ctx, c.draft, onSuccess)
}

// Draft returns the current draft.
func (c *Controller) Draft() models.DraftForm {
	return c.draft
}

// Editing returns the edit target id and whether one is set.
func (c *Controller) Editing() (string, bool) {
	return c.editID, c.editID != ""
}

// Reset clears the draft and the edit target.
func (c *Controller) Reset() {
	c.draft = models.DraftForm{}
	c.editID = ""
}
