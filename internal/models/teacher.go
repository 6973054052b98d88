package models

// Gender codes as stored by the backend.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// FilterAll disables a selector predicate.
const FilterAll = "all"

// WorkAddress is the optional nested address block of a teacher record.
// Every field is an optional free-text string.
type WorkAddress struct {
	HouseNo     string `json:"house_no"`
	Moo         string `json:"moo"`
	Soi         string `json:"soi"`
	Road        string `json:"road"`
	Subdistrict string `json:"subdistrict"`
	District    string `json:"district"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
}

// TeacherRecord represents one teacher entity as returned by the backend.
// The id and timestamps are server-assigned and never written by the client.
type TeacherRecord struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	NationalID string       `json:"national_id"`
	BirthDate  string       `json:"birth_date"`
	Gender     string       `json:"gender"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	School     string       `json:"school"`
	Position   string       `json:"position,omitempty"`
	SchoolYear string       `json:"school_year,omitempty"`
	Address    *WorkAddress `json:"work_address,omitempty"`
	CreatedAt  string       `json:"created_at,omitempty"`
	UpdatedAt  string       `json:"updated_at,omitempty"`
}

// FilterCriteria is the active filter selection applied to the record list.
// School and Gender use FilterAll to bypass their predicate.
type FilterCriteria struct {
	Search string
	School string
	Gender string
}

// DefaultCriteria returns criteria that let every record through.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Search: "", School: FilterAll, Gender: FilterAll}
}

// DraftForm mirrors TeacherRecord minus id and timestamps. The address is
// always a value, never nil, so every form field stays bound to a string.
type DraftForm struct {
	Title      string      `json:"title"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	NationalID string      `json:"national_id"`
	BirthDate  string      `json:"birth_date"`
	Gender     string      `json:"gender"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	School     string      `json:"school"`
	Position   string      `json:"position"`
	SchoolYear string      `json:"school_year"`
	Address    WorkAddress `json:"work_address"`
}

// NewDraft returns an all-empty draft, address fields included.
func NewDraft() DraftForm {
	return DraftForm{}
}

// DraftFromRecord copies every scalar field verbatim and normalises a
// missing address to empty strings. Normalisation happens here once, not
// scattered across field accessors.
func DraftFromRecord(r TeacherRecord) DraftForm {
	draft := DraftForm{
		Title:      r.Title,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		NationalID: r.NationalID,
		BirthDate:  r.BirthDate,
		Gender:     r.Gender,
		Phone:      r.Phone,
		Email:      r.Email,
		School:     r.School,
		Position:   r.Position,
		SchoolYear: r.SchoolYear,
	}
	if r.Address != nil {
		draft.Address = *r.Address
	}
	return draft
}
