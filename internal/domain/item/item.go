package item

import (
	"time"

	"github.com/google/uuid"

	"cc-lostfound-service/internal/domain/shared"
)

// Type says whether an item was lost by its owner or found by someone else.
type Type string

const (
	TypeLost  Type = "lost"
	TypeFound Type = "found"
)

// Valid reports whether t is one of the known item types.
func (t Type) Valid() bool {
	return t == TypeLost || t == TypeFound
}

// Item represents a single lost-or-found report.
//
// ID is assigned by the repository on insert and never changes. Date is
// stamped at construction and never changes. Claimed is the only field that
// mutates after creation, and only from false to true.
type Item struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	Location     string    `json:"location,omitempty"`
	Type         Type      `json:"type"`
	Contact      string    `json:"contact,omitempty"`
	ImageDataURL string    `json:"imageDataUrl,omitempty"`
	Date         time.Time `json:"date"`
	Claimed      bool      `json:"claimed"`
}

// Fields carries the caller-supplied attributes of a new report.
type Fields struct {
	Name         string
	Title        string
	Description  string
	Category     string
	Location     string
	Type         Type
	Contact      string
	ImageDataURL string
}

// New builds a validated Item from caller-supplied fields. Title must be
// non-empty. An empty Type defaults to lost; the HTTP boundary additionally
// requires callers to send one, so the default only matters for direct
// constructor callers. A Type outside the enum is rejected. Date is stamped
// with the current time and Claimed starts false; the ID is left zero for the
// repository to assign.
func New(f Fields) (*Item, error) {
	if f.Title == "" {
		return nil, shared.ErrTitleRequired
	}

	if f.Type == "" {
		f.Type = TypeLost
	}
	if !f.Type.Valid() {
		return nil, shared.ErrInvalidItemType
	}

	return &Item{
		Name:         f.Name,
		Title:        f.Title,
		Description:  f.Description,
		Category:     f.Category,
		Location:     f.Location,
		Type:         f.Type,
		Contact:      f.Contact,
		ImageDataURL: f.ImageDataURL,
		Date:         time.Now(),
		Claimed:      false,
	}, nil
}
