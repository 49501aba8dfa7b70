package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/inventoria/backend/internal/domain/shared"
)

// Category classifies an inventory for browsing and search
type Category string

const (
	CategoryEquipment Category = "equipment"
	CategoryFurniture Category = "furniture"
	CategoryBook      Category = "book"
	CategoryDocument  Category = "document"
	CategoryOther     Category = "other"
)

var validCategories = map[Category]bool{
	CategoryEquipment: true,
	CategoryFurniture: true,
	CategoryBook:      true,
	CategoryDocument:  true,
	CategoryOther:     true,
}

// IsValidCategory returns true if the category is one of the known values
func IsValidCategory(c Category) bool {
	return validCategories[c]
}

// MaxInventoryTitleLength bounds inventory titles
const MaxInventoryTitleLength = 150

// Inventory is a named collection of items sharing one custom field
// configuration and one identifier format. The creator owns it; a public
// inventory is writable by any authenticated user, a private one only by
// the creator and explicitly granted users.
type Inventory struct {
	shared.OwnedAggregateRoot
	Title       string   `gorm:"type:varchar(150);not null;index"`
	Description string   `gorm:"type:text"`
	Category    Category `gorm:"type:varchar(30);not null;default:'other';index"`
	IsPublic    bool     `gorm:"not null;default:false;index"`

	// Associations - loaded lazily
	AccessGrants []InventoryAccess `gorm:"foreignKey:InventoryID;references:ID"`
}

// TableName returns the table name for GORM
func (Inventory) TableName() string {
	return "inventories"
}

// NewInventory creates a new inventory owned by the given user
func NewInventory(creatorID uuid.UUID, title, description string, category Category, isPublic bool) (*Inventory, error) {
	title = strings.TrimSpace(title)
	if err := validateInventoryTitle(title); err != nil {
		return nil, err
	}
	if creatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CREATOR", "Creator ID cannot be empty")
	}
	if category == "" {
		category = CategoryOther
	}
	if !IsValidCategory(category) {
		return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown category %q", category))
	}

	inv := &Inventory{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(creatorID),
		Title:              title,
		Description:        strings.TrimSpace(description),
		Category:           category,
		IsPublic:           isPublic,
		AccessGrants:       make([]InventoryAccess, 0),
	}

	inv.AddDomainEvent(NewInventoryCreatedEvent(inv))

	return inv, nil
}

// Update changes the inventory's descriptive attributes
func (i *Inventory) Update(title, description string, category Category, isPublic bool) error {
	title = strings.TrimSpace(title)
	if err := validateInventoryTitle(title); err != nil {
		return err
	}
	if !IsValidCategory(category) {
		return shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown category %q", category))
	}

	i.Title = title
	i.Description = strings.TrimSpace(description)
	i.Category = category
	i.IsPublic = isPublic
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewInventoryUpdatedEvent(i))

	return nil
}

// CanWrite reports whether the user may create or modify items and
// configuration in this inventory. Admin override is applied by the
// application layer, not here.
func (i *Inventory) CanWrite(userID uuid.UUID) bool {
	if i.IsOwnedBy(userID) {
		return true
	}
	if i.IsPublic {
		return userID != uuid.Nil
	}
	for _, grant := range i.AccessGrants {
		if grant.UserID == userID {
			return true
		}
	}
	return false
}

// GrantAccess adds a write grant for the user. Granting to the owner or to
// an already granted user is a no-op.
func (i *Inventory) GrantAccess(userID uuid.UUID) (*InventoryAccess, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if i.IsOwnedBy(userID) {
		return nil, shared.NewDomainError("INVALID_GRANT", "Inventory owner already has full access")
	}
	for _, grant := range i.AccessGrants {
		if grant.UserID == userID {
			return nil, shared.NewDomainError("DUPLICATE_GRANT", "User already has access to this inventory")
		}
	}

	grant := NewInventoryAccess(i.ID, userID)
	i.AccessGrants = append(i.AccessGrants, *grant)
	i.Touch()
	i.IncrementVersion()

	i.AddDomainEvent(NewAccessGrantedEvent(i, userID))

	return grant, nil
}

// RevokeAccess removes the user's write grant
func (i *Inventory) RevokeAccess(userID uuid.UUID) error {
	for idx, grant := range i.AccessGrants {
		if grant.UserID == userID {
			i.AccessGrants = append(i.AccessGrants[:idx], i.AccessGrants[idx+1:]...)
			i.Touch()
			i.IncrementVersion()
			i.AddDomainEvent(NewAccessRevokedEvent(i, userID))
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "User has no access grant on this inventory")
}

func validateInventoryTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Inventory title cannot be empty")
	}
	if len(title) > MaxInventoryTitleLength {
		return shared.NewDomainError("INVALID_TITLE",
			fmt.Sprintf("Inventory title cannot exceed %d characters", MaxInventoryTitleLength))
	}
	return nil
}
