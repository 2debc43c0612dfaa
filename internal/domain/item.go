package domain

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type ItemCategory string

const (
	ItemCategoryVehicle     ItemCategory = "VEHICLE"
	ItemCategoryTool        ItemCategory = "TOOL"
	ItemCategoryElectronics ItemCategory = "ELECTRONICS"
	ItemCategoryFurniture   ItemCategory = "FURNITURE"
	ItemCategoryOther       ItemCategory = "OTHER"
)

// Categories lists every valid item category in display order.
func Categories() []ItemCategory {
	return []ItemCategory{
		ItemCategoryVehicle,
		ItemCategoryTool,
		ItemCategoryElectronics,
		ItemCategoryFurniture,
		ItemCategoryOther,
	}
}

// ParseCategory converts a user-entered category name, case-insensitively,
// to an ItemCategory.
func ParseCategory(s string) (ItemCategory, error) {
	name := ItemCategory(strings.ToUpper(strings.TrimSpace(s)))
	for _, c := range Categories() {
		if c == name {
			return c, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidInput, "unknown category %q", s)
}

// Item is a rentable thing owned by a member.
type Item struct {
	ID          int             `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ItemCategory    `json:"category"`
	CostPerDay  decimal.Decimal `json:"cost_per_day"`
	Available   bool            `json:"available"`
}
