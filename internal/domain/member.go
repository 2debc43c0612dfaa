package domain

import "github.com/shopspring/decimal"

// Member is a participant in the lending circle. A member can own items,
// rent items from other members, and holds a credit balance that settlement
// moves between renter and owner.
type Member struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Credits decimal.Decimal `json:"credits"`
}

// CanAfford reports whether the member's balance covers the given cost.
func (m *Member) CanAfford(cost decimal.Decimal) bool {
	return m.Credits.GreaterThanOrEqual(cost)
}
