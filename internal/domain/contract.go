package domain

import "github.com/shopspring/decimal"

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusProcessed ContractStatus = "PROCESSED"
)

// Contract is a rental agreement over an inclusive day range. The item name,
// owner, renter name and cost per day are snapshots captured at creation
// time; later edits to the live item or member records do not change what a
// contract settles for.
type Contract struct {
	ID         string `json:"id"`
	ItemID     int    `json:"item_id"`
	RenterID   string `json:"renter_id"`
	OwnerID    string `json:"owner_id"`
	ItemName   string `json:"item_name"`
	RenterName string `json:"renter_name"`
	// Snapshot of the item's price at creation. All cost calculations use
	// this, not the live item's price.
	CostPerDay decimal.Decimal `json:"cost_per_day"`
	StartDay   int             `json:"start_day"`
	EndDay     int             `json:"end_day"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Status     ContractStatus  `json:"status"`
}

// Processed reports whether the contract has reached its terminal state.
func (c *Contract) Processed() bool {
	return c.Status == ContractStatusProcessed
}

// DueOn reports whether the contract is due for settlement on the given day.
func (c *Contract) DueOn(currentDay int) bool {
	return !c.Processed() && currentDay >= c.EndDay
}

// RentalCost is the cost of renting an item from startDay through endDay,
// inclusive of both days.
func RentalCost(costPerDay decimal.Decimal, startDay, endDay int) decimal.Decimal {
	days := endDay - startDay + 1
	return costPerDay.Mul(decimal.NewFromInt(int64(days)))
}

// Overlaps reports whether the inclusive ranges [aStart,aEnd] and
// [bStart,bEnd] intersect. Touching endpoints count as an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return !(aEnd < bStart || aStart > bEnd)
}
