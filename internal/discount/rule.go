package discount

import (
	"github.com/shopspring/decimal"

	"github.com/ecombase/cartpricer/internal/catalog"
)

// Type selects how a rule's value is interpreted.
type Type int

const (
	// TypeRate treats the rule value as a percentage of the relevant subtotal.
	TypeRate Type = iota
	// TypeAmount treats the rule value as a flat monetary amount.
	TypeAmount
)

// String returns the canonical name of the discount type.
func (t Type) String() string {
	switch t {
	case TypeRate:
		return "rate"
	case TypeAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// Rule captures a single discount rule. Value holds the rate percent for
// TypeRate or the flat amount for TypeAmount. Minimum is the eligibility
// gate: a minimum scope quantity for campaigns, a minimum cart total for
// coupons.
type Rule struct {
	Value   decimal.Decimal
	Minimum decimal.Decimal
	Type    Type
}

// Campaign is a discount rule scoped to one category. Cart lines whose
// product category equals the campaign category, or descends from it, are
// in scope.
type Campaign struct {
	Category *catalog.Category
	Rule     Rule
}

// NewCampaign constructs a category-scoped campaign. minQuantity is the
// total in-scope quantity required before the campaign takes effect.
func NewCampaign(category *catalog.Category, value float64, minQuantity int, t Type) Campaign {
	return Campaign{
		Category: category,
		Rule: Rule{
			Value:   decimal.NewFromFloat(value),
			Minimum: decimal.NewFromInt(int64(minQuantity)),
			Type:    t,
		},
	}
}

// Coupon is a cart-wide discount rule gated by a minimum cart total.
type Coupon struct {
	Rule Rule
}

// NewCoupon constructs a coupon. minCartTotal gates eligibility against the
// raw cart total; value is the rate percent or flat amount depending on t.
func NewCoupon(minCartTotal, value float64, t Type) *Coupon {
	return &Coupon{
		Rule: Rule{
			Value:   decimal.NewFromFloat(value),
			Minimum: decimal.NewFromFloat(minCartTotal),
			Type:    t,
		},
	}
}
