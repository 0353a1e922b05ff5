package discount

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecombase/cartpricer/internal/catalog"
)

var hundred = decimal.NewFromInt(100)

// Item is a cart line viewed by the discount engine.
type Item struct {
	ProductID uuid.UUID
	Category  *catalog.Category
	Quantity  int64
	Subtotal  decimal.Decimal
}

// strategy pairs the campaign and coupon calculations for one discount type.
// Campaign steps fold a running discount value and never decrease it.
type strategy struct {
	campaign func(current, scopeSubtotal decimal.Decimal, scopeQty int64, r Rule) decimal.Decimal
	coupon   func(cartTotal decimal.Decimal, r Rule) decimal.Decimal
}

var strategies = map[Type]strategy{
	TypeRate: {
		campaign: func(current, scopeSubtotal decimal.Decimal, _ int64, r Rule) decimal.Decimal {
			candidate := scopeSubtotal.Mul(r.Value).Div(hundred)
			if candidate.GreaterThan(current) {
				return candidate
			}
			return current
		},
		coupon: func(cartTotal decimal.Decimal, r Rule) decimal.Decimal {
			return cartTotal.Mul(r.Value).Div(hundred)
		},
	},
	TypeAmount: {
		campaign: func(current, _ decimal.Decimal, scopeQty int64, r Rule) decimal.Decimal {
			if scopeQty > 1 && r.Value.GreaterThanOrEqual(current) {
				return r.Value
			}
			return current
		},
		coupon: func(_ decimal.Decimal, r Rule) decimal.Decimal {
			return r.Value
		},
	},
}

// CampaignAllocations runs the campaign engine over the given items and
// returns the per-product discount map. Campaigns are grouped by category in
// order of first appearance; within one category the campaigns compete and
// only the largest resulting discount survives. The winning value is then
// spread across the in-scope lines proportionally to their subtotal, rounded
// to two decimals per line. Categories without any in-scope line contribute
// nothing.
func CampaignAllocations(items []Item, campaigns []Campaign) map[uuid.UUID]decimal.Decimal {
	allocations := make(map[uuid.UUID]decimal.Decimal)
	for _, group := range groupByCategory(campaigns) {
		scope := itemsInScope(items, group.category)
		if len(scope) == 0 {
			continue
		}
		var scopeQty int64
		scopeSubtotal := decimal.Zero
		for _, it := range scope {
			scopeQty += it.Quantity
			scopeSubtotal = scopeSubtotal.Add(it.Subtotal)
		}
		value := decimal.Zero
		for _, c := range group.campaigns {
			if decimal.NewFromInt(scopeQty).LessThan(c.Rule.Minimum) {
				continue
			}
			s, ok := strategies[c.Rule.Type]
			if !ok {
				continue
			}
			value = s.campaign(value, scopeSubtotal, scopeQty, c.Rule)
		}
		// A scope of free lines has nothing to allocate against.
		if !value.IsPositive() || scopeSubtotal.IsZero() {
			continue
		}
		for _, it := range scope {
			share := it.Subtotal.Mul(value).Div(scopeSubtotal).Round(2)
			allocations[it.ProductID] = allocations[it.ProductID].Add(share)
		}
	}
	return allocations
}

// CouponAllocations computes the total coupon discount and its per-product
// allocation. A nil coupon, an empty or zero-total cart, or a cart total
// below the coupon minimum yield a zero total and no allocations.
func CouponAllocations(items []Item, cartTotal decimal.Decimal, c *Coupon) (decimal.Decimal, map[uuid.UUID]decimal.Decimal) {
	if c == nil || len(items) == 0 || cartTotal.IsZero() || cartTotal.LessThan(c.Rule.Minimum) {
		return decimal.Zero, nil
	}
	s, ok := strategies[c.Rule.Type]
	if !ok {
		return decimal.Zero, nil
	}
	total := s.coupon(cartTotal, c.Rule)
	allocations := make(map[uuid.UUID]decimal.Decimal, len(items))
	for _, it := range items {
		allocations[it.ProductID] = it.Subtotal.Mul(total).Div(cartTotal).Round(2)
	}
	return total, allocations
}

type categoryGroup struct {
	category  *catalog.Category
	campaigns []Campaign
}

// groupByCategory preserves the order in which each category first appears
// so downstream iteration stays deterministic.
func groupByCategory(campaigns []Campaign) []categoryGroup {
	index := make(map[*catalog.Category]int)
	var groups []categoryGroup
	for _, c := range campaigns {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, categoryGroup{category: c.Category})
		}
		groups[i].campaigns = append(groups[i].campaigns, c)
	}
	return groups
}

func itemsInScope(items []Item, category *catalog.Category) []Item {
	var scope []Item
	for _, it := range items {
		if category.Covers(it.Category) {
			scope = append(scope, it)
		}
	}
	return scope
}
