package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecombase/cartpricer/internal/catalog"
	"github.com/ecombase/cartpricer/internal/delivery"
	"github.com/ecombase/cartpricer/internal/discount"
)

// Line is one cart entry: a product and how many units of it. A cart holds
// at most one line per product.
type Line struct {
	Product  *catalog.Product
	Quantity int64
}

// Subtotal returns price times quantity for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart owns an ordered collection of lines and orchestrates the campaign
// engine, the coupon engine and the delivery cost calculator. A cart is not
// safe for concurrent use; callers own it exclusively.
type Cart struct {
	lines    []*Line
	index    map[uuid.UUID]*Line
	delivery *delivery.Calculator

	campaignByProduct map[uuid.UUID]decimal.Decimal
	couponByProduct   map[uuid.UUID]decimal.Decimal
	couponTotal       decimal.Decimal
}

// New constructs an empty cart bound to a delivery cost calculator.
func New(calc *delivery.Calculator) *Cart {
	return &Cart{
		index:    make(map[uuid.UUID]*Line),
		delivery: calc,
	}
}

// AddItem puts quantity units of product into the cart, incrementing the
// existing line when the product is already present. A nil product or a
// non-positive quantity is ignored.
func (c *Cart) AddItem(product *catalog.Product, quantity int64) {
	if product == nil || quantity <= 0 {
		return
	}
	if line, ok := c.index[product.ID]; ok {
		line.Quantity += quantity
		return
	}
	line := &Line{Product: product, Quantity: quantity}
	c.lines = append(c.lines, line)
	c.index[product.ID] = line
}

// ApplyDiscounts runs the campaign engine over the current lines. The
// per-product campaign map is re-derived from scratch on every call, so
// repeated invocations replace rather than stack earlier results.
func (c *Cart) ApplyDiscounts(campaigns ...discount.Campaign) {
	c.campaignByProduct = discount.CampaignAllocations(c.items(), campaigns)
}

// ApplyCoupon evaluates the coupon against the raw cart total. An absent
// coupon or an unmet minimum leaves the coupon discount at zero. Like
// ApplyDiscounts, each call re-derives the allocation in full.
func (c *Cart) ApplyCoupon(coupon *discount.Coupon) {
	c.couponTotal, c.couponByProduct = discount.CouponAllocations(c.items(), c.TotalAmount(), coupon)
}

// NumberOfDeliveries returns the count of distinct category titles among
// the cart lines.
func (c *Cart) NumberOfDeliveries() int {
	titles := make(map[string]struct{}, len(c.lines))
	for _, line := range c.lines {
		titles[line.Product.Category.Title] = struct{}{}
	}
	return len(titles)
}

// NumberOfProducts returns the count of distinct product lines, not the
// total unit count.
func (c *Cart) NumberOfProducts() int {
	return len(c.lines)
}

// TotalAmount is the raw cart total before any discount.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// CampaignDiscount is the sum of all per-product campaign allocations.
func (c *Cart) CampaignDiscount() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c.campaignByProduct {
		total = total.Add(v)
	}
	return total
}

// CouponDiscount is the coupon total from the last ApplyCoupon call, zero
// when no coupon applied or the coupon was not eligible.
func (c *Cart) CouponDiscount() decimal.Decimal {
	return c.couponTotal
}

// TotalDiscounts is the campaign discount plus the coupon discount.
func (c *Cart) TotalDiscounts() decimal.Decimal {
	return c.CampaignDiscount().Add(c.CouponDiscount())
}

// TotalAmountAfterDiscounts is the raw total minus all discounts.
func (c *Cart) TotalAmountAfterDiscounts() decimal.Decimal {
	return c.TotalAmount().Sub(c.TotalDiscounts())
}

// DeliveryCost evaluates the bound delivery calculator against this cart.
func (c *Cart) DeliveryCost() decimal.Decimal {
	return c.delivery.CalculateFor(c)
}

// DiscountFor returns the combined campaign and coupon discount allocated
// to one product.
func (c *Cart) DiscountFor(productID uuid.UUID) decimal.Decimal {
	return c.campaignByProduct[productID].Add(c.couponByProduct[productID])
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	for i, line := range c.lines {
		out[i] = *line
	}
	return out
}

func (c *Cart) items() []discount.Item {
	items := make([]discount.Item, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, discount.Item{
			ProductID: line.Product.ID,
			Category:  line.Product.Category,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
	}
	return items
}
