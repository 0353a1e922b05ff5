package delivery

import "github.com/shopspring/decimal"

// DefaultFixedCost is applied when a calculator is built without an
// explicit fixed cost.
const DefaultFixedCost = 2.99

// Cart is the minimal view of a cart the calculator needs.
type Cart interface {
	NumberOfDeliveries() int
	NumberOfProducts() int
}

// Calculator derives the delivery cost of a cart from its distinct category
// count and distinct product line count.
type Calculator struct {
	perDelivery decimal.Decimal
	perProduct  decimal.Decimal
	fixed       decimal.Decimal
}

// NewCalculator builds a calculator with the default fixed cost.
func NewCalculator(costPerDelivery, costPerProduct float64) *Calculator {
	return NewCalculatorWithFixedCost(costPerDelivery, costPerProduct, DefaultFixedCost)
}

// NewCalculatorWithFixedCost builds a calculator with an explicit fixed cost.
func NewCalculatorWithFixedCost(costPerDelivery, costPerProduct, fixedCost float64) *Calculator {
	return &Calculator{
		perDelivery: decimal.NewFromFloat(costPerDelivery),
		perProduct:  decimal.NewFromFloat(costPerProduct),
		fixed:       decimal.NewFromFloat(fixedCost),
	}
}

// CalculateFor returns the delivery cost for the cart:
//
//	perDelivery*deliveries + perProduct*products + fixed
//
// A nil cart, or a cart with no distinct categories, costs nothing; the
// fixed component is not charged on an effectively empty cart.
func (c *Calculator) CalculateFor(cart Cart) decimal.Decimal {
	if c == nil || cart == nil {
		return decimal.Zero
	}
	deliveries := cart.NumberOfDeliveries()
	if deliveries <= 0 {
		return decimal.Zero
	}
	return c.perDelivery.Mul(decimal.NewFromInt(int64(deliveries))).
		Add(c.perProduct.Mul(decimal.NewFromInt(int64(cart.NumberOfProducts())))).
		Add(c.fixed)
}
