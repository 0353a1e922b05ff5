package discount

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecombase/cartpricer/internal/catalog"
)

func item(category *catalog.Category, qty int64, subtotal float64) Item {
	return Item{
		ProductID: uuid.New(),
		Category:  category,
		Quantity:  qty,
		Subtotal:  decimal.NewFromFloat(subtotal),
	}
}

func sum(allocations map[uuid.UUID]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range allocations {
		total = total.Add(v)
	}
	return total
}

func TestCampaignRateOnAncestorCategory(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	smartPhone := catalog.NewCategory("SmartPhone", phone)
	items := []Item{item(smartPhone, 3, 300)}

	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 20, 2, TypeRate)})
	if got := sum(allocations); !got.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected discount 60, got %s", got)
	}
}

func TestCampaignAmount(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	smartPhone := catalog.NewCategory("SmartPhone", phone)
	items := []Item{item(smartPhone, 3, 300)}

	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 20, 2, TypeAmount)})
	if got := sum(allocations); !got.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected discount 20, got %s", got)
	}
}

func TestCampaignAmountRequiresMoreThanOneUnit(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 1, 100)}

	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 20, 1, TypeAmount)})
	if got := sum(allocations); !got.IsZero() {
		t.Fatalf("amount campaign needs scope quantity above one, got %s", got)
	}
}

func TestCampaignQuantityGate(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 2, 200)}

	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 20, 5, TypeRate)})
	if len(allocations) != 0 {
		t.Fatalf("campaign below its quantity gate must contribute nothing, got %v", allocations)
	}
}

func TestCampaignsCompeteWithinOneCategory(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 5, 500)}

	// 10% of 500 = 50, 30% of 500 = 150; the larger one wins, they do not stack.
	allocations := CampaignAllocations(items, []Campaign{
		NewCampaign(phone, 10, 2, TypeRate),
		NewCampaign(phone, 30, 2, TypeRate),
	})
	if got := sum(allocations); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected winning discount 150, got %s", got)
	}

	// Adding a weaker competitor never lowers the selected value.
	allocations = CampaignAllocations(items, []Campaign{
		NewCampaign(phone, 30, 2, TypeRate),
		NewCampaign(phone, 10, 2, TypeRate),
	})
	if got := sum(allocations); !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected discount to stay 150, got %s", got)
	}
}

func TestCampaignsAcrossCategoriesAreIndependent(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	smartPhone := catalog.NewCategory("SmartPhone", phone)
	computer := catalog.NewCategory("Computer", nil)
	items := []Item{
		item(smartPhone, 2, 200),
		item(computer, 2, 400),
	}

	allocations := CampaignAllocations(items, []Campaign{
		NewCampaign(phone, 20, 2, TypeRate),
		NewCampaign(computer, 20, 2, TypeRate),
	})
	if got := sum(allocations); !got.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected 40 + 80 = 120, got %s", got)
	}
}

func TestCampaignAmountIsNotClampedToSubtotal(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 2, 50)}

	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 500, 2, TypeAmount)})
	if got := sum(allocations); !got.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("amount discounts are not clamped, expected 500, got %s", got)
	}
}

func TestCampaignAllocationIsProportional(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	cheap := item(phone, 1, 100)
	pricey := item(phone, 1, 300)
	items := []Item{cheap, pricey}

	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 10, 2, TypeRate)})
	if got := allocations[cheap.ProductID]; !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected 10 allocated to the 100 line, got %s", got)
	}
	if got := allocations[pricey.ProductID]; !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected 30 allocated to the 300 line, got %s", got)
	}
}

func TestCampaignAllocationConservation(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{
		item(phone, 1, 33.33),
		item(phone, 1, 66.67),
		item(phone, 1, 99.99),
	}

	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 15, 2, TypeRate)})
	want := decimal.NewFromFloat(199.99).Mul(decimal.NewFromFloat(0.15))
	tolerance := decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(len(items))))
	if diff := sum(allocations).Sub(want).Abs(); diff.GreaterThan(tolerance) {
		t.Fatalf("allocation drifted from %s by %s, beyond ±%s", want, diff, tolerance)
	}
}

func TestNoCampaignsNoScopeNoDiscount(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	computer := catalog.NewCategory("Computer", nil)
	items := []Item{item(phone, 3, 300)}

	if allocations := CampaignAllocations(items, nil); len(allocations) != 0 {
		t.Fatalf("no campaigns means no discount, got %v", allocations)
	}
	allocations := CampaignAllocations(items, []Campaign{NewCampaign(computer, 20, 1, TypeRate)})
	if len(allocations) != 0 {
		t.Fatalf("campaign without in-scope lines must be skipped, got %v", allocations)
	}
}

func TestCampaignOnFreeLinesAllocatesNothing(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 2, 0)}

	// The amount campaign selects a positive value (quantity 2 > 1) but the
	// scope subtotal is zero, so there is no basis to spread it over.
	allocations := CampaignAllocations(items, []Campaign{NewCampaign(phone, 20, 2, TypeAmount)})
	if len(allocations) != 0 {
		t.Fatalf("free lines must receive no allocation, got %v", allocations)
	}
}

func TestCouponRate(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 2, 200)}

	total, allocations := CouponAllocations(items, decimal.NewFromInt(200), NewCoupon(100, 10, TypeRate))
	if !total.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected coupon discount 20, got %s", total)
	}
	if got := sum(allocations); !got.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected allocations to sum to 20, got %s", got)
	}
}

func TestCouponAmount(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 2, 200)}

	total, _ := CouponAllocations(items, decimal.NewFromInt(200), NewCoupon(100, 50, TypeAmount))
	if !total.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected flat coupon discount 50, got %s", total)
	}
}

func TestCouponMinimumGate(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 1, 100)}

	total, allocations := CouponAllocations(items, decimal.NewFromInt(100), NewCoupon(500, 10, TypeRate))
	if !total.IsZero() || allocations != nil {
		t.Fatalf("coupon below minimum must not apply, got total %s", total)
	}
}

func TestCouponOnZeroTotalCart(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 2, 0)}

	total, allocations := CouponAllocations(items, decimal.Zero, NewCoupon(0, 50, TypeAmount))
	if !total.IsZero() || allocations != nil {
		t.Fatalf("zero-total cart must yield no coupon discount, got total %s", total)
	}
}

func TestCouponNil(t *testing.T) {
	phone := catalog.NewCategory("Phone", nil)
	items := []Item{item(phone, 1, 100)}

	total, allocations := CouponAllocations(items, decimal.NewFromInt(100), nil)
	if !total.IsZero() || allocations != nil {
		t.Fatalf("nil coupon must be a no-op, got total %s", total)
	}
}

func TestTypeString(t *testing.T) {
	cases := map[Type]string{TypeRate: "rate", TypeAmount: "amount", Type(42): "unknown"}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
