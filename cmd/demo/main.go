package main

import (
	"os"

	"github.com/ecombase/cartpricer/internal/cart"
	"github.com/ecombase/cartpricer/internal/catalog"
	"github.com/ecombase/cartpricer/internal/config"
	"github.com/ecombase/cartpricer/internal/delivery"
	"github.com/ecombase/cartpricer/internal/discount"
	"github.com/ecombase/cartpricer/internal/obs"
	"github.com/ecombase/cartpricer/internal/report"
)

func main() {
	cfg := config.MustLoad()
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	phone := catalog.NewCategory("Phone", nil)
	smartPhone := catalog.NewCategory("SmartPhone", phone)
	computer := catalog.NewCategory("Computer", nil)

	iPhone := catalog.NewProduct("IPhone", 100, smartPhone)
	samsung := catalog.NewProduct("Samsung Galaxy S10", 150, smartPhone)
	lg := catalog.NewProduct("LG-5", 200, smartPhone)
	thinkPad := catalog.NewProduct("ThinkPad", 200, computer)

	calc := delivery.NewCalculatorWithFixedCost(
		cfg.DeliveryCostPerDelivery,
		cfg.DeliveryCostPerProduct,
		cfg.DeliveryFixedCost,
	)
	basket := cart.New(calc)
	basket.AddItem(iPhone, 1)
	basket.AddItem(iPhone, 1)
	basket.AddItem(samsung, 4)
	basket.AddItem(lg, 1)
	basket.AddItem(thinkPad, 2)
	logger.Info().
		Int("lines", basket.NumberOfProducts()).
		Int("deliveries", basket.NumberOfDeliveries()).
		Str("total", basket.TotalAmount().StringFixed(2)).
		Msg("cart built")

	basket.ApplyDiscounts(
		discount.NewCampaign(smartPhone, 20, 3, discount.TypeRate),
		discount.NewCampaign(smartPhone, 40, 5, discount.TypeRate),
		discount.NewCampaign(smartPhone, 50, 2, discount.TypeAmount),
		discount.NewCampaign(computer, 20, 2, discount.TypeRate),
	)
	logger.Info().
		Str("campaign_discount", basket.CampaignDiscount().StringFixed(2)).
		Msg("campaigns applied")

	basket.ApplyCoupon(discount.NewCoupon(1000, 150, discount.TypeAmount))
	logger.Info().
		Str("coupon_discount", basket.CouponDiscount().StringFixed(2)).
		Str("total_after_discounts", basket.TotalAmountAfterDiscounts().StringFixed(2)).
		Str("delivery_cost", basket.DeliveryCost().StringFixed(2)).
		Msg("coupon applied")

	if err := report.Write(os.Stdout, basket); err != nil {
		logger.Fatal().Err(err).Msg("write report")
	}
}
