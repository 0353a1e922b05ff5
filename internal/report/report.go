// Package report renders a human-readable summary of a priced cart.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ecombase/cartpricer/internal/cart"
)

// Write renders the cart as a table grouped by category: one row per line
// with quantity, unit price, line total and the discount allocated to it,
// followed by the cart totals and the delivery cost.
func Write(w io.Writer, c *cart.Cart) error {
	if c == nil {
		return fmt.Errorf("report: nil cart")
	}
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPRODUCT\tQTY\tUNIT PRICE\tTOTAL\tDISCOUNT")
	for _, group := range groupLines(c.Lines()) {
		for _, line := range group {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
				line.Product.Category.Title,
				line.Product.Title,
				line.Quantity,
				line.Product.Price.StringFixed(2),
				line.Subtotal().StringFixed(2),
				c.DiscountFor(line.Product.ID).StringFixed(2),
			)
		}
	}
	fmt.Fprintln(tw, "\t\t\t\t\t")
	fmt.Fprintf(tw, "Total Amount\t%s\t\t\t\t\n", c.TotalAmount().StringFixed(2))
	fmt.Fprintf(tw, "Total Discount\t%s\t\t\t\t\n", c.TotalDiscounts().StringFixed(2))
	fmt.Fprintf(tw, "Amount After Discounts\t%s\t\t\t\t\n", c.TotalAmountAfterDiscounts().StringFixed(2))
	fmt.Fprintf(tw, "Delivery Cost\t%s\t\t\t\t\n", c.DeliveryCost().StringFixed(2))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: flush table: %w", err)
	}
	return nil
}

// groupLines batches lines by category title preserving the order in which
// each category first appears.
func groupLines(lines []cart.Line) [][]cart.Line {
	index := make(map[string]int)
	var groups [][]cart.Line
	for _, line := range lines {
		title := line.Product.Category.Title
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], line)
	}
	return groups
}
