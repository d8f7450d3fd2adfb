package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type lineView struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Variant   string          `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type summaryView struct {
	OwnerID    string          `json:"ownerId"`
	Currency   string          `json:"currency"`
	Lines      []lineView      `json:"lines"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	Coupon     string          `json:"coupon,omitempty"`
}

type couponView struct {
	Code     string           `json:"code"`
	Kind     string           `json:"kind"`
	Amount   decimal.Decimal  `json:"amount"`
	MinOrder *decimal.Decimal `json:"minOrder,omitempty"`
}

func newSummaryView(ownerID string, s checkout.Summary) summaryView {
	view := summaryView{
		OwnerID:    ownerID,
		Currency:   s.Total.Currency.String(),
		Lines:      make([]lineView, 0, len(s.Lines)),
		TotalItems: s.TotalItems,
		Subtotal:   s.Subtotal.Amount,
		Discount:   s.Discount.Amount,
		Total:      s.Total.Amount,
	}
	for _, line := range s.Lines {
		view.Lines = append(view.Lines, lineView{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Variant:   line.Variant,
			Quantity:  line.Quantity,
			LineTotal: line.Total(),
		})
	}
	if s.Coupon != nil {
		view.Coupon = s.Coupon.Code
	}
	return view
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, format, ownerID string, s checkout.Summary) error {
	if format == "json" {
		return writeJSON(w, newSummaryView(ownerID, s))
	}

	unit := s.Total.Currency
	if len(s.Lines) == 0 {
		fmt.Fprintf(w, "cart of %s is empty\n", ownerID)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, line := range s.Lines {
		name := line.Product.Name
		if line.Variant != "" {
			name = fmt.Sprintf("%s (%s)", name, line.Variant)
		}
		fmt.Fprintf(tw, "%s\t%s\tx%d\t%s\n", line.Product.ID, name, line.Quantity, money(line.Total(), unit))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush: %w", err)
	}

	fmt.Fprintf(w, "items: %d\n", s.TotalItems)
	fmt.Fprintf(w, "subtotal: %s\n", s.Subtotal)
	if s.Coupon != nil {
		fmt.Fprintf(w, "discount (%s): %s\n", s.Coupon.Code, s.Discount)
	}
	fmt.Fprintf(w, "total: %s\n", s.Total)
	return nil
}

func writeCoupons(w io.Writer, format string, coupons []domain.Coupon) error {
	if format == "json" {
		views := make([]couponView, 0, len(coupons))
		for _, c := range coupons {
			view := couponView{Code: c.Code, Kind: string(c.Kind), Amount: c.Amount}
			if c.MinOrder.Valid {
				view.MinOrder = &c.MinOrder.Decimal
			}
			views = append(views, view)
		}
		return writeJSON(w, views)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range coupons {
		amount := c.Amount.String()
		if c.Kind == domain.CouponKindPercentage {
			amount += "%"
		}
		minimum := "-"
		if c.MinOrder.Valid {
			minimum = c.MinOrder.Decimal.StringFixed(2)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\tmin %s\n", c.Code, c.Kind, amount, minimum)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush: %w", err)
	}
	return nil
}

func writeProducts(w io.Writer, format string, products []domain.Product, unit currency.Unit) error {
	if format == "json" {
		return writeJSON(w, products)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range products {
		price := "n/a"
		if amount, ok := p.UnitPrice(); ok {
			price = money(amount, unit)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\n", p.ID, p.Name, p.Category, price, p.Rating)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush: %w", err)
	}
	return nil
}

func writeOrder(w io.Writer, format string, order domain.OrderRequest) error {
	if format == "json" {
		return writeJSON(w, order)
	}

	fmt.Fprintf(w, "order %s placed for %s: %d items, total %s %s\n",
		order.IdempotencyKey, order.CustomerName, len(order.Items), order.Currency, order.TotalAmount.StringFixed(2))
	return nil
}

func money(amount decimal.Decimal, unit currency.Unit) string {
	return domain.NewMoney(amount, unit).String()
}
