// Package report computes the management reports over sales and purchases of
// a period, for the relational and the graph backend.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hlubek/gestao-varejo/schema"
)

// TopN is the size of the seller and client rankings.
const TopN = 3

// Period is an inclusive range of days.
type Period struct {
	From time.Time
	To   time.Time
}

// ParsePeriod parses two yyyy-mm-dd dates.
func ParsePeriod(from, to string) (Period, error) {
	f, err := time.Parse(schema.DateLayout, strings.TrimSpace(from))
	if err != nil {
		return Period{}, fmt.Errorf("invalid start date %q, expected yyyy-mm-dd", from)
	}
	t, err := time.Parse(schema.DateLayout, strings.TrimSpace(to))
	if err != nil {
		return Period{}, fmt.Errorf("invalid end date %q, expected yyyy-mm-dd", to)
	}
	if t.Before(f) {
		return Period{}, fmt.Errorf("end date %s is before start date %s", to, from)
	}
	return Period{From: f, To: t}, nil
}

// End is the first day after the period.
func (p Period) End() time.Time {
	return p.To.AddDate(0, 0, 1)
}

func (p Period) String() string {
	return p.From.Format(schema.DateLayout) + " a " + p.To.Format(schema.DateLayout)
}

type SellerTotal struct {
	Employee string
	Total    decimal.Decimal
	State    string
}

type ClientTotal struct {
	Client string
	Total  decimal.Decimal
	City   string
}

type RegionSale struct {
	City     string
	Employee string
	Client   string
	Date     time.Time
	Value    decimal.Decimal
}

// ProductPurchase groups the units of one catalog product bought in one purchase
// with the same manufacture and expiry dates.
type ProductPurchase struct {
	Product        string
	ManufacturedOn time.Time
	ExpiresOn      *time.Time
	PurchasedOn    time.Time
	SupplierEmail  string
	Price          decimal.Decimal
	Quantity       int64
	Total          decimal.Decimal
	Freight        decimal.Decimal
}

// Service is implemented by every backend.
type Service interface {
	// TopSellers ranks employees by the value of the sales they attended.
	TopSellers(ctx context.Context, p Period) ([]SellerTotal, error)
	// TopClients ranks clients by the value of their purchases.
	TopClients(ctx context.Context, p Period) ([]ClientTotal, error)
	// SalesByRegion lists sales ordered by client city, newest first.
	SalesByRegion(ctx context.Context, p Period) ([]RegionSale, error)
	ProductPurchases(ctx context.Context, p Period) ([]ProductPurchase, error)
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// freight is what was paid above the catalog price of the units.
func freight(total, price decimal.Decimal, quantity int64) decimal.Decimal {
	return total.Sub(price.Mul(decimal.NewFromInt(quantity)))
}
