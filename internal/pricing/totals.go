package pricing

import "studiobooking/internal/domain"

// Totals are the pre-discount and effective sums of a booking.
type Totals struct {
	Base  float64 `json:"base_total"`
	Final float64 `json:"final_total"`
}

// Totalize sums service-booking line items. The base total is always
// recomputed from base price × quantity; the final total re-sums the
// already-computed line totals so manual row-level overrides survive,
// falling back to effective price × quantity for rows that never got
// one.
func Totalize(items []domain.BookingLineItem) Totals {
	var t Totals
	for _, it := range items {
		qty := rowQuantity(it)
		t.Base += it.BasePrice * qty
		if it.TotalAmount != 0 {
			t.Final += it.TotalAmount
			continue
		}
		price := it.BasePrice
		if it.DiscountedPrice > 0 && it.DiscountedPrice != it.BasePrice {
			price = it.DiscountedPrice
		}
		t.Final += price * qty
	}
	t.Base = Round2(t.Base)
	t.Final = Round2(t.Final)
	return t
}

// rowQuantity resolves the quantity from the unit fields copied onto
// the row at edit time.
func rowQuantity(it domain.BookingLineItem) float64 {
	if it.UnitType == domain.UnitDuration {
		switch it.DurationUnit {
		case domain.DurationHour:
			return it.Hours
		case domain.DurationMinute:
			return it.Minutes
		default:
			return 0
		}
	}
	return it.Count
}

// PopulatePackageRows builds the booking's own copy of a package's
// service entries with photographer pricing applied. The package price
// (catalog price when the entry has none) is the discount basis.
func PopulatePackageRows(pkg domain.Package, services map[int64]domain.Service, profile DiscountProfile) []domain.BookingPackageService {
	rows := make([]domain.BookingPackageService, 0, len(pkg.Services))
	for _, entry := range pkg.Services {
		qty := entry.Quantity
		if qty == 0 {
			qty = 1
		}

		var basePrice float64
		var name string
		if svc, ok := services[entry.ServiceID]; ok {
			basePrice = svc.BasePrice
			name = svc.Name
		}

		unitPrice := entry.PackagePrice
		if unitPrice <= 0 {
			unitPrice = basePrice
		}
		unitPrice = EffectivePrice(unitPrice, profile, entry.ServiceID)

		rows = append(rows, domain.BookingPackageService{
			ServiceID:    entry.ServiceID,
			ServiceName:  name,
			Quantity:     qty,
			BasePrice:    basePrice,
			PackagePrice: unitPrice,
			Amount:       Round2(qty * unitPrice),
			Required:     entry.Required,
		})
	}
	return rows
}

// PackageTotals recomputes per-row amounts and the package sums.
// Returned rows replace the input; the base total uses the catalog
// price (package price when no catalog price was resolved) and the
// final total the discounted package price.
func PackageTotals(rows []domain.BookingPackageService) ([]domain.BookingPackageService, Totals) {
	var t Totals
	out := make([]domain.BookingPackageService, 0, len(rows))
	for _, row := range rows {
		basePrice := row.BasePrice
		if basePrice == 0 && row.PackagePrice != 0 {
			basePrice = row.PackagePrice
		}
		t.Base += row.Quantity * basePrice
		row.Amount = Round2(row.Quantity * row.PackagePrice)
		t.Final += row.Amount
		out = append(out, row)
	}
	t.Base = Round2(t.Base)
	t.Final = Round2(t.Final)
	return out, t
}
