// Package pricing holds the pure booking arithmetic: unit-quantity
// resolution, photographer (B2B) discounting, line-item totals, the
// package-hours ledger, deposit policy and invoice payment
// reconciliation. Functions here never touch storage and never fail on
// business states; callers resolve catalog data first and interpret the
// returned values.
package pricing

import (
	"math"

	"studiobooking/internal/domain"
)

// Round2 rounds a currency amount to 2 decimal places, half away from
// zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ResolveUnitQuantity returns the billable quantity of a line item
// according to the service's unit type. Duration services bill hours or
// minutes, count services bill the count field; the other fields of the
// row are ignored.
func ResolveUnitQuantity(item domain.BookingLineItem, svc domain.Service) float64 {
	if svc.UnitType == domain.UnitDuration {
		switch svc.DurationUnit {
		case domain.DurationHour:
			return item.Hours
		case domain.DurationMinute:
			return item.Minutes
		default:
			return 0
		}
	}
	return item.Count
}

// ServiceDiscount is one row of a photographer's discount sheet.
type ServiceDiscount struct {
	// DiscountedPrice, when > 0, overrides the flat percentage.
	DiscountedPrice float64
	AllowDiscount   bool
}

// DiscountProfile is a photographer's resolved discount configuration.
type DiscountProfile struct {
	B2B        bool
	Percentage float64
	Overrides  map[int64]ServiceDiscount
}

// ProfileFor builds a DiscountProfile from a photographer record. The
// booking-level B2B flag must also be set for the discount to take
// effect, so the caller passes it explicitly.
func ProfileFor(p *domain.Photographer, b2bActive bool) DiscountProfile {
	profile := DiscountProfile{Overrides: map[int64]ServiceDiscount{}}
	if p == nil || !b2bActive || !p.B2B {
		return profile
	}
	profile.B2B = true
	profile.Percentage = p.DiscountPercentage
	for _, ps := range p.Services {
		if !ps.Active {
			continue
		}
		profile.Overrides[ps.ServiceID] = ServiceDiscount{
			DiscountedPrice: ps.DiscountedPrice,
			AllowDiscount:   ps.AllowDiscount,
		}
	}
	return profile
}

// EffectivePrice applies the photographer discount to a base price.
// Priority: no B2B → base; service not on the photographer's sheet →
// base (the caller may surface an informational notice); explicit
// discounted price → that price; flat percentage when the row allows
// it → base reduced by the percentage; otherwise base.
func EffectivePrice(basePrice float64, profile DiscountProfile, serviceID int64) float64 {
	if !profile.B2B {
		return basePrice
	}
	sd, ok := profile.Overrides[serviceID]
	if !ok {
		return basePrice
	}
	if sd.DiscountedPrice > 0 {
		return Round2(sd.DiscountedPrice)
	}
	if profile.Percentage > 0 && sd.AllowDiscount && basePrice > 0 {
		return Round2(basePrice * (1 - profile.Percentage/100))
	}
	return basePrice
}

// RecomputeLineItem resolves prices and the line total for one row.
// Catalog unit fields are copied onto the row so later totalization can
// run without another lookup.
func RecomputeLineItem(item domain.BookingLineItem, svc domain.Service, profile DiscountProfile) domain.BookingLineItem {
	item.ServiceName = svc.Name
	item.UnitType = svc.UnitType
	item.DurationUnit = svc.DurationUnit
	item.BasePrice = svc.BasePrice
	item.DiscountedPrice = EffectivePrice(svc.BasePrice, profile, svc.ID)

	qty := ResolveUnitQuantity(item, svc)
	price := item.BasePrice
	if item.DiscountedPrice > 0 && item.DiscountedPrice != item.BasePrice {
		price = item.DiscountedPrice
	}
	item.TotalAmount = Round2(qty * price)
	return item
}
