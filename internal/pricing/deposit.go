package pricing

// DefaultDepositPercentage applies when no percentage is configured.
const DefaultDepositPercentage = 30

// DepositPolicy is the configured upfront-payment rule: a percentage of
// the booking total, raised to a minimum amount when one is set.
type DepositPolicy struct {
	Percentage           float64 `json:"deposit_percentage"`
	MinimumBookingAmount float64 `json:"minimum_booking_amount"`
}

// ComputeDeposit derives the deposit for a booking total. The
// percentage is clamped to [0,100] and falls back to the default when
// unset; the result never exceeds the basis, and a configured minimum
// raises it (again capped at the basis). A non-positive basis yields no
// deposit.
func ComputeDeposit(basis float64, policy DepositPolicy) float64 {
	if basis <= 0 {
		return 0
	}

	pct := policy.Percentage
	if pct > 100 {
		pct = 100
	}
	if pct <= 0 {
		pct = DefaultDepositPercentage
	}

	deposit := Round2(basis * pct / 100)
	if deposit > basis {
		deposit = basis
	}
	if policy.MinimumBookingAmount > 0 && deposit < policy.MinimumBookingAmount {
		deposit = policy.MinimumBookingAmount
		if deposit > basis {
			deposit = basis
		}
	}
	return deposit
}
