package member

import "time"

// Plan pricing and duration tables. Both share the same fallback policy: any
// unrecognized plan, including the empty string, gets Monthly semantics.

// ExpiryFromStart returns the start date advanced by the plan's duration.
func ExpiryFromStart(start time.Time, plan string) time.Time {
	switch plan {
	case PlanMonthly:
		return start.AddDate(0, 1, 0)
	case PlanQuarterly:
		return start.AddDate(0, 3, 0)
	case PlanYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// PlanPrice returns the membership fee for a plan.
func PlanPrice(plan string) float64 {
	switch plan {
	case PlanMonthly:
		return 50.0
	case PlanQuarterly:
		return 135.0
	case PlanYearly:
		return 500.0
	default:
		return 50.0
	}
}

// Plans lists the selectable tiers in display order.
func Plans() []string {
	return []string{PlanMonthly, PlanQuarterly, PlanYearly}
}
