package member

import "time"

// Lifecycle transitions. Every rule that moves a member's active flag, payment
// status, join date or expiry date lives here, one named operation per flow.
// Each function takes the prior snapshot and a date where relevant and returns
// the next snapshot; persistence is the caller's job.

// NewFromJoin builds the record for a fresh registration. The member starts
// inactive with payment pending until the payment flow runs.
func NewFromJoin(req JoinRequest, today time.Time) Member {
	joinDate := DateOnly(today)
	expiry := ExpiryFromStart(joinDate, req.Plan)

	m := Member{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Plan:          req.Plan,
		Batch:         req.Batch,
		PaymentStatus: PaymentPending,
		Active:        false,
		JoinDate:      &joinDate,
		ExpiryDate:    &expiry,
	}

	// Invariant: a membership never starts active with its expiry already past.
	if expiry.Before(joinDate) {
		m.Active = false
	}

	return m
}

// ApplyPayment marks the member paid and active. There is deliberately no
// expiry re-check here: a payment activates the membership even if the period
// already lapsed, and the next sweep settles it.
func ApplyPayment(m Member) Member {
	m.PaymentStatus = PaymentPaid
	m.Active = true
	return m
}

// Renew restarts the membership period from today on the chosen plan. Payment
// status is left at whatever it was; renewal has never synced it.
func Renew(m Member, plan string, today time.Time) Member {
	joinDate := DateOnly(today)
	expiry := ExpiryFromStart(joinDate, plan)

	m.JoinDate = &joinDate
	m.ExpiryDate = &expiry
	m.Plan = plan
	m.Active = true
	return m
}

// ApplyEdit merges an admin edit into the stored record. Identity and dates
// are preserved; only a plan change moves the expiry, and it is recomputed
// from the stored join date, not from today.
func ApplyEdit(m Member, req EditRequest) Member {
	prevPlan := m.Plan

	m.Name = req.Name
	m.Phone = req.Phone
	m.Email = req.Email
	m.Batch = req.Batch
	m.Plan = req.Plan
	m.PaymentStatus = req.PaymentStatus
	m.Active = req.Active

	// A paid status wins over the raw active toggle.
	if req.PaymentStatus == PaymentPaid {
		m.Active = true
	}

	if req.Plan != prevPlan && m.JoinDate != nil {
		expiry := ExpiryFromStart(*m.JoinDate, req.Plan)
		m.ExpiryDate = &expiry
	}

	return m
}

// Toggle flips the active flag and nothing else. An admin can reactivate an
// expired membership this way; the next sweep reverts it.
func Toggle(m Member) Member {
	m.Active = !m.Active
	return m
}

// ExpireIfPast deactivates a member whose expiry date is strictly before
// today. Members without an expiry date are never auto-expired. The second
// return value reports whether anything changed, which makes the sweep
// idempotent.
func ExpireIfPast(m Member, today time.Time) (Member, bool) {
	if m.ExpiryDate == nil || !m.Active {
		return m, false
	}
	if !m.ExpiryDate.Before(DateOnly(today)) {
		return m, false
	}
	m.Active = false
	return m, true
}
