package member

import "time"

const (
	PlanMonthly   = "Monthly"
	PlanQuarterly = "Quarterly"
	PlanYearly    = "Yearly"

	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	// PaymentOverdue is a legal value on the column but no flow assigns it.
	PaymentOverdue = "Overdue"
)

// Member is a value snapshot of a membership row. Lifecycle transitions take a
// snapshot and return a new one; nothing mutates a fetched record in place.
type Member struct {
	ID            int        `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Phone         string     `db:"phone" json:"phone"`
	Email         string     `db:"email" json:"email"`
	Plan          string     `db:"plan" json:"plan"`
	Batch         string     `db:"batch" json:"batch"`
	PaymentStatus string     `db:"payment_status" json:"payment_status"`
	Active        bool       `db:"active" json:"active"`
	JoinDate      *time.Time `db:"join_date" json:"join_date,omitempty"`
	ExpiryDate    *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// Expired reports whether the membership period is over as of today.
func (m Member) Expired(today time.Time) bool {
	return m.ExpiryDate != nil && m.ExpiryDate.Before(DateOnly(today))
}

// JoinRequest carries the public registration form as-is. The fields are
// free text; the flow accepts whatever the form sends.
type JoinRequest struct {
	Name  string `form:"name"`
	Phone string `form:"phone"`
	Email string `form:"email"`
	Plan  string `form:"plan"`
	Batch string `form:"batch"`
}

// EditRequest is the full replacement of the mutable fields bound to an
// existing identity. Dates are never supplied directly; expiry is derived.
type EditRequest struct {
	ID            int    `form:"id"`
	Name          string `form:"name"`
	Phone         string `form:"phone"`
	Email         string `form:"email"`
	Plan          string `form:"plan"`
	Batch         string `form:"batch"`
	PaymentStatus string `form:"paymentStatus"`
	Active        bool   `form:"active"`
}

type RenewRequest struct {
	Plan string `form:"plan"`
}

// DateOnly truncates a timestamp to a calendar date at midnight UTC. Member
// dates carry no time component.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
