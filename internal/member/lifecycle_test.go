package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestNewFromJoin(t *testing.T) {
	today := date(2024, 1, 10)

	m := NewFromJoin(JoinRequest{
		Name:  "Asha Rao",
		Phone: "555-0101",
		Email: "asha@example.com",
		Plan:  PlanYearly,
		Batch: "Morning (6AM-10AM)",
	}, today)

	assert.False(t, m.Active)
	assert.Equal(t, PaymentPending, m.PaymentStatus)
	require.NotNil(t, m.JoinDate)
	require.NotNil(t, m.ExpiryDate)
	assert.Equal(t, date(2024, 1, 10), *m.JoinDate)
	assert.Equal(t, date(2025, 1, 10), *m.ExpiryDate)
	assert.Equal(t, "Asha Rao", m.Name)
}

func TestNewFromJoin_UnknownPlanDefaultsToMonthly(t *testing.T) {
	today := date(2024, 1, 10)

	m := NewFromJoin(JoinRequest{Name: "X", Plan: "Bogus"}, today)

	require.NotNil(t, m.ExpiryDate)
	assert.Equal(t, date(2024, 2, 10), *m.ExpiryDate)
}

func TestNewFromJoin_NeverStartsActive(t *testing.T) {
	today := date(2024, 1, 10)

	for _, plan := range []string{PlanMonthly, PlanQuarterly, PlanYearly, "", "Bogus"} {
		t.Run("plan="+plan, func(t *testing.T) {
			m := NewFromJoin(JoinRequest{Name: "X", Plan: plan}, today)
			assert.False(t, m.Active)
			require.NotNil(t, m.ExpiryDate)
			assert.False(t, m.ExpiryDate.Before(*m.JoinDate))
		})
	}
}

func TestApplyPayment(t *testing.T) {
	m := Member{
		ID:            1,
		PaymentStatus: PaymentPending,
		Active:        false,
		ExpiryDate:    datePtr(2020, 1, 1),
	}

	paid := ApplyPayment(m)

	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	// Activation is unconditional even though the expiry already passed.
	assert.True(t, paid.Active)
	assert.Equal(t, m.ExpiryDate, paid.ExpiryDate)
}

func TestRenew(t *testing.T) {
	m := Member{
		ID:            1,
		Plan:          PlanMonthly,
		PaymentStatus: PaymentPending,
		Active:        false,
		JoinDate:      datePtr(2023, 1, 1),
		ExpiryDate:    datePtr(2023, 2, 1),
	}

	renewed := Renew(m, PlanQuarterly, date(2024, 3, 15))

	assert.Equal(t, PlanQuarterly, renewed.Plan)
	assert.True(t, renewed.Active)
	require.NotNil(t, renewed.JoinDate)
	require.NotNil(t, renewed.ExpiryDate)
	assert.Equal(t, date(2024, 3, 15), *renewed.JoinDate)
	assert.Equal(t, date(2024, 6, 15), *renewed.ExpiryDate)
	// Renewal has never synced payment status.
	assert.Equal(t, PaymentPending, renewed.PaymentStatus)
	assert.True(t, renewed.ExpiryDate.After(*m.ExpiryDate))
}

func TestApplyEdit_PaidForcesActive(t *testing.T) {
	m := Member{ID: 1, Plan: PlanMonthly, Active: true}

	edited := ApplyEdit(m, EditRequest{
		ID:            1,
		Name:          "New Name",
		Plan:          PlanMonthly,
		PaymentStatus: PaymentPaid,
		Active:        false,
	})

	assert.True(t, edited.Active, "Paid status must win over the raw active toggle")
	assert.Equal(t, "New Name", edited.Name)
}

func TestApplyEdit_PlanChangeRecomputesExpiryFromStoredJoinDate(t *testing.T) {
	m := Member{
		ID:         1,
		Plan:       PlanMonthly,
		JoinDate:   datePtr(2024, 1, 10),
		ExpiryDate: datePtr(2024, 2, 10),
	}

	edited := ApplyEdit(m, EditRequest{
		ID:            1,
		Plan:          PlanYearly,
		PaymentStatus: PaymentPending,
	})

	require.NotNil(t, edited.JoinDate)
	require.NotNil(t, edited.ExpiryDate)
	// Join date stays put; only the derived expiry moves.
	assert.Equal(t, date(2024, 1, 10), *edited.JoinDate)
	assert.Equal(t, date(2025, 1, 10), *edited.ExpiryDate)
}

func TestApplyEdit_SamePlanLeavesExpiryAlone(t *testing.T) {
	m := Member{
		ID:         1,
		Plan:       PlanMonthly,
		JoinDate:   datePtr(2024, 1, 10),
		ExpiryDate: datePtr(2024, 2, 10),
	}

	edited := ApplyEdit(m, EditRequest{ID: 1, Plan: PlanMonthly, PaymentStatus: PaymentPending})

	assert.Equal(t, date(2024, 2, 10), *edited.ExpiryDate)
}

func TestApplyEdit_PlanChangeWithoutJoinDateLeavesExpiryAlone(t *testing.T) {
	m := Member{ID: 1, Plan: PlanMonthly}

	edited := ApplyEdit(m, EditRequest{ID: 1, Plan: PlanYearly, PaymentStatus: PaymentPending})

	assert.Nil(t, edited.ExpiryDate)
	assert.Nil(t, edited.JoinDate)
}

func TestToggle_FlipsExactlyOneField(t *testing.T) {
	m := Member{
		ID:            7,
		Name:          "Asha Rao",
		Phone:         "555-0101",
		Email:         "asha@example.com",
		Plan:          PlanQuarterly,
		Batch:         "Evening (2PM-6PM)",
		PaymentStatus: PaymentPaid,
		Active:        true,
		JoinDate:      datePtr(2024, 1, 10),
		ExpiryDate:    datePtr(2024, 4, 10),
	}

	toggled := Toggle(m)

	assert.False(t, toggled.Active)
	toggled.Active = m.Active
	assert.Equal(t, m, toggled, "no field other than active may change")
}

func TestExpireIfPast(t *testing.T) {
	today := date(2024, 6, 15)

	tests := []struct {
		name        string
		member      Member
		wantChanged bool
		wantActive  bool
	}{
		{
			name:        "expired yesterday",
			member:      Member{Active: true, ExpiryDate: datePtr(2024, 6, 14)},
			wantChanged: true,
			wantActive:  false,
		},
		{
			name:        "expires tomorrow",
			member:      Member{Active: true, ExpiryDate: datePtr(2024, 6, 16)},
			wantChanged: false,
			wantActive:  true,
		},
		{
			name:        "expires today is not yet expired",
			member:      Member{Active: true, ExpiryDate: datePtr(2024, 6, 15)},
			wantChanged: false,
			wantActive:  true,
		},
		{
			name:        "already inactive",
			member:      Member{Active: false, ExpiryDate: datePtr(2024, 6, 1)},
			wantChanged: false,
			wantActive:  false,
		},
		{
			name:        "no expiry date never auto-expires",
			member:      Member{Active: true},
			wantChanged: false,
			wantActive:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, changed := ExpireIfPast(tt.member, today)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantActive, next.Active)
		})
	}
}

func TestExpireIfPast_Idempotent(t *testing.T) {
	today := date(2024, 6, 15)
	m := Member{Active: true, ExpiryDate: datePtr(2024, 6, 1)}

	first, changed := ExpireIfPast(m, today)
	assert.True(t, changed)

	second, changed := ExpireIfPast(first, today)
	assert.False(t, changed)
	assert.Equal(t, first, second)
}

// Full scenario: join Yearly, pay, sweep past expiry, renew Monthly.
func TestLifecycle_EndToEnd(t *testing.T) {
	m := NewFromJoin(JoinRequest{Name: "E2E", Plan: PlanYearly}, date(2024, 1, 10))
	require.NotNil(t, m.ExpiryDate)
	assert.Equal(t, date(2025, 1, 10), *m.ExpiryDate)
	assert.False(t, m.Active)
	assert.Equal(t, PaymentPending, m.PaymentStatus)

	m = ApplyPayment(m)
	assert.True(t, m.Active)
	assert.Equal(t, PaymentPaid, m.PaymentStatus)

	m, changed := ExpireIfPast(m, date(2025, 1, 11))
	assert.True(t, changed)
	assert.False(t, m.Active)
	// The sweep never touches payment status.
	assert.Equal(t, PaymentPaid, m.PaymentStatus)

	m = Renew(m, PlanMonthly, date(2025, 1, 11))
	assert.Equal(t, date(2025, 1, 11), *m.JoinDate)
	assert.Equal(t, date(2025, 2, 11), *m.ExpiryDate)
	assert.True(t, m.Active)
	assert.Equal(t, PaymentPaid, m.PaymentStatus)
}
