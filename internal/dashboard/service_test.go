package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymadmin/internal/member"
	"gymadmin/internal/payment"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CountMembers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountMembersByActive(ctx context.Context, active bool) (int64, error) {
	args := m.Called(ctx, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountMembersByPaymentStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountEquipment(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) SumEquipmentUnits(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountPaymentsByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func TestStats(t *testing.T) {
	repo := new(MockRepository)
	clock := func() time.Time { return time.Date(2024, 6, 15, 11, 0, 0, 0, time.UTC) }
	svc := NewService(repo, clock)

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	repo.On("CountMembers", mock.Anything).Return(int64(10), nil)
	repo.On("CountMembersByActive", mock.Anything, true).Return(int64(7), nil)
	repo.On("CountMembersByActive", mock.Anything, false).Return(int64(3), nil)
	repo.On("CountExpiringBetween", mock.Anything, today, today.AddDate(0, 0, ExpiringSoonDays)).
		Return(int64(2), nil)
	repo.On("CountEquipment", mock.Anything).Return(int64(4), nil)
	repo.On("SumEquipmentUnits", mock.Anything).Return(int64(12), nil)
	repo.On("CountMembersByPaymentStatus", mock.Anything, member.PaymentPaid).Return(int64(6), nil)
	repo.On("CountMembersByPaymentStatus", mock.Anything, member.PaymentPending).Return(int64(4), nil)
	repo.On("CountPaymentsByStatus", mock.Anything, payment.StatusPaid).Return(int64(9), nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalMembers)
	assert.Equal(t, int64(7), stats.ActiveMembers)
	assert.Equal(t, int64(3), stats.ExpiredMembers)
	assert.Equal(t, int64(2), stats.ExpiringSoon)
	assert.Equal(t, int64(4), stats.EquipmentCount)
	assert.Equal(t, int64(12), stats.TotalEquipment)
	assert.Equal(t, int64(6), stats.PaidMembers)
	assert.Equal(t, int64(4), stats.PendingPayments)
	assert.Equal(t, int64(9), stats.TotalPayments)
	repo.AssertExpectations(t)
}

func TestStats_ErrorShortCircuits(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil)

	repo.On("CountMembers", mock.Anything).Return(int64(0), errors.New("connection refused"))

	stats, err := svc.Stats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "CountMembersByActive", mock.Anything, mock.Anything)
}
