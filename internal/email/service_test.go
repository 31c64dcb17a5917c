package email

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContactNotification(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@fitzone.example", "FitZone", "frontdesk@fitzone.example")

	mock.Regexp().ExpectLPush(queueKey, `.*"to":"frontdesk@fitzone\.example".*"kind":"contact".*`).
		SetVal(1)

	err := svc.SendContactNotification(context.Background(),
		"Asha Rao", "asha@example.com", "555-0101", "Trial pass", "Do you offer a free trial week?")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPaymentConfirmation(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@fitzone.example", "FitZone", "frontdesk@fitzone.example")

	mock.Regexp().ExpectLPush(queueKey, `.*"to":"asha@example\.com".*"kind":"payment_confirmation".*`).
		SetVal(1)

	err := svc.SendPaymentConfirmation(context.Background(), "asha@example.com", "Asha", "Yearly", 500)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueue_RedisFailureSurfaces(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@fitzone.example", "FitZone", "frontdesk@fitzone.example")

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	err := svc.SendPaymentConfirmation(context.Background(), "asha@example.com", "Asha", "Monthly", 50)

	assert.Error(t, err)
}

func TestQueueLength(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@fitzone.example", "FitZone", "frontdesk@fitzone.example")

	mock.ExpectLLen(queueKey).SetVal(4)

	assert.Equal(t, int64(4), svc.QueueLength(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
