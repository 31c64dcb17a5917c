package payment

import "time"

// StatusPaid is the only status the processing flow ever writes. Payment rows
// are immutable once created.
const StatusPaid = "Paid"

type Payment struct {
	ID            int       `db:"id" json:"id"`
	MemberID      int       `db:"member_id" json:"member_id"`
	Amount        float64   `db:"amount" json:"amount"`
	PaymentDate   time.Time `db:"payment_date" json:"payment_date"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	Status        string    `db:"status" json:"status"`
	Plan          string    `db:"plan" json:"plan"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type ProcessRequest struct {
	MemberID      int     `form:"memberId" binding:"required"`
	Amount        float64 `form:"amount" binding:"required"`
	PaymentMethod string  `form:"paymentMethod" binding:"required"`
	TransactionID string  `form:"transactionId"`
}
