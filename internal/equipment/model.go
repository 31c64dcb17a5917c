package equipment

import "time"

const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusOutOfOrder  = "Out of Order"
)

type Equipment struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Status      string    `db:"status" json:"status"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Form carries the admin add/update fields. Only the name is mandatory; the
// rest get sensible defaults.
type Form struct {
	Name        string `form:"name" validate:"required"`
	Category    string `form:"category"`
	Quantity    int    `form:"quantity"`
	Status      string `form:"status"`
	Description string `form:"description"`
}

// Statuses lists the selectable equipment states in display order.
func Statuses() []string {
	return []string{StatusAvailable, StatusMaintenance, StatusOutOfOrder}
}
