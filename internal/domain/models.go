// Domain entities as returned by the core platform API. Nested relations
// (user, package, payment, rating) arrive fully populated and are read-only
// here; timestamps are kept as raw strings and parsed where needed.
package domain

// Order is a cleaning order as listed in the operator dashboard.
type Order struct {
	ID         string      `json:"id"`
	Status     OrderStatus `json:"status"`
	TotalPrice float64     `json:"total_price"`
	Address    string      `json:"address"`
	Notes      string      `json:"notes,omitempty"`
	User       *User       `json:"user"`
	Package    *Package    `json:"package"`
	Payment    *Payment    `json:"payment,omitempty"`
	Rating     *Rating     `json:"rating,omitempty"`
	CleanerID  *string     `json:"cleaner_id,omitempty"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

// Rating is a customer review of a completed order.
type Rating struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	UserName  string `json:"user_name"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Cleaner is a field worker; Lat/Lng/IsActive are the two-and-a-half fields
// that the live feed may overwrite out of band.
type Cleaner struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	IsActive  bool    `json:"is_active"`
	UpdatedAt string  `json:"updated_at"`
}

type Package struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	DurationHours int     `json:"duration_hours"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  Actor  `json:"role"`
}

type Payment struct {
	ID     string        `json:"id"`
	Status PaymentStatus `json:"status"`
	Method string        `json:"method"`
	Amount float64       `json:"amount"`
}
