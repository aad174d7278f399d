package domain

// Actor is the authenticated role of a session.
type Actor string

const (
	ActorUser  Actor = "USER"
	ActorAdmin Actor = "ADMIN"
)

// FilterAll disables a categorical filter.
const FilterAll = "ALL"

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderAssigned   OrderStatus = "ASSIGNED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)
