package models

// The source system kept these as free-form strings. They are closed
// enums here, with explicit transition tables: no backward moves, and
// cancellation only from non-terminal states.

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered, OrderCancelled},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether moving to next is legal. A same-value
// update is accepted as a no-op.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentCompleted, PaymentFailed},
	PaymentCompleted: {},
	PaymentFailed:    {},
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	if s == next {
		return true
	}
	for _, t := range paymentTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type TourStatus string

const (
	TourPending   TourStatus = "pending"
	TourConfirmed TourStatus = "confirmed"
	TourCompleted TourStatus = "completed"
	TourCancelled TourStatus = "cancelled"
)

var tourTransitions = map[TourStatus][]TourStatus{
	TourPending:   {TourConfirmed, TourCancelled},
	TourConfirmed: {TourCompleted, TourCancelled},
	TourCompleted: {},
	TourCancelled: {},
}

func (s TourStatus) Valid() bool {
	_, ok := tourTransitions[s]
	return ok
}

func (s TourStatus) CanTransition(next TourStatus) bool {
	if s == next {
		return true
	}
	for _, t := range tourTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
