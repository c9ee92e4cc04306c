package entity

import "time"

// OrderStatusPending is the status assigned to orders created without one.
const OrderStatusPending = "PENDING"

// Order represents a purchase order placed with a supplier. Timestamp is
// assigned by the store at creation and is not client-writable.
type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Supplier  string    `json:"supplier"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPatch enumerates the updatable fields of an order.
type OrderPatch struct {
	Status   *string `json:"status,omitempty"`
	Supplier *string `json:"supplier,omitempty"`
}

// Fields returns the set fields keyed by their stored names.
func (p *OrderPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.Supplier != nil {
		fields["supplier"] = *p.Supplier
	}

	return fields
}
