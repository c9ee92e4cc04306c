package entity

import "time"

// CustomerSale records a single point-of-sale transaction. The stored
// field name "productname" (all lowercase) is part of the wire contract.
// Timestamp is assigned by the store at creation.
type CustomerSale struct {
	ID          string    `json:"id"`
	Price       float64   `json:"price"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productname"`
	Quantity    float64   `json:"quantity"`
	Timestamp   time.Time `json:"timestamp"`
}

// Revenue is the read-time derived value price x quantity; it is never
// stored or serialized.
func (s *CustomerSale) Revenue() float64 {
	return s.Price * s.Quantity
}

// CustomerSalePatch enumerates the updatable fields of a sale record.
type CustomerSalePatch struct {
	Price       *Number `json:"price,omitempty"`
	ProductID   *string `json:"productId,omitempty"`
	ProductName *string `json:"productname,omitempty"`
	Quantity    *Number `json:"quantity,omitempty"`
}

// Fields returns the set fields keyed by their stored names.
func (p *CustomerSalePatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Price != nil {
		fields["price"] = p.Price.Float64()
	}
	if p.ProductID != nil {
		fields["productId"] = *p.ProductID
	}
	if p.ProductName != nil {
		fields["productname"] = *p.ProductName
	}
	if p.Quantity != nil {
		fields["quantity"] = p.Quantity.Float64()
	}

	return fields
}
