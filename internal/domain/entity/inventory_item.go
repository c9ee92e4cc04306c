// Package entity holds the domain types stored in the five shop
// collections: inventory, vendors, orders, customer_sales and pricing.
package entity

// InventoryItem represents a stocked product. VendorID is a soft
// reference to a Vendor id; it is never validated against the vendors
// collection.
type InventoryItem struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Stock       float64 `json:"stock"`
	VendorID    string  `json:"vendorId"`
}

// InventoryPatch enumerates the updatable fields of an inventory item.
// Nil fields are left unchanged.
type InventoryPatch struct {
	ProductName *string `json:"productName,omitempty"`
	Price       *Number `json:"price,omitempty"`
	Stock       *Number `json:"stock,omitempty"`
	VendorID    *string `json:"vendorId,omitempty"`
}

// Fields returns the set fields keyed by their stored names.
func (p *InventoryPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.ProductName != nil {
		fields["productName"] = *p.ProductName
	}
	if p.Price != nil {
		fields["price"] = p.Price.Float64()
	}
	if p.Stock != nil {
		fields["stock"] = p.Stock.Float64()
	}
	if p.VendorID != nil {
		fields["vendorId"] = *p.VendorID
	}

	return fields
}
