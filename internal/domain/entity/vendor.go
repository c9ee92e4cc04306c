package entity

// Vendor represents a supplier of inventory items.
type Vendor struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
}

// VendorPatch enumerates the updatable fields of a vendor.
type VendorPatch struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Rating   *Number `json:"rating,omitempty"`
}

// Fields returns the set fields keyed by their stored names.
func (p *VendorPatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.Rating != nil {
		fields["rating"] = p.Rating.Float64()
	}

	return fields
}
