package entity

// PricingRule pairs a product with its base and recommended price.
// ProductID is a soft reference, never validated by the store.
type PricingRule struct {
	ID               string  `json:"id"`
	ProductID        string  `json:"productId"`
	BasePrice        float64 `json:"basePrice"`
	RecommendedPrice float64 `json:"recommendedPrice"`
}

// MarginImpact is the read-time derived value recommendedPrice - basePrice.
func (r *PricingRule) MarginImpact() float64 {
	return r.RecommendedPrice - r.BasePrice
}

// PricingRulePatch enumerates the updatable fields of a pricing rule.
type PricingRulePatch struct {
	ProductID        *string `json:"productId,omitempty"`
	BasePrice        *Number `json:"basePrice,omitempty"`
	RecommendedPrice *Number `json:"recommendedPrice,omitempty"`
}

// Fields returns the set fields keyed by their stored names.
func (p *PricingRulePatch) Fields() map[string]any {
	fields := make(map[string]any)
	if p.ProductID != nil {
		fields["productId"] = *p.ProductID
	}
	if p.BasePrice != nil {
		fields["basePrice"] = p.BasePrice.Float64()
	}
	if p.RecommendedPrice != nil {
		fields["recommendedPrice"] = p.RecommendedPrice.Float64()
	}

	return fields
}
