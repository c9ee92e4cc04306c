package repository

import "shopkeeper/internal/errors"

// Not-found sentinels returned by Update when the target document does
// not exist. Delete never returns them; removing a missing document is a
// successful no-op in every driver.
var (
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrVendorNotFound        = errors.New("vendor not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrCustomerSaleNotFound  = errors.New("customer sale not found")
	ErrPricingRuleNotFound   = errors.New("pricing rule not found")
)
