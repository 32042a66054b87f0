package trade

// Condition represents the inventory condition of devices in a batch
type Condition string

const (
	ConditionNew  Condition = "NEW"
	ConditionUsed Condition = "USED"
)

// IsValid checks if the condition is valid
func (c Condition) IsValid() bool {
	return c == ConditionNew || c == ConditionUsed
}

// String returns the string representation of Condition
func (c Condition) String() string {
	return string(c)
}

// CustomerType distinguishes walk-in buyers from credit-buying shops
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "INDIVIDUAL"
	CustomerTypeShop       CustomerType = "SHOP"
)

// IsValid checks if the customer type is valid
func (c CustomerType) IsValid() bool {
	return c == CustomerTypeIndividual || c == CustomerTypeShop
}

// String returns the string representation of CustomerType
func (c CustomerType) String() string {
	return string(c)
}
