package domain

// ExpenseCategory is the closed set of expense classifications. Classification
// into an expense account goes through an explicit lookup table keyed by this
// enum; free-text matching on category labels is deliberately not supported.
type ExpenseCategory string

const (
	CategoryMeals           ExpenseCategory = "MEALS"
	CategoryDining          ExpenseCategory = "DINING"
	CategoryVenueRental     ExpenseCategory = "VENUE_RENTAL"
	CategorySupplies        ExpenseCategory = "SUPPLIES"
	CategoryPromotion       ExpenseCategory = "PROMOTION"
	CategoryTransport       ExpenseCategory = "TRANSPORT"
	CategoryJacketMaking    ExpenseCategory = "JACKET_MAKING"
	CategoryAdvancePurchase ExpenseCategory = "ADVANCE_PURCHASE"
	CategoryOther           ExpenseCategory = "OTHER"
)

// ExpenseCategories lists every valid category, in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryMeals,
	CategoryDining,
	CategoryVenueRental,
	CategorySupplies,
	CategoryPromotion,
	CategoryTransport,
	CategoryJacketMaking,
	CategoryAdvancePurchase,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}
