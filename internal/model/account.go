package model

import (
	"fmt"
	"strings"
)

// Category classifies accounts in the chart of accounts.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryRevenue   Category = "revenue"
	CategoryExpense   Category = "expense"
)

// DebitNormal reports whether accounts of this category carry a debit
// balance. Asset and Expense accounts increase on the debit side; the rest
// increase on the credit side. This is a property of the category and never
// varies per account.
func (c Category) DebitNormal() bool {
	return c == CategoryAsset || c == CategoryExpense
}

// Account represents one row in the chart of accounts. Accounts are
// immutable value objects; the Number string sorts the chart and may carry a
// dotted sub-account suffix ("1100.1").
type Account struct {
	Number   string
	Name     string
	Category Category
}

// String renders the account for report columns. Sub-accounts (dotted
// numbers) are pushed right to read as children of their parent.
func (a Account) String() string {
	if strings.Contains(a.Number, ".") {
		return fmt.Sprintf("%8s %s", a.Number, a.Name)
	}
	return fmt.Sprintf("%6s   %s", a.Number, a.Name)
}
