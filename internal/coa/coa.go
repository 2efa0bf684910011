package coa

import (
	"sort"

	"github.com/myfi-dev/myfi/internal/model"
)

// Chart is the registry of all valid accounts, indexed by name and by
// number. It is built once at startup and read-only thereafter; both indices
// always hold exactly the same account set.
type Chart struct {
	byName   map[string]model.Account
	byNumber map[string]model.Account
}

// New creates an empty Chart.
func New() *Chart {
	return &Chart{
		byName:   make(map[string]model.Account),
		byNumber: make(map[string]model.Account),
	}
}

// Add registers an account under both indices.
func (c *Chart) Add(acct model.Account) error {
	if _, ok := c.byName[acct.Name]; ok {
		return DuplicateAccountError{Field: "name", Value: acct.Name}
	}
	if _, ok := c.byNumber[acct.Number]; ok {
		return DuplicateAccountError{Field: "number", Value: acct.Number}
	}
	c.byName[acct.Name] = acct
	c.byNumber[acct.Number] = acct
	return nil
}

// Resolve looks an account up by name, falling back to number.
func (c *Chart) Resolve(key string) (model.Account, error) {
	if a, ok := c.byName[key]; ok {
		return a, nil
	}
	if a, ok := c.byNumber[key]; ok {
		return a, nil
	}
	return model.Account{}, UnknownAccountError{Key: key}
}

// ByNumber looks an account up by number only.
func (c *Chart) ByNumber(number string) (model.Account, bool) {
	a, ok := c.byNumber[number]
	return a, ok
}

// Len returns the number of registered accounts.
func (c *Chart) Len() int {
	return len(c.byNumber)
}

// Accounts returns all accounts sorted ascending by number. Every report and
// the period close iterate in this order so output is reproducible.
func (c *Chart) Accounts() []model.Account {
	accts := make([]model.Account, 0, len(c.byNumber))
	for _, a := range c.byNumber {
		accts = append(accts, a)
	}
	sort.Slice(accts, func(i, j int) bool { return accts[i].Number < accts[j].Number })
	return accts
}

// ByCategory returns all accounts of the given category, in number order.
func (c *Chart) ByCategory(cat model.Category) []model.Account {
	var result []model.Account
	for _, a := range c.Accounts() {
		if a.Category == cat {
			result = append(result, a)
		}
	}
	return result
}
