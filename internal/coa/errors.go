package coa

import "fmt"

// DuplicateAccountError reports an attempt to register a second account under
// an already-used name or number.
type DuplicateAccountError struct {
	Field string // "name" or "number"
	Value string
}

func (e DuplicateAccountError) Error() string {
	return fmt.Sprintf("duplicate account %s %q", e.Field, e.Value)
}

// UnknownAccountError reports a lookup key that matches neither an account
// name nor an account number.
type UnknownAccountError struct {
	Key string
}

func (e UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account %q", e.Key)
}
