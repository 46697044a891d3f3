// Package errors provides sentinel errors for the back-office resources.
package errors

import "errors"

var ErrCategoryNotFound = errors.New("category not found")
var ErrProductNotFound = errors.New("product not found")
var ErrOrderNotFound = errors.New("order not found")
