package services

import "errors"

// Sentinel errors for the directory clients. A lookup that finds nothing is
// a distinct state from a transport failure; callers tell them apart with
// errors.Is.
var (
	ErrMealNotFound    = errors.New("meal not found")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyQuery      = errors.New("search query cannot be empty")
	ErrEmptyBarcode    = errors.New("barcode cannot be empty")
)
