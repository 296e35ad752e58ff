// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// InvalidCatalogError reports a catalog that violates the ordering contract.
type InvalidCatalogError struct {
	Reason string
}

func (e *InvalidCatalogError) Error() string {
	return "invalid catalog: " + e.Reason
}

var errEmptyCatalog = &InvalidCatalogError{Reason: "no sections defined"}
