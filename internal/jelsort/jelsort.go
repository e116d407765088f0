// Package jelsort provides custom sorting.
package jelsort

import "sort"

// By returns a copy of items sorted using lt, which must return true if left
// comes before right. Items that compare equal keep their relative order.
//
// items will not be modified.
func By[E any](items []E, lt func(left E, right E) bool) []E {
	if items == nil {
		return nil
	}

	sorted := make([]E, len(items))
	copy(sorted, items)

	if lt != nil {
		sort.SliceStable(sorted, func(i, j int) bool {
			return lt(sorted[i], sorted[j])
		})
	}
	return sorted
}
