// Package diff provides a generic keyed set comparison used by the record
// reconciliation pipeline.
//
// ByKey partitions two sequences into three groups based on a caller-supplied
// key function: elements only in the first sequence, elements only in the
// second, and elements present in both. It is the primitive that lets the
// reconciler converge stored image rows with a fresh submission using
// targeted inserts and deletes instead of delete-all-and-reinsert.
//
// # Usage
//
//	res := diff.ByKey(incoming, current, func(img Image) string {
//	    return strings.ToLower(img.NaturalKey())
//	})
//	// res.OnlyInFirst  -> create
//	// res.OnlyInSecond -> delete
//	// res.InBoth       -> keep untouched
package diff
