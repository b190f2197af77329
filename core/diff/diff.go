package diff

// Result holds the three partitions produced by ByKey.
// Within each partition the input order is preserved.
type Result[T any] struct {
	// OnlyInFirst contains elements of the first sequence whose key does not
	// appear in the second.
	OnlyInFirst []T

	// OnlyInSecond contains elements of the second sequence whose key does not
	// appear in the first.
	OnlyInSecond []T

	// InBoth contains elements whose key appears in both sequences.
	// The element value is taken from the first sequence.
	InBoth []T
}

// ByKey partitions first and second by the keys produced by keyOf.
//
// When a key occurs more than once inside a sequence, the first occurrence
// wins and later duplicates are dropped. Every distinct key of the union of
// both sequences lands in exactly one partition.
func ByKey[T any, K comparable](first, second []T, keyOf func(T) K) Result[T] {
	secondByKey := make(map[K]T, len(second))
	secondOrder := make([]K, 0, len(second))
	for _, item := range second {
		key := keyOf(item)
		if _, exists := secondByKey[key]; exists {
			continue
		}
		secondByKey[key] = item
		secondOrder = append(secondOrder, key)
	}

	var res Result[T]
	seenFirst := make(map[K]struct{}, len(first))
	matched := make(map[K]struct{}, len(second))
	for _, item := range first {
		key := keyOf(item)
		if _, dup := seenFirst[key]; dup {
			continue
		}
		seenFirst[key] = struct{}{}
		if _, ok := secondByKey[key]; ok {
			res.InBoth = append(res.InBoth, item)
			matched[key] = struct{}{}
		} else {
			res.OnlyInFirst = append(res.OnlyInFirst, item)
		}
	}

	for _, key := range secondOrder {
		if _, ok := matched[key]; ok {
			continue
		}
		res.OnlyInSecond = append(res.OnlyInSecond, secondByKey[key])
	}

	return res
}
