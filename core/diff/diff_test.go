package diff_test

import (
	"strconv"
	"testing"

	"citizen-collect/core/diff"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID    string
	Value string
}

func TestByKeySeparatesElementsByPresence(t *testing.T) {
	first := []item{
		{"a", "first-a"},
		{"b", "first-b"},
		{"c", "first-c"},
	}
	second := []item{
		{"b", "second-b"},
		{"c", "second-c"},
		{"d", "second-d"},
	}

	res := diff.ByKey(first, second, func(i item) string { return i.ID })

	assert.Equal(t, []item{{"a", "first-a"}}, res.OnlyInFirst)
	assert.Equal(t, []item{{"d", "second-d"}}, res.OnlyInSecond)
	// Values in InBoth come from the first sequence.
	assert.Equal(t, []item{{"b", "first-b"}, {"c", "first-c"}}, res.InBoth)
}

func TestByKeyKeepsFirstOccurrenceWhenKeysRepeat(t *testing.T) {
	first := []item{
		{"a", "first-a"},
		{"a", "first-a-duplicate"},
	}
	second := []item{
		{"a", "second-a"},
		{"a", "second-a-duplicate"},
	}

	res := diff.ByKey(first, second, func(i item) string { return i.ID })

	assert.Empty(t, res.OnlyInFirst)
	assert.Empty(t, res.OnlyInSecond)
	assert.Equal(t, []item{{"a", "first-a"}}, res.InBoth)
}

func TestByKeyEmptySequences(t *testing.T) {
	key := func(i item) string { return i.ID }

	res := diff.ByKey(nil, nil, key)
	assert.Empty(t, res.OnlyInFirst)
	assert.Empty(t, res.OnlyInSecond)
	assert.Empty(t, res.InBoth)

	res = diff.ByKey([]item{{"a", "x"}}, nil, key)
	assert.Equal(t, []item{{"a", "x"}}, res.OnlyInFirst)

	res = diff.ByKey(nil, []item{{"a", "x"}}, key)
	assert.Equal(t, []item{{"a", "x"}}, res.OnlyInSecond)
}

// Every key of the union must land in exactly one partition.
func TestByKeyPartitionsAreDisjointAndComplete(t *testing.T) {
	var first, second []item
	for i := 0; i < 20; i++ {
		first = append(first, item{ID: strconv.Itoa(i), Value: "f"})
	}
	for i := 10; i < 30; i++ {
		second = append(second, item{ID: strconv.Itoa(i), Value: "s"})
	}

	res := diff.ByKey(first, second, func(i item) string { return i.ID })

	seen := make(map[string]int)
	for _, i := range res.OnlyInFirst {
		seen[i.ID]++
	}
	for _, i := range res.OnlyInSecond {
		seen[i.ID]++
	}
	for _, i := range res.InBoth {
		seen[i.ID]++
	}

	assert.Len(t, seen, 30)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "key %s appeared in %d partitions", id, count)
	}
	assert.Len(t, res.OnlyInFirst, 10)
	assert.Len(t, res.OnlyInSecond, 10)
	assert.Len(t, res.InBoth, 10)
}
