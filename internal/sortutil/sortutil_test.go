package sortutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	set := Union(nil, []string{"b", "a", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(set))
	assert.NotNil(t, SortedKeys(nil))
	assert.Empty(t, SortedKeys(nil))
}

func TestIsSortedUnique(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSortedUnique(nil))
	assert.True(t, IsSortedUnique([]string{"A", "a", "b"}))
	assert.False(t, IsSortedUnique([]string{"a", "a"}))
	assert.False(t, IsSortedUnique([]string{"b", "a"}))
}
