package sortutil

import "sort"

// SortedKeys returns the members of set in ascending byte order. The result
// is never nil so callers can render it directly.
func SortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Union adds every element of list to set, allocating set when nil.
func Union(set map[string]struct{}, list []string) map[string]struct{} {
	if set == nil {
		set = make(map[string]struct{}, len(list))
	}
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}

// IsSortedUnique reports whether list is strictly ascending.
func IsSortedUnique(list []string) bool {
	for i := 1; i < len(list); i++ {
		if list[i-1] >= list[i] {
			return false
		}
	}
	return true
}
