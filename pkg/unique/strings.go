package unique

import (
	"sort"
)

// StringsSorted returns the distinct values of input in ascending order.
func StringsSorted(input []string) []string {
	m := map[string]struct{}{}
	for _, val := range input {
		m[val] = struct{}{}
	}
	u := make([]string, 0, len(m))
	for val := range m {
		u = append(u, val)
	}
	sort.Strings(u)
	return u
}
