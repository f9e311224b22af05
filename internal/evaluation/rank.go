package evaluation

import "sort"

// Rank returns records ordered by score descending. The sort is stable:
// records with equal scores keep their original submission order.
func Rank(records []Record) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
