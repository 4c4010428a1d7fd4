package comparison

import "sort"

// DefaultOrder sorts items by category rank, keeping generation order within
// a category.
func DefaultOrder(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Category.Rank() < out[b].Category.Rank()
	})
	return out
}

// IDs returns the ids of items in order.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// MergeOrder reconciles a user-controlled order with freshly computed items.
// Ids that no longer exist are dropped, surviving ids keep their relative
// order, and each new id is inserted before the first id of a higher
// category rank. An empty previous order yields the default order.
func MergeOrder(prev []string, items []Item) []string {
	rank := make(map[string]int, len(items))
	for _, it := range items {
		rank[it.ID] = it.Category.Rank()
	}

	order := make([]string, 0, len(items))
	placed := make(map[string]bool, len(items))
	for _, id := range prev {
		if _, ok := rank[id]; ok && !placed[id] {
			order = append(order, id)
			placed[id] = true
		}
	}

	for _, it := range DefaultOrder(items) {
		if placed[it.ID] {
			continue
		}
		r := rank[it.ID]
		pos := len(order)
		for i, id := range order {
			if rank[id] > r {
				pos = i
				break
			}
		}
		order = append(order, "")
		copy(order[pos+1:], order[pos:])
		order[pos] = it.ID
		placed[it.ID] = true
	}
	return order
}

// Apply returns the items arranged in the given id order. Items missing from
// order are left out.
func Apply(order []string, items []Item) []Item {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]Item, 0, len(order))
	for _, id := range order {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}
