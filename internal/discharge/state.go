package discharge

import (
	"slices"

	"github.com/mrsinham/physioreport/internal/comparison"
)

// The update helpers below never modify their input state.

// IsSelected reports whether the item id is included in the summary.
func (s State) IsSelected(id string) bool {
	return slices.Contains(s.SelectedItems, id)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.SelectedItems = slices.Clone(s.SelectedItems)
	out.ItemOrder = slices.Clone(s.ItemOrder)
	if s.EditedTexts != nil {
		out.EditedTexts = make(map[string]string, len(s.EditedTexts))
		for k, v := range s.EditedTexts {
			out.EditedTexts[k] = v
		}
	}
	return out
}

// Select includes an item.
func Select(s State, id string) State {
	out := s.Clone()
	if !out.IsSelected(id) {
		out.SelectedItems = append(out.SelectedItems, id)
	}
	return out
}

// SelectAll includes every item.
func SelectAll(s State, items []comparison.Item) State {
	out := s.Clone()
	for _, it := range items {
		if !out.IsSelected(it.ID) {
			out.SelectedItems = append(out.SelectedItems, it.ID)
		}
	}
	return out
}

// Deselect excludes an item. Its edit, if any, is kept.
func Deselect(s State, id string) State {
	out := s.Clone()
	out.SelectedItems = slices.DeleteFunc(out.SelectedItems, func(v string) bool { return v == id })
	return out
}

// Edit overrides an item's generated text.
func Edit(s State, id, text string) State {
	out := s.Clone()
	if out.EditedTexts == nil {
		out.EditedTexts = map[string]string{}
	}
	out.EditedTexts[id] = text
	return out
}

// ClearEdit drops an override so the item reverts to its generated text.
func ClearEdit(s State, id string) State {
	out := s.Clone()
	delete(out.EditedTexts, id)
	return out
}

// Reconcile merges the stored order with the current items. Ids that no
// longer exist leave the order; new ids are placed by category rank.
func Reconcile(s State, items []comparison.Item) State {
	out := s.Clone()
	out.ItemOrder = comparison.MergeOrder(s.ItemOrder, items)
	return out
}

// Move shifts an item by delta positions within the reconciled order,
// clamped to the ends. Unknown ids leave the order unchanged.
func Move(s State, items []comparison.Item, id string, delta int) State {
	out := Reconcile(s, items)
	from := slices.Index(out.ItemOrder, id)
	if from < 0 || delta == 0 {
		return out
	}
	to := min(max(from+delta, 0), len(out.ItemOrder)-1)
	order := slices.Delete(out.ItemOrder, from, from+1)
	out.ItemOrder = slices.Insert(order, to, id)
	return out
}
