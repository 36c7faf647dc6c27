package highlight

import "strings"

// Bag accumulates highlight values under labels while preserving
// insertion order of both labels and values. It is the pre-normalization
// shape of the highlight output; Normalize produces the externally
// visible contract.
type Bag struct {
	order  []string
	values map[string][]string
}

// NewBag returns an empty bag.
func NewBag() *Bag {
	return &Bag{values: make(map[string][]string)}
}

// Add appends values under a label, registering the label on first use.
func (b *Bag) Add(label string, vals ...string) {
	if len(vals) == 0 {
		return
	}
	if _, ok := b.values[label]; !ok {
		b.order = append(b.order, label)
	}
	b.values[label] = append(b.values[label], vals...)
}

// Labels returns the labels in insertion order.
func (b *Bag) Labels() []string {
	return b.order
}

// Values returns the raw value list for a label.
func (b *Bag) Values(label string) []string {
	return b.values[label]
}

// Normalize converts the bag into the external highlight mapping:
// values are case-insensitively deduplicated preserving first-seen
// order and joined with ", "; labels whose value comes out empty are
// dropped; label keys have spaces replaced with underscores. The
// rewrite is invertible for display by replacing "_" with " ".
func (b *Bag) Normalize() map[string]string {
	out := make(map[string]string, len(b.order))
	for _, label := range b.order {
		joined := strings.Join(uniquePreserveOrder(b.values[label]), ", ")
		if joined == "" {
			continue
		}
		out[normalizeKey(label)] = joined
	}
	return out
}

// normalizeKey rewrites a label for storage: spaces become underscores.
func normalizeKey(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}

// DisplayLabel inverts normalizeKey for presentation.
func DisplayLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// uniquePreserveOrder trims entries, drops empties, and removes
// case-insensitive duplicates keeping the first occurrence.
func uniquePreserveOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		v := strings.TrimSpace(it)
		if v == "" {
			continue
		}
		low := strings.ToLower(v)
		if seen[low] {
			continue
		}
		seen[low] = true
		out = append(out, v)
	}
	return out
}
