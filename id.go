package virtkit

import "hash/fnv"

// ID identifies a virtualizer instance in a Registry.
// IDs are stable across frames for the same label.
type ID uint64

// IDOf hashes a string label into a stable ID.
func IDOf(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}
