package virtkit

// HeightPolicy describes how item heights are determined: a single fixed
// height for uniform rows, or a per-index function for variable rows.
// A policy is immutable for the lifetime of one offset index; installing a
// new policy invalidates the index.
//
// The zero HeightPolicy is not valid; construct one with FixedHeight or
// VariableHeight.
type HeightPolicy struct {
	fixed float32
	fn    func(index int) float32
}

// FixedHeight returns a policy where every item has the same height.
func FixedHeight(h float32) HeightPolicy {
	return HeightPolicy{fixed: h}
}

// VariableHeight returns a policy where each item's height comes from fn.
// fn must be pure and return non-negative heights; zero is legal.
func VariableHeight(fn func(index int) float32) HeightPolicy {
	return HeightPolicy{fn: fn}
}

// IsVariable reports whether the policy uses a per-index height function.
func (p HeightPolicy) IsVariable() bool {
	return p.fn != nil
}

// HeightOf returns the height of the item at index i.
// Builders that iterate all items should branch on IsVariable once instead
// of calling this per item.
func (p HeightPolicy) HeightOf(i int) float32 {
	if p.fn != nil {
		return p.fn(i)
	}
	return p.fixed
}
