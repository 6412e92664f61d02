// Package t2048 is the terminal front end of the 2048 puzzle: board variants,
// a tick-driven adapter around the move engine, tile animation and rendering.
package t2048

// Variant defines a board preset.
type Variant struct {
	ID     string // Name used on the command line and in config
	Key    string // Score key for storage
	Name   string
	Size   int // Board dimension
	Target int // Tile value that raises the win banner
}

// Variants lists the board presets. Targets are reachable but demanding for each size.
var Variants = []Variant{
	{ID: "classic", Key: "2048", Name: "Classic 4x4", Size: 4, Target: 2048},
	{ID: "mini", Key: "2048_mini", Name: "Mini 3x3", Size: 3, Target: 256},
	{ID: "big", Key: "2048_big", Name: "Big 5x5", Size: 5, Target: 4096},
	{ID: "huge", Key: "2048_huge", Name: "Huge 6x6", Size: 6, Target: 8192},
}

// DefaultVariant is the classic board.
func DefaultVariant() Variant {
	return Variants[0]
}

// VariantCount returns the number of variants.
func VariantCount() int {
	return len(Variants)
}

// GetVariant returns the variant at the given index (0-based).
// Returns nil if index is out of range.
func GetVariant(index int) *Variant {
	if index < 0 || index >= len(Variants) {
		return nil
	}
	return &Variants[index]
}

// FindVariant looks a variant up by ID or score key.
func FindVariant(name string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == name || v.Key == name {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantNames returns the display names of all variants.
func VariantNames() []string {
	names := make([]string, len(Variants))
	for i, v := range Variants {
		names[i] = v.Name
	}
	return names
}

// VariantKeys returns the score keys of all variants.
func VariantKeys() []string {
	keys := make([]string, len(Variants))
	for i, v := range Variants {
		keys[i] = v.Key
	}
	return keys
}

// WithOverrides returns v with a non-zero size or target replacing the preset.
func (v Variant) WithOverrides(size, target int) Variant {
	if size > 0 {
		v.Size = size
	}
	if target != 0 {
		v.Target = target
	}
	return v
}
