package jdiff

// Stats holds statistical metadata about a comparison
type Stats struct {
	Left  int `json:"leftNodes"`  // count of nodes in the left tree
	Right int `json:"rightNodes"` // count of nodes in the right tree

	Equal           int `json:"equal,omitempty"`           // number of equal positions, empty containers included
	Content         int `json:"content,omitempty"`         // number of scalars with different values
	Variant         int `json:"variant,omitempty"`         // number of positions with different node kinds
	MissingInSecond int `json:"missingInSecond,omitempty"` // number of positions only the left tree has
	MissingInFirst  int `json:"missingInFirst,omitempty"`  // number of positions only the right tree has
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// Differences is the number of leaf positions that aren't equal
func (s Stats) Differences() int {
	return s.Content + s.Variant + s.MissingInSecond + s.MissingInFirst
}

func (s *Stats) calc(a, b interface{}, d *Delta) {
	*s = Stats{
		Left:  countNodes(a),
		Right: countNodes(b),
	}
	Walk(d, func(_ string, d *Delta) bool {
		switch d.Type {
		case DTEqual:
			s.Equal++
		case DTList:
			// a childless container is an equal pair of empty arrays
			if len(d.List) == 0 {
				s.Equal++
			}
		case DTMap:
			if len(d.Map) == 0 {
				s.Equal++
			}
		case DTDifferentContent:
			s.Content++
		case DTDifferentVariant:
			s.Variant++
		case DTMissingInSecond:
			s.MissingInSecond++
		case DTMissingInFirst:
			s.MissingInFirst++
		}
		return true
	})
}
