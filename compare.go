package jdiff

// Compare computes the delta between documents a & b. Compare is total: every
// pair of document trees has a delta, a structural mismatch is itself a valid
// outcome (DTDifferentVariant). Neither input is modified, the returned delta
// references nodes of both
func Compare(a, b interface{}, opts ...CompareOption) *Delta {
	cfg := &CompareConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := compare(a, b)
	if cfg.Stats != nil {
		cfg.Stats.calc(a, b, d)
	}
	return d
}

// CompareConfig are any possible configuration parameters for comparing
// documents
type CompareConfig struct {
	// Provide a non-nil stats pointer & Compare will populate it with counts
	// from the resulting delta
	Stats *Stats
}

// CompareOption is a function that adjusts a config, zero or more
// CompareOptions can be passed to the Compare function
type CompareOption func(cfg *CompareConfig)

// OptionSetStats will set the passed-in stats pointer when Compare is called
func OptionSetStats(st *Stats) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Stats = st
	}
}

func compare(a, b interface{}) *Delta {
	at, bt := typeOf(a), typeOf(b)
	if at != bt {
		return &Delta{Type: DTDifferentVariant, Left: a, Right: b}
	}

	switch at {
	case ntNull:
		return &Delta{Type: DTEqual, Left: a, Right: b}
	case ntArray:
		return compareArrays(a.([]interface{}), b.([]interface{}))
	case ntObject:
		return compareObjects(a.(map[string]interface{}), b.(map[string]interface{}))
	case ntUnknown:
		// values that aren't part of the JSON model only match themselves
		if deepEqual(a, b) {
			return &Delta{Type: DTEqual, Left: a, Right: b}
		}
		return &Delta{Type: DTDifferentVariant, Left: a, Right: b}
	default:
		if deepEqual(a, b) {
			return &Delta{Type: DTEqual, Left: a, Right: b}
		}
		return &Delta{Type: DTDifferentContent, Left: a, Right: b}
	}
}

// compareArrays compares according to the index of the nodes in the array.
// positions past the end of the shorter array become single-sided deltas
func compareArrays(a, b []interface{}) *Delta {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	d := &Delta{Type: DTList, Left: a, Right: b, List: make([]*Delta, 0, n)}

	for i := 0; i < n; i++ {
		switch {
		case i < len(a) && i < len(b):
			d.List = append(d.List, compare(a[i], b[i]))
		case i < len(a):
			d.List = append(d.List, &Delta{Type: DTMissingInSecond, Left: a[i]})
		default:
			d.List = append(d.List, &Delta{Type: DTMissingInFirst, Right: b[i]})
		}
	}
	return d
}

// compareObjects compares according to the key of the nodes in the object,
// the resulting key set is the union of both key sets
func compareObjects(a, b map[string]interface{}) *Delta {
	d := &Delta{Type: DTMap, Left: a, Right: b, Map: make(map[string]*Delta, len(a))}

	for k, av := range a {
		if bv, ok := b[k]; ok {
			d.Map[k] = compare(av, bv)
		} else {
			d.Map[k] = &Delta{Type: DTMissingInSecond, Left: av}
		}
	}
	for k, bv := range b {
		if _, ok := a[k]; !ok {
			d.Map[k] = &Delta{Type: DTMissingInFirst, Right: bv}
		}
	}
	return d
}
