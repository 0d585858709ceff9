package util

// StringSet implements basic set operations on top of a map[string]bool.
type StringSet map[string]bool

// NewStringSet returns a StringSet containing the union of all given slices.
func NewStringSet(slices ...[]string) StringSet {
	ret := make(StringSet)
	for _, s := range slices {
		for _, k := range s {
			ret[k] = true
		}
	}
	return ret
}

// Keys returns the elements of the set as a slice, in unspecified order.
func (s StringSet) Keys() []string {
	ret := make([]string, 0, len(s))
	for k := range s {
		ret = append(ret, k)
	}
	return ret
}

// Copy returns a copy of the set. Copy of a nil set is nil.
func (s StringSet) Copy() StringSet {
	if s == nil {
		return nil
	}
	ret := make(StringSet, len(s))
	for k, v := range s {
		ret[k] = v
	}
	return ret
}

// Intersect returns the set of elements that are present in both s and o.
func (s StringSet) Intersect(o StringSet) StringSet {
	ret := make(StringSet)
	for k := range s {
		if o[k] {
			ret[k] = true
		}
	}
	return ret
}

// Complement returns the set of elements in s that are not present in o.
func (s StringSet) Complement(o StringSet) StringSet {
	ret := make(StringSet)
	for k := range s {
		if !o[k] {
			ret[k] = true
		}
	}
	return ret
}

// Union returns the set of elements present in either s or o.
func (s StringSet) Union(o StringSet) StringSet {
	ret := make(StringSet, len(s)+len(o))
	for k := range s {
		ret[k] = true
	}
	for k := range o {
		ret[k] = true
	}
	return ret
}

// Equals returns true if s and o contain exactly the same elements. A nil
// set and an empty set are considered equal.
func (s StringSet) Equals(o StringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o[k] {
			return false
		}
	}
	return true
}

// In returns true if item is present in slice.
func In(item string, slice []string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
