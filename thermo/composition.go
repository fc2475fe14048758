package thermo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Composition maps species names to mole fractions
type Composition map[string]float64

// ParseComposition reads the "NAME:value,NAME:value" form, e.g. "O2:0.21,N2:0.79".
// Values are relative amounts and are not normalized here.
func ParseComposition(s string) (X Composition, err error) {
	X = make(Composition)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if len(field) == 0 {
			continue
		}
		parts := strings.Split(field, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: malformed composition entry %q", ErrBackend, field)
		}
		name := strings.TrimSpace(parts[0])
		var val float64
		if val, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
			return nil, fmt.Errorf("%w: composition entry %q: %v", ErrBackend, field, err)
		}
		if val < 0 {
			return nil, fmt.Errorf("%w: negative amount for %s", ErrBackend, name)
		}
		X[name] += val
	}
	if len(X) == 0 || !(X.Sum() > 0) {
		return nil, fmt.Errorf("%w: empty composition %q", ErrBackend, s)
	}
	return
}

func (X Composition) Sum() (total float64) {
	for _, v := range X {
		total += v
	}
	return
}

func (X Composition) String() string {
	keys := make([]string, 0, len(X))
	for k := range X {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i != 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s:%g", k, X[k])
	}
	return b.String()
}
