package confstore

import "strconv"

// Filter selects the resampling filter used to scale image art.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterGaussian
	FilterTriangle
	FilterCatmull
	FilterLanczos

	filterCount
)

//nolint:gochecknoglobals
var filterNames = [filterCount]string{
	FilterNearest:  "Nearest",
	FilterGaussian: "Gaussian",
	FilterTriangle: "Triangle",
	FilterCatmull:  "Catmull",
	FilterLanczos:  "Lanczos",
}

func (f Filter) String() string {
	if f >= filterCount {
		return "Filter(" + strconv.Itoa(int(f)) + ")"
	}

	return filterNames[f]
}

// ParseFilter returns the filter with the given case-sensitive name.
func ParseFilter(name string) (Filter, bool) {
	for f, n := range filterNames {
		if n == name {
			return Filter(f), true
		}
	}

	return FilterNearest, false
}

// FilterNames returns the valid filter names in declaration order.
func FilterNames() []string {
	names := make([]string, filterCount)
	copy(names, filterNames[:])

	return names
}
