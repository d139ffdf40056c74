// Package tensor implements labeled dense blocks (patches) over named
// axes, and the label arithmetic used to reconcile them: sorted unions,
// sorted-merge intersections, and later-wins overlays.
package tensor

import (
	"sort"

	"github.com/quiltlabs/quilt/pkg/tensor/status"
)

// Axis names one dimension and carries the labels addressing it.
//
// In the catalog registry, labels are the full set ever committed on the
// axis, sorted ascending, and only ever grow. In a patch, labels are the
// subset of the axis the patch covers, also strictly ascending.
type Axis struct {
	Name   string  `json:"name" yaml:"name"`
	Labels []int64 `json:"labels" yaml:"labels"`
}

// NewAxis builds a registry axis: labels are sorted ascending, and
// duplicates are rejected.
func NewAxis(name string, labels []int64) (Axis, error) {
	sorted := append([]int64(nil), labels...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return Axis{}, status.ErrDuplicateLabel.WrapMessage("axis %q: label %d given more than once", name, sorted[i])
		}
	}
	return Axis{Name: name, Labels: sorted}, nil
}

// NewSubset builds a patch or selection axis: labels must already be
// strictly ascending and unique.
func NewSubset(name string, labels []int64) (Axis, error) {
	for i := 1; i < len(labels); i++ {
		if labels[i] <= labels[i-1] {
			return Axis{}, status.ErrUnsortedOrDuplicateLabels.WrapMessage("axis %q at position %d", name, i)
		}
	}
	return Axis{Name: name, Labels: append([]int64(nil), labels...)}, nil
}

// Len is the number of labels on the axis
func (a Axis) Len() int {
	return len(a.Labels)
}

// Clone deep-copies the axis
func (a Axis) Clone() Axis {
	return Axis{Name: a.Name, Labels: append([]int64(nil), a.Labels...)}
}

// Union merges new labels into the axis, keeping the result sorted
// ascending, and reports whether the label set grew. The receiver is
// not modified.
func (a Axis) Union(labels []int64) (Axis, bool) {
	sorted := append([]int64(nil), labels...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	merged := make([]int64, 0, len(a.Labels)+len(sorted))
	grew := false
	i, j := 0, 0
	for i < len(a.Labels) || j < len(sorted) {
		switch {
		case j >= len(sorted):
			merged = append(merged, a.Labels[i])
			i++
		case i >= len(a.Labels):
			if len(merged) == 0 || merged[len(merged)-1] != sorted[j] {
				merged = append(merged, sorted[j])
				grew = true
			}
			j++
		case a.Labels[i] < sorted[j]:
			merged = append(merged, a.Labels[i])
			i++
		case a.Labels[i] > sorted[j]:
			if len(merged) == 0 || merged[len(merged)-1] != sorted[j] {
				merged = append(merged, sorted[j])
				grew = true
			}
			j++
		default:
			merged = append(merged, a.Labels[i])
			i++
			j++
		}
	}
	return Axis{Name: a.Name, Labels: merged}, grew
}

// IntersectSorted computes the ordered intersection of two strictly
// ascending label sequences with a linear merge. It returns the
// positions of each common label in both inputs.
func IntersectSorted(a, b []int64) (ai, bi []int) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			ai = append(ai, i)
			bi = append(bi, j)
			i++
			j++
		}
	}
	return ai, bi
}
