package tensor

import (
	"github.com/quiltlabs/quilt/pkg/tensor/status"
)

// SelectionKind enumerates the ways one axis of a fetch can be sliced
type SelectionKind int

const (
	// SelectAll takes the axis's full label set, snapshotted at fetch time.
	// It is the zero value, so an axis left unmentioned in a selection
	// map defaults to the whole axis.
	SelectAll SelectionKind = iota

	// SelectLabels takes an explicit strictly ascending label sequence
	SelectLabels

	// SelectRange takes every snapshot label within an inclusive range
	SelectRange
)

// Selection describes how to slice one axis of a fetch
type Selection struct {
	Kind   SelectionKind
	Labels []int64
	Start  int64
	End    int64
}

// All selects the whole axis
func All() Selection {
	return Selection{Kind: SelectAll}
}

// Labels selects an explicit, strictly ascending label sequence
func Labels(labels ...int64) Selection {
	return Selection{Kind: SelectLabels, Labels: labels}
}

// Range selects the snapshot labels within [start, end], inclusive
func Range(start, end int64) Selection {
	return Selection{Kind: SelectRange, Start: start, End: end}
}

// Materialize resolves the selection against an axis snapshot into the
// concrete label subset the fetch result will carry.
func (s Selection) Materialize(snapshot Axis) (Axis, error) {
	switch s.Kind {
	case SelectAll:
		return snapshot.Clone(), nil
	case SelectLabels:
		return NewSubset(snapshot.Name, s.Labels)
	case SelectRange:
		if s.End < s.Start {
			return Axis{}, status.ErrBadSelection.WrapMessage("axis %q: range [%d, %d] is inverted", snapshot.Name, s.Start, s.End)
		}
		var labels []int64
		for _, l := range snapshot.Labels {
			if l >= s.Start && l <= s.End {
				labels = append(labels, l)
			}
		}
		return Axis{Name: snapshot.Name, Labels: labels}, nil
	default:
		return Axis{}, status.ErrBadSelection.WrapMessage("axis %q: unknown selection kind %d", snapshot.Name, s.Kind)
	}
}
