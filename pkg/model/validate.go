package model

import (
	"github.com/quiltlabs/quilt/pkg/errors"
)

var (
	// ErrInvalidName indicates a name unusable as an archive path element
	ErrInvalidName = errors.New("invalid name")
)

// ValidateName checks that a quilt, axis or tag name can serve as a
// path element in the archive layout.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidName.WrapMessage("name is empty")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return ErrInvalidName.WrapMessage("name %q contains %q", name, r)
		}
	}
	return nil
}

// Validate a quilt descriptor
func (q QuiltDescriptor) Validate() error {
	if err := ValidateName(q.Name); err != nil {
		return err
	}
	if len(q.Axes) == 0 {
		return ErrInvalidName.WrapMessage("quilt %q has no axes", q.Name)
	}
	seen := make(map[string]struct{}, len(q.Axes))
	for _, axis := range q.Axes {
		if err := ValidateName(axis); err != nil {
			return err
		}
		if _, dup := seen[axis]; dup {
			return ErrInvalidName.WrapMessage("quilt %q repeats axis %q", q.Name, axis)
		}
		seen[axis] = struct{}{}
	}
	return nil
}
