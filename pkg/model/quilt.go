package model

import (
	"time"
)

// DefaultTag is the tag a commit or fetch targets when none is named
const DefaultTag = "latest"

// QuiltDescriptor describes a named dataset: its fixed, ordered axis
// list defines its dimensionality for life.
type QuiltDescriptor struct {
	Name      string    `json:"name" yaml:"name"`
	Axes      []string  `json:"axes" yaml:"axes"`
	Timestamp time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	_         struct{}
}

// NewQuiltDescriptor builds a quilt descriptor stamped with the current time
func NewQuiltDescriptor(name string, axes []string) QuiltDescriptor {
	return QuiltDescriptor{
		Name:      name,
		Axes:      append([]string(nil), axes...),
		Timestamp: GetTimeStamp(),
	}
}

// GetTimeStamp is the wall clock in UTC, the time base of all descriptors
func GetTimeStamp() time.Time {
	return time.Now().UTC()
}
