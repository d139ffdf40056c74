package model

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
)

// CommitDescriptor records one immutable commit: a unit of patches
// applied on top of a parent. Parent is empty for the root commit of a
// quilt. Commits form a singly linked chain per lineage; branching
// happens through tags, never through multi-parent merges.
type CommitDescriptor struct {
	ID         string    `json:"id" yaml:"id"`
	Parent     string    `json:"parent,omitempty" yaml:"parent,omitempty"`
	Message    string    `json:"message,omitempty" yaml:"message,omitempty"`
	PatchCount int       `json:"patches" yaml:"patches"`
	Timestamp  time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	_          struct{}
}

// TagDescriptor is a named movable pointer onto a commit
type TagDescriptor struct {
	Name      string    `json:"name" yaml:"name"`
	CommitID  string    `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	_         struct{}
}

// NewCommitID generates a sortable, time-prefixed commit ID
func NewCommitID() string {
	id, err := ksuid.NewRandom()
	if err != nil {
		panic(fmt.Sprintf("cannot generate random ksuid: %v", err))
	}
	return id.String()
}
