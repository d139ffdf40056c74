// Package model defines the serialized descriptors of the catalog
// (quilts, commits, tags) and the archive path layout under which a
// storage backend persists them.
package model
