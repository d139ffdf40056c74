package model

import (
	"fmt"
	"strings"
)

// Archive layout:
//
//	quilts/{quilt}.yaml
//	axes/{axis}.yaml
//	commits/{quilt}/{commit}.yaml
//	tags/{quilt}/{tag}.yaml
//	patches/{quilt}/{commit}/{index}.qlt
//
// The tag entry is always written last within a commit: it is the
// commit point, so a reader never sees a tagged commit whose other
// records are missing.

func GetArchivePathToQuilt(quilt string) string {
	return fmt.Sprint("quilts/", quilt, ".yaml")
}

func GetArchivePathPrefixToQuilts() string {
	return "quilts/"
}

func GetArchivePathToAxis(axis string) string {
	return fmt.Sprint("axes/", axis, ".yaml")
}

func GetArchivePathPrefixToAxes() string {
	return "axes/"
}

func GetArchivePathToCommit(quilt, commitID string) string {
	return fmt.Sprint("commits/", quilt, "/", commitID, ".yaml")
}

func GetArchivePathPrefixToCommits(quilt string) string {
	return fmt.Sprint("commits/", quilt, "/")
}

func GetArchivePathToTag(quilt, tag string) string {
	return fmt.Sprint("tags/", quilt, "/", tag, ".yaml")
}

func GetArchivePathPrefixToTags(quilt string) string {
	return fmt.Sprint("tags/", quilt, "/")
}

func GetArchivePathToPatch(quilt, commitID string, index int) string {
	return fmt.Sprint("patches/", quilt, "/", commitID, "/", index, ".qlt")
}

func GetArchivePathPrefixToPatches(quilt, commitID string) string {
	return fmt.Sprint("patches/", quilt, "/", commitID, "/")
}

// NameFromArchivePath recovers the object name from a descriptor path
// produced by the helpers above: the final path element minus its
// extension.
func NameFromArchivePath(archivePath string) string {
	base := archivePath
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}
