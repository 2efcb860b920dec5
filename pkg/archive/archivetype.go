package archive

import (
	"path/filepath"
	"strings"
)

// Type identifies the container format of a bundle file.
type Type int

const (
	// TypeUnknown is an unrecognized container format.
	TypeUnknown Type = iota
	// TypeZip is a zip container, the format DragonBones editors export.
	TypeZip
)

// String returns the name of the archive type.
func (t Type) String() string {
	switch t {
	case TypeZip:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// getArchiveTypeFromFilename determines the container type from the file
// extension.
func getArchiveTypeFromFilename(filename string) Type {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip", ".dbpack":
		return TypeZip
	default:
		return TypeUnknown
	}
}
