package archive

import (
	"os"

	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

// GetArchive returns the Archive implementation matching the bundle's
// container format. Missing files and unrecognized formats yield a
// NullArchive rather than an error; the caller sees the failure when it
// calls Initialize.
func GetArchive(filePath string, log logger.Logger) Archive {
	if _, err := os.Stat(filePath); err != nil {
		return NewNullArchive(filePath, log)
	}

	switch getArchiveTypeFromFilename(filePath) {
	case TypeZip:
		return NewZipBundle(filePath, log)
	default:
		return NewNullArchive(filePath, log)
	}
}
