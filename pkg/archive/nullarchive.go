package archive

import (
	"errors"

	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

// ErrNullArchive is returned when initializing a NullArchive.
var ErrNullArchive = errors.New("null archive cannot be initialized")

// NullArchive is a placeholder for bundle paths that do not exist or have
// an unrecognized container format.
type NullArchive struct {
	*BaseArchive
}

// NewNullArchive creates a new NullArchive.
func NewNullArchive(filePath string, log logger.Logger) *NullArchive {
	return &NullArchive{
		BaseArchive: NewBaseArchive(filePath, log),
	}
}

// Initialize always fails for a NullArchive.
func (n *NullArchive) Initialize() error {
	n.Logger.LogError("NullArchive: Cannot initialize: " + n.FileName)
	return ErrNullArchive
}
