package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

var (
	// ErrFileNotFound is returned when the bundle file does not exist.
	ErrFileNotFound = errors.New("bundle file does not exist")

	// ErrCorruptBundle is returned when the zip container cannot be read.
	ErrCorruptBundle = errors.New("corrupt bundle container")
)

// ZipBundle reads a zipped DragonBones export bundle.
type ZipBundle struct {
	*BaseArchive
}

// NewZipBundle creates a new ZipBundle.
func NewZipBundle(filePath string, log logger.Logger) *ZipBundle {
	return &ZipBundle{
		BaseArchive: NewBaseArchive(filePath, log),
	}
}

// Initialize reads the zip container and inflates every entry into memory.
func (z *ZipBundle) Initialize() error {
	z.Logger.LogInfo("ZipBundle: Started initialization of bundle: " + z.FileName)

	if _, err := os.Stat(z.FilePath); err != nil {
		z.Logger.LogError("ZipBundle: File does not exist at: " + z.FilePath)
		return ErrFileNotFound
	}

	reader, err := zip.OpenReader(z.FilePath)
	if err != nil {
		z.Logger.LogError("ZipBundle: Error opening container: " + err.Error())
		return fmt.Errorf("%w: %v", ErrCorruptBundle, err)
	}
	defer reader.Close()

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("failed to open bundle entry %s: %w", entry.Name, err)
		}

		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("failed to inflate bundle entry %s: %w", entry.Name, err)
		}

		// Entries may carry directory prefixes; file lookups use the base name.
		name := path.Base(entry.Name)
		f := NewBaseFile(name, data)
		z.Files = append(z.Files, f)
		z.FileNameRef[name] = f
	}

	z.Logger.LogInfo("ZipBundle: Finished initialization of bundle: " + z.FileName)
	return nil
}
