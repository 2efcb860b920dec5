// Package archive provides reading of DragonBones export bundles.
// A bundle is a container holding the skeleton JSON, the texture atlas
// JSON, and the atlas page images.
package archive

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kverran/dragonbones-go/pkg/infrastructure/logger"
)

// Archive defines the interface for reading bundle files.
type Archive interface {
	// Initialize reads and parses the bundle file.
	// Returns an error if initialization fails.
	Initialize() error

	// GetFilePath returns the full path to the bundle file.
	GetFilePath() string

	// GetFileName returns just the filename of the bundle.
	GetFileName() string

	// GetFile returns a file by name, or nil if not found.
	GetFile(name string) File

	// GetFileByIndex returns a file by index, or nil if out of range.
	GetFileByIndex(index int) File

	// GetFirstBySuffix returns the first file whose name ends with the
	// given suffix (case-insensitive), or nil if none matches.
	GetFirstBySuffix(suffix string) File

	// GetAllFiles returns all files in the bundle.
	GetAllFiles() []File

	// WriteAllFiles writes all bundle files to the specified folder.
	WriteAllFiles(folder string) error
}

// BaseArchive provides common functionality for bundle implementations.
type BaseArchive struct {
	FilePath    string
	FileName    string
	Files       []File
	FileNameRef map[string]File
	Logger      logger.Logger
}

// NewBaseArchive creates a new BaseArchive with the given parameters.
func NewBaseArchive(filePath string, log logger.Logger) *BaseArchive {
	return &BaseArchive{
		FilePath:    filePath,
		FileName:    filepath.Base(filePath),
		Files:       make([]File, 0),
		FileNameRef: make(map[string]File),
		Logger:      log,
	}
}

// GetFilePath returns the full path to the bundle file.
func (b *BaseArchive) GetFilePath() string {
	return b.FilePath
}

// GetFileName returns just the filename of the bundle.
func (b *BaseArchive) GetFileName() string {
	return b.FileName
}

// GetFile returns a file by name, or nil if not found.
func (b *BaseArchive) GetFile(name string) File {
	if f, ok := b.FileNameRef[name]; ok {
		return f
	}
	return nil
}

// GetFileByIndex returns a file by index, or nil if out of range.
func (b *BaseArchive) GetFileByIndex(index int) File {
	if index < 0 || index >= len(b.Files) {
		return nil
	}
	return b.Files[index]
}

// GetFirstBySuffix returns the first file whose name ends with the given
// suffix (case-insensitive), or nil if none matches.
func (b *BaseArchive) GetFirstBySuffix(suffix string) File {
	suffix = strings.ToLower(suffix)
	for _, f := range b.Files {
		if strings.HasSuffix(strings.ToLower(f.GetName()), suffix) {
			return f
		}
	}
	return nil
}

// GetAllFiles returns all files in the bundle.
func (b *BaseArchive) GetAllFiles() []File {
	return b.Files
}

// WriteAllFiles writes all bundle files to the specified folder.
func (b *BaseArchive) WriteAllFiles(folder string) error {
	for _, f := range b.Files {
		filePath := filepath.Join(folder, f.GetName())
		dir := filepath.Dir(filePath)

		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}

		if err := os.WriteFile(filePath, f.GetBytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}
