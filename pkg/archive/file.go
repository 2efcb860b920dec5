package archive

// File represents a single file within a bundle.
type File interface {
	// GetName returns the name of the file.
	GetName() string
	// SetName sets the name of the file.
	SetName(name string)
	// GetSize returns the uncompressed size of the file in bytes.
	GetSize() uint32
	// GetBytes returns the uncompressed bytes of the file.
	GetBytes() []byte
}

// BaseFile provides a base implementation of the File interface.
type BaseFile struct {
	Name  string
	Size  uint32
	Bytes []byte
}

// GetName returns the name of the file.
func (f *BaseFile) GetName() string {
	return f.Name
}

// SetName sets the name of the file.
func (f *BaseFile) SetName(name string) {
	f.Name = name
}

// GetSize returns the uncompressed size of the file in bytes.
func (f *BaseFile) GetSize() uint32 {
	return f.Size
}

// GetBytes returns the uncompressed bytes of the file.
func (f *BaseFile) GetBytes() []byte {
	return f.Bytes
}

// NewBaseFile creates a new BaseFile with the given name and contents.
func NewBaseFile(name string, data []byte) *BaseFile {
	return &BaseFile{
		Name:  name,
		Size:  uint32(len(data)),
		Bytes: data,
	}
}
