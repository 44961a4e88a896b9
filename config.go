// FILE: configfile/config.go
package configfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ConfigFile owns the root section of a configuration tree, the name of the
// backing file, and a current-section cursor for relative path resolution.
//
// A ConfigFile is not safe for concurrent use; callers sharing one must
// serialize access.
type ConfigFile struct {
	fileName string
	root     *Section
	current  *Section
}

// New creates an empty configuration with no backing file.
func New() *ConfigFile {
	root := NewSection()
	return &ConfigFile{root: root, current: root}
}

// Open reads the configuration file with the given name.
func Open(fileName string) (*ConfigFile, error) {
	c := New()
	c.fileName = fileName
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenWithArgs reads the configuration file and then merges "-tag value"
// overrides from args into the root section. It returns the unconsumed
// arguments in their original relative order.
func OpenWithArgs(fileName string, args []string) (*ConfigFile, []string, error) {
	c, err := Open(fileName)
	if err != nil {
		return nil, nil, err
	}
	residual := c.MergeCommandline(args)
	return c, residual, nil
}

// NewFromStream reads a configuration tree previously written by
// WriteToStream from an ordered byte stream. The result has no backing file
// until SaveAs is called.
func NewFromStream(r io.Reader) (*ConfigFile, error) {
	root, err := ReadStream(r)
	if err != nil {
		return nil, err
	}
	return &ConfigFile{root: root, current: root}, nil
}

// FileName returns the name of the backing file, if any.
func (c *ConfigFile) FileName() string {
	return c.fileName
}

// RootSection returns the root section of the tree.
func (c *ConfigFile) RootSection() *Section {
	return c.root
}

// Load replaces the in-memory tree with a freshly parsed copy of the
// backing file, discarding unsaved edits. On a parse failure the load must
// be treated as failed; the prior in-memory state should be considered
// unusable rather than retried.
func (c *ConfigFile) Load() error {
	file, err := os.Open(c.fileName)
	if err != nil {
		return fmt.Errorf("failed to open config file '%s': %w", c.fileName, err)
	}
	defer file.Close()

	root, err := Parse(file, c.fileName)
	if err != nil {
		return err
	}
	c.root = root
	c.current = root
	return nil
}

// Save writes the tree back to the backing file if anything has been edited
// since the last save; otherwise it is a no-op. The write goes through a
// temporary file renamed into place, and edit flags are cleared on success.
func (c *ConfigFile) Save() error {
	if !c.root.IsEdited() {
		return nil
	}
	return c.SaveAs(c.fileName)
}

// SaveAs writes the tree to the given file unconditionally and makes it the
// backing file.
func (c *ConfigFile) SaveAs(fileName string) error {
	if fileName == "" {
		return fmt.Errorf("no config file name set")
	}

	var buf bytes.Buffer
	if err := Write(&buf, c.root); err != nil {
		return fmt.Errorf("failed to serialize config data: %w", err)
	}
	if err := atomicWriteFile(fileName, buf.Bytes()); err != nil {
		return err
	}

	c.fileName = fileName
	c.root.ClearEditFlag()
	return nil
}

// Merge loads the given file into a scratch tree and overlays it onto this
// configuration, overwriting overlapping tags and adding new sections and
// tags. Entries absent from the merge file are left untouched.
func (c *ConfigFile) Merge(mergeFileName string) error {
	file, err := os.Open(mergeFileName)
	if err != nil {
		return fmt.Errorf("failed to open merge file '%s': %w", mergeFileName, err)
	}
	defer file.Close()

	source, err := Parse(file, mergeFileName)
	if err != nil {
		return err
	}
	MergeSection(c.root, source)
	return nil
}

// MergeCommandline merges "-tag value" overrides from args into the current
// section and returns the unconsumed arguments.
func (c *ConfigFile) MergeCommandline(args []string) []string {
	return MergeCommandline(c.current, args)
}

// CurrentSection returns the section the cursor points at.
func (c *ConfigFile) CurrentSection() *Section {
	return c.current
}

// CurrentPath returns the absolute path of the current section.
func (c *ConfigFile) CurrentPath() string {
	return c.current.Path()
}

// SetCurrentSection moves the cursor to the section reached by the given
// path, resolved relative to the current section. Resolution is strict; the
// cursor is unchanged on failure.
func (c *ConfigFile) SetCurrentSection(path string) error {
	target, err := c.current.Resolve(path)
	if err != nil {
		return err
	}
	c.current = target
	return nil
}

// GetSection returns the section reached by the given path relative to the
// current section, creating missing sections along the way.
func (c *ConfigFile) GetSection(path string) *Section {
	return c.current.ResolveOrCreate(path)
}

// List writes the names of all subsections (with a trailing '/') and tags
// of the current section to w.
func (c *ConfigFile) List(w io.Writer) error {
	for _, sub := range c.current.Subsections() {
		if _, err := fmt.Fprintf(w, "%s/\n", sub.Name()); err != nil {
			return err
		}
	}
	for _, tv := range c.current.Tags() {
		if _, err := fmt.Fprintln(w, tv.Tag); err != nil {
			return err
		}
	}
	return nil
}

// WriteToStream serializes the whole tree onto an ordered byte stream so
// that a cooperating process can reconstruct it with NewFromStream or
// ReadFromStream without a shared filesystem.
func (c *ConfigFile) WriteToStream(w io.Writer) error {
	return WriteStream(w, c.root)
}

// ReadFromStream replaces the tree with one read from an ordered byte
// stream previously written by WriteToStream. The cursor is reset to the
// root section. The backing file name is kept, so a later Save writes the
// received tree there.
func (c *ConfigFile) ReadFromStream(r io.Reader) error {
	root, err := ReadStream(r)
	if err != nil {
		return err
	}
	c.root = root
	c.current = root
	return nil
}

// atomicWriteFile writes data to path through a temporary file in the same
// directory, synced and renamed into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
