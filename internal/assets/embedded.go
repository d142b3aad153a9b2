package assets

import (
	"embed"
	"errors"
	"io/fs"
	"path"
	"sort"
)

//go:embed templates
var templates embed.FS

// EmbeddedLoader serves the template sets compiled into the binary.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplateSet returns the embedded set called name.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateSetName(name); err != nil {
		return nil, err
	}
	return assembleSet(name, func(kind TemplateKind) ([]byte, error) {
		return templates.ReadFile(path.Join("templates", name, kind.Filename()))
	})
}

// Names lists the embedded template sets, sorted.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil
	}
	return setDirNames(entries)
}

// setDirNames keeps the directory entries that are valid set names.
func setDirNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && ValidateSetName(entry.Name()) == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// IsNotFound reports whether err is a lookup miss rather than a validation
// or read failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrTemplateSetNotFound)
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
