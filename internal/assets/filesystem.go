package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader reads template sets from {root}/templates/{name}/.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader opens root as an asset directory.
// Returns ErrInvalidBasePath unless root is a readable directory.
func NewFilesystemLoader(root string) (*FilesystemLoader, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{root: abs}, nil
}

// LoadTemplateSet reads page.html and index.html of the named set.
func (f *FilesystemLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateSetName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(f.setsDir(), name)
	if err := f.contain(dir); err != nil {
		return nil, err
	}

	return assembleSet(name, func(kind TemplateKind) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, kind.Filename())) // #nosec G304 -- dir contained above
	})
}

// Names lists the set directories present on disk, sorted.
func (f *FilesystemLoader) Names() []string {
	entries, err := os.ReadDir(f.setsDir())
	if err != nil {
		return nil
	}
	return setDirNames(entries)
}

func (f *FilesystemLoader) setsDir() string {
	return filepath.Join(f.root, "templates")
}

// contain returns ErrPathTraversal when dir, after symlink resolution,
// lies outside the asset directory. A dir that does not exist is checked
// as written.
func (f *FilesystemLoader) contain(dir string) error {
	resolved := dir
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		resolved = real
	}
	if !strings.HasPrefix(resolved, f.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, dir)
	}
	return nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
