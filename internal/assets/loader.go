package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// AssetLoader defines the contract for loading template sets.
// Implementations may load from embedded assets, filesystem, etc.
type AssetLoader interface {
	// LoadTemplateSet loads the page and index templates of a named set.
	// Returns ErrTemplateSetNotFound if the set doesn't exist.
	// Returns ErrIncompleteTemplateSet if one of the two templates is missing.
	// Returns ErrInvalidSetName if the name is not a plain identifier.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds a page template and the matching index template.
type TemplateSet struct {
	Name  string // Identifier (set name)
	Page  string // Page template HTML content
	Index string // Index template HTML content
}

// Template returns the content of the given kind.
func (ts *TemplateSet) Template(kind TemplateKind) string {
	if kind == KindIndex {
		return ts.Index
	}
	return ts.Page
}

func (ts *TemplateSet) set(kind TemplateKind, content string) {
	if kind == KindIndex {
		ts.Index = content
		return
	}
	ts.Page = content
}

// TemplateKind distinguishes page templates from index templates.
type TemplateKind int

const (
	KindPage TemplateKind = iota
	KindIndex
)

// String returns the kind name used in logs.
func (k TemplateKind) String() string {
	if k == KindIndex {
		return "index"
	}
	return "page"
}

// Filename returns the file name of this kind inside a template set directory.
func (k TemplateKind) Filename() string {
	return k.String() + ".html"
}

// Placeholders returns the placeholders a template of this kind is expected to contain.
func (k TemplateKind) Placeholders() []string {
	if k == KindIndex {
		return []string{pipeline.PlaceholderList}
	}
	return []string{pipeline.PlaceholderBody, pipeline.PlaceholderTitle, pipeline.PlaceholderUpdate}
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// setKinds lists the templates every set directory provides.
var setKinds = [...]TemplateKind{KindPage, KindIndex}

// assembleSet reads each kind of a set through read. A missing file must
// match fs.ErrNotExist: all missing is ErrTemplateSetNotFound, some missing
// is ErrIncompleteTemplateSet.
func assembleSet(name string, read func(TemplateKind) ([]byte, error)) (*TemplateSet, error) {
	ts := &TemplateSet{Name: name}
	var missing []string
	for _, kind := range setKinds {
		data, err := read(kind)
		if errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, kind.Filename())
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateRead, name, kind.Filename(), err)
		}
		ts.set(kind, string(data))
	}

	switch len(missing) {
	case 0:
		return ts, nil
	case len(setKinds):
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	default:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, strings.Join(missing, ", "))
	}
}
