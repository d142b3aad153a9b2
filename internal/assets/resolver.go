package assets

import (
	"fmt"
	"os"
	"slices"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// AssetResolver looks template sets up in an optional asset directory and
// then in the embedded sets. Only a miss in the asset directory falls
// through; an invalid name, an incomplete set or a read error is returned.
type AssetResolver struct {
	loaders []AssetLoader // search order, embedded last
}

// NewAssetResolver returns a resolver over the embedded sets, preceded by
// assetPath when it is non-empty. An unusable assetPath is an error.
func NewAssetResolver(assetPath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if assetPath != "" {
		custom, err := NewFilesystemLoader(assetPath)
		if err != nil {
			return nil, err
		}
		r.loaders = append(r.loaders, custom)
	}
	r.loaders = append(r.loaders, NewEmbeddedLoader())
	return r, nil
}

// LoadTemplateSet returns the first set called name in search order.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	var err error
	for _, l := range r.loaders {
		var ts *TemplateSet
		if ts, err = l.LoadTemplateSet(name); err == nil || !IsNotFound(err) {
			return ts, err
		}
	}
	return nil, err
}

// LoadTemplate resolves ref to template content of the given kind.
// A ref that is a path (see fileutil.IsFilePath) is read from disk as is.
// Any other ref is a set name and the set's template of that kind is used.
// An empty ref means DefaultTemplateSetName.
func (r *AssetResolver) LoadTemplate(ref string, kind TemplateKind) (string, error) {
	if ref == "" {
		ref = DefaultTemplateSetName
	}

	if !fileutil.IsFilePath(ref) {
		ts, err := r.LoadTemplateSet(ref)
		if err != nil {
			return "", err
		}
		return ts.Template(kind), nil
	}

	content, err := os.ReadFile(ref) // #nosec G304 -- template path is user-provided
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("%w: %s template %s", ErrTemplateNotFound, kind, ref)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return string(content), nil
}

// Names lists every set name reachable by LoadTemplateSet, sorted, once each.
func (r *AssetResolver) Names() []string {
	var names []string
	for _, l := range r.loaders {
		if lister, ok := l.(interface{ Names() []string }); ok {
			names = append(names, lister.Names()...)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

var _ AssetLoader = (*AssetResolver)(nil)
