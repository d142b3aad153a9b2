package pipeline

import "strings"

// RenderTOC renders toc as a flat list, one item per heading in order:
//
//	<ul class="toc"><li class="toc-h1"><a href="#header-1">Intro</a></li></ul>
//
// Entry content is inserted as-is; it is already HTML.
func RenderTOC(toc TableOfContents) string {
	var buf strings.Builder
	buf.WriteString(`<ul class="toc">`)
	for _, e := range toc {
		buf.WriteString(`<li class="toc-`)
		buf.WriteString(e.Tag())
		buf.WriteString(`"><a href="#`)
		buf.WriteString(e.ID)
		buf.WriteString(`">`)
		buf.WriteString(e.Content)
		buf.WriteString(`</a></li>`)
	}
	buf.WriteString(`</ul>`)
	return buf.String()
}
