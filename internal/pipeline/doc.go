// Package pipeline implements the markdown-to-page conversion stages.
//
// A lecture note goes through these stages, each a separate function so
// they can be tested and reused on their own:
//   - Source preprocessing (BOM removal, line ending normalization)
//   - Parsing into a goldmark AST (Engine.Parse)
//   - Heading indexing: sequential header-N ids and the table of contents
//   - Rendering the annotated AST to HTML (Engine.Render)
//   - TOC insertion at the first [TOC] marker
//   - Page assembly: first [BODY], [TITLE] and [UPDATE] of the page template
//
// Index pages are built from IndexEntry values with AssembleIndex.
// File discovery, output paths and concurrency live in the caller.
package pipeline
