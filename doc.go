// Package md2html converts markdown lecture notes into static HTML pages and
// an index page listing them.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Name:     "lecture/intro.md",
//	    Markdown: "# Intro\n\n[TOC]\n\n## Goals\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("lecture/intro.html", result.HTML, 0644)
//
// # Conversion Pipeline
//
// Each document goes through these stages:
//
//  1. Source normalization (UTF-8 BOM, line endings)
//  2. Parsing into a goldmark AST
//  3. Heading indexing: every heading gets id="header-N", numbered from 1 in
//     document order, and a table of contents entry
//  4. Rendering to HTML, with fenced code highlighted by chroma
//  5. The first [TOC] in the body is replaced with a flat list of links
//  6. The first [BODY], [TITLE] and [UPDATE] of the page template are filled
//
// Placeholders are located in the template before any value is inserted, so
// text in the document that looks like a placeholder is never substituted.
// Only the first occurrence of each placeholder is replaced.
//
// # Index Page
//
// The index template's first [LIST] is replaced with one list item per page,
// in the order given:
//
//	entries = append(entries, conv.IndexEntry(srcPath, relLink, result.GeneratedAt))
//	os.WriteFile("index.html", conv.RenderIndex(entries), 0644)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithPageTemplate("minimal"),
//	    md2html.WithTitlePrefix("Notes: "),
//	    md2html.WithTimestampFormat("european"),
//	    md2html.WithHighlightStyle("monokai"),
//	)
//
// # Custom Templates
//
// Templates are given by embedded set name ("default", "minimal") or by
// file path. WithAssetPath adds a directory searched for named sets first:
//
//	assets/
//	└── templates/
//	    └── course/
//	        ├── page.html
//	        └── index.html
//
// A Converter is safe for concurrent use. Each call to Convert parses its
// own AST, so heading numbering never leaks between documents.
package md2html
