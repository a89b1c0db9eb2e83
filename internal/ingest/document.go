package ingest

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Document is one parsed source file.
type Document struct {
	Path     string // slash-separated and starting with the docs directory, e.g. docs/chapter-1/intro.md
	Number   int    // 1-based position in the sorted file list
	Title    string
	Slug     string
	Chapter  string
	Body     string // plain text extracted from the markdown
	Position int    // sidebar_position from frontmatter, 0 when absent
}

type frontmatter struct {
	Title           string `yaml:"title"`
	Slug            string `yaml:"slug"`
	SidebarPosition int    `yaml:"sidebar_position"`
}

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
	mdxImport  = regexp.MustCompile(`(?m)^(import|export)\s.*$`)
)

// ParseDocument parses frontmatter and extracts plain text from a markdown file.
// relPath must start with the docs directory name.
func ParseDocument(relPath string, number int, src []byte) (Document, error) {
	fm, body, err := splitFrontmatter(src)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", relPath, err)
	}
	if strings.HasSuffix(relPath, ".mdx") {
		body = mdxImport.ReplaceAll(body, nil)
	}

	doc := Document{
		Path:     relPath,
		Number:   number,
		Title:    fm.Title,
		Slug:     slugFromPath(relPath),
		Chapter:  chapterFromPath(relPath),
		Body:     extractText(body),
		Position: fm.SidebarPosition,
	}
	if fm.Slug != "" {
		doc.Slug = strings.Trim(fm.Slug, "/")
	}
	if doc.Title == "" {
		doc.Title = titleFromPath(relPath)
	}
	return doc, nil
}

// splitFrontmatter separates a leading "---" YAML block from the body.
func splitFrontmatter(src []byte) (frontmatter, []byte, error) {
	var fm frontmatter
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(src, []byte("---\n")) && !bytes.HasPrefix(src, []byte("---\r\n")) {
		return fm, src, nil
	}

	rest := src[bytes.IndexByte(src, '\n')+1:]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return fm, src, nil
	}
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return fm, nil, fmt.Errorf("frontmatter: %w", err)
	}

	body := rest[end+len("\n---"):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return fm, body, nil
}

// extractText walks the markdown AST and keeps prose: headings, paragraphs and
// list items. Code blocks, raw HTML and images are dropped.
func extractText(src []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock, ast.KindRawHTML, ast.KindImage:
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph, ast.KindHeading, ast.KindTextBlock:
			if !entering {
				b.WriteString("\n\n")
			}
			return ast.WalkContinue, nil
		}
		if !entering {
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.URL(src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return normalizeWhitespace(b.String())
}

func normalizeWhitespace(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = newlineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}

// slugFromPath maps docs/chapter-1/sensors.md to chapter-1-sensors.
func slugFromPath(relPath string) string {
	p := strings.TrimSuffix(stripDocsRoot(relPath), path.Ext(relPath))
	return strings.ToLower(strings.ReplaceAll(p, "/", "-"))
}

// chapterFromPath returns the first path segment under the docs root without
// extension: docs/intro.md and docs/intro/x.md are both "intro".
func chapterFromPath(relPath string) string {
	p := stripDocsRoot(relPath)
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return strings.ToLower(strings.TrimSuffix(p, path.Ext(p)))
}

func stripDocsRoot(relPath string) string {
	if i := strings.IndexByte(relPath, '/'); i >= 0 {
		return relPath[i+1:]
	}
	return relPath
}

// titleFromPath title-cases the file name, or the parent directory for index files.
func titleFromPath(relPath string) string {
	name := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
	if name == "index" {
		name = path.Base(path.Dir(relPath))
	}
	words := strings.Split(name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
