package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown renders the free-text bodies of content records. Bodies are
// authored alongside the code, so raw HTML is passed through.
type markdown struct {
	md goldmark.Markdown
}

func newMarkdown() *markdown {
	return &markdown{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)}
}

func (m *markdown) render(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// renderBodies fills the *HTML fields of every record in s.
func (m *markdown) renderBodies(s *Store) error {
	var err error
	for i := range s.episodes {
		if s.episodes[i].DescriptionHTML, err = m.render(s.episodes[i].Description); err != nil {
			return fmt.Errorf("episode %s: %w", s.episodes[i].ID, err)
		}
	}
	for i := range s.credits {
		if s.credits[i].DescriptionHTML, err = m.render(s.credits[i].Description); err != nil {
			return fmt.Errorf("credit %s: %w", s.credits[i].ID, err)
		}
	}
	for i := range s.ladders {
		c := &s.ladders[i].Content
		if c.DescriptionHTML, err = m.render(c.Description); err != nil {
			return fmt.Errorf("ladder %s: %w", s.ladders[i].ID, err)
		}
		for j := range c.Projects {
			if c.Projects[j].DescriptionHTML, err = m.render(c.Projects[j].Description); err != nil {
				return fmt.Errorf("ladder %s project %s: %w", s.ladders[i].ID, c.Projects[j].ID, err)
			}
		}
	}
	for i := range s.review.Keywords {
		k := &s.review.Keywords[i]
		for j := range k.Content {
			if k.Content[j].TextHTML, err = m.render(k.Content[j].Text); err != nil {
				return fmt.Errorf("keyword %s: %w", k.ID, err)
			}
		}
	}
	return nil
}
