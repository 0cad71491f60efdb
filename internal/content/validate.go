package content

import (
	"fmt"
	"strings"
)

// ValidationError collects every problem found while loading content.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "invalid content: " + e.Issues[0]
	}
	return fmt.Sprintf("invalid content (%d issues):\n  %s", len(e.Issues), strings.Join(e.Issues, "\n  "))
}

type issues []string

func (is *issues) addf(format string, args ...any) {
	*is = append(*is, fmt.Sprintf(format, args...))
}

func (is issues) err() error {
	if len(is) == 0 {
		return nil
	}
	return &ValidationError{Issues: is}
}

// ids tracks identifiers already seen within one collection.
type ids map[string]bool

func (seen ids) check(is *issues, collection, id string) {
	if id == "" {
		is.addf("%s: record without id", collection)
		return
	}
	if seen[id] {
		is.addf("%s: duplicate id %q", collection, id)
	}
	seen[id] = true
}

func required(is *issues, collection, id, field, value string) {
	if strings.TrimSpace(value) == "" {
		is.addf("%s %q: missing %s", collection, id, field)
	}
}

func (s *Store) validate(is *issues) {
	seen := ids{}
	for i := range s.episodes {
		e := &s.episodes[i]
		seen.check(is, "episodes", e.ID)
		required(is, "episodes", e.ID, "title", e.Title)
		if e.Date != "" {
			t, err := parseDate(e.Date)
			if err != nil {
				is.addf("episodes %q: bad date %q", e.ID, e.Date)
			} else {
				e.published = t
				if e.Year == 0 {
					e.Year = t.Year()
				}
			}
		}
	}

	seen = ids{}
	for _, c := range s.credits {
		seen.check(is, "credits", c.ID)
		required(is, "credits", c.ID, "title", c.Title)
	}

	seen = ids{}
	for _, l := range s.ladders {
		seen.check(is, "ladders", l.ID)
		required(is, "ladders", l.ID, "name", l.Name)
		if l.Score < 1 || l.Score > 10 {
			is.addf("ladders %q: score %d outside 1..10", l.ID, l.Score)
		}
		if !validContentTypes[l.ContentType] {
			is.addf("ladders %q: unknown content_type %q", l.ID, l.ContentType)
		}
	}

	seen = ids{}
	for _, h := range s.home {
		seen.check(is, "home", h.ID)
	}
	for _, h := range s.home {
		if h.LinkedID != "" && !seen[h.LinkedID] {
			is.addf("home %q: linked_id %q does not exist", h.ID, h.LinkedID)
		}
	}

	for i, c := range s.cards {
		if c.Title == "" {
			is.addf("cards[%d]: missing title", i)
		}
	}

	s.review.validate(is)
}

func (r Review) validate(is *issues) {
	seen := ids{}
	for _, m := range r.Modules {
		seen.check(is, "review.modules", m.ID)
		required(is, "review.modules", m.ID, "title", m.Title)
		for _, res := range m.Results {
			switch res.Type {
			case ResultPositive, ResultMixed, ResultNegative:
			default:
				is.addf("review.modules %q: unknown result type %q", m.ID, res.Type)
			}
		}
	}
	seen = ids{}
	for _, i := range r.Issues {
		seen.check(is, "review.issues", i.ID)
		required(is, "review.issues", i.ID, "title", i.Title)
	}
	seen = ids{}
	for _, k := range r.Keywords {
		seen.check(is, "review.keywords", k.ID)
		required(is, "review.keywords", k.ID, "keyword", k.Keyword)
	}
	seen = ids{}
	for _, s := range r.Strategies {
		seen.check(is, "review.strategies", s.ID)
		required(is, "review.strategies", s.ID, "title", s.Title)
		if !validThemes[s.Theme] {
			is.addf("review.strategies %q: unknown theme %q", s.ID, s.Theme)
		}
	}
}
