package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var bundled embed.FS

// Kinds accepted in the top-level `kind` field of a content document.
const (
	KindEpisodes = "episodes"
	KindCredits  = "credits"
	KindLadders  = "ladders"
	KindCards    = "cards"
	KindHome     = "home"
	KindReview   = "review"
	KindMemos    = "memos"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// document is the envelope every content file shares. List kinds put their
// records under items; review and memos put a single object under body.
type document struct {
	Kind  string    `yaml:"kind"`
	Items yaml.Node `yaml:"items"`
	Body  yaml.Node `yaml:"body"`
}

// Bundled loads the content compiled into the binary.
func Bundled() (*Store, error) {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir loads content from dir, or the bundled content when dir is empty.
func LoadDir(dir string) (*Store, error) {
	if dir == "" {
		return Bundled()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load discovers every YAML document under fsys, decodes it by kind and
// validates the result. All validation problems are reported together as a
// *ValidationError.
func Load(fsys fs.FS) (*Store, error) {
	files, err := discover(fsys)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no content documents found")
	}

	s := &Store{}
	var is issues
	seenSingle := map[string]string{}

	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var doc document
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			is.addf("%s: %v", name, err)
			continue
		}
		if prev, ok := seenSingle[doc.Kind]; ok {
			is.addf("%s: %s already defined in %s", name, doc.Kind, prev)
			continue
		}
		if err := s.decode(doc); err != nil {
			is.addf("%s: %v", name, err)
			continue
		}
		if doc.Kind == KindReview || doc.Kind == KindMemos {
			seenSingle[doc.Kind] = name
		}
	}

	s.validate(&is)
	if err := is.err(); err != nil {
		return nil, err
	}
	if err := newMarkdown().renderBodies(s); err != nil {
		return nil, err
	}
	return s, nil
}

func discover(fsys fs.FS) ([]string, error) {
	var files []string
	for _, pattern := range []string{"**/*.yaml", "**/*.yml"} {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("discovering content: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Slice(files, func(i, j int) bool {
		if di, dj := path.Dir(files[i]), path.Dir(files[j]); di != dj {
			return di < dj
		}
		return files[i] < files[j]
	})
	return files, nil
}

func (s *Store) decode(doc document) error {
	switch doc.Kind {
	case KindEpisodes:
		return decodeItems(doc, &s.episodes)
	case KindCredits:
		return decodeItems(doc, &s.credits)
	case KindLadders:
		return decodeItems(doc, &s.ladders)
	case KindCards:
		return decodeItems(doc, &s.cards)
	case KindHome:
		return decodeItems(doc, &s.home)
	case KindReview:
		return decodeBody(doc, &s.review)
	case KindMemos:
		return decodeBody(doc, &s.memos)
	case "":
		return fmt.Errorf("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", doc.Kind)
	}
}

func decodeItems[T any](doc document, into *[]T) error {
	if doc.Items.Kind == 0 {
		return fmt.Errorf("%s: missing items", doc.Kind)
	}
	var items []T
	if err := doc.Items.Decode(&items); err != nil {
		return fmt.Errorf("%s: %w", doc.Kind, err)
	}
	*into = append(*into, items...)
	return nil
}

func decodeBody[T any](doc document, into *T) error {
	if doc.Body.Kind == 0 {
		return fmt.Errorf("%s: missing body", doc.Kind)
	}
	if err := doc.Body.Decode(into); err != nil {
		return fmt.Errorf("%s: %w", doc.Kind, err)
	}
	return nil
}
