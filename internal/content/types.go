package content

import (
	"html/template"
	"time"
)

// Episode is one entry in the content archive.
type Episode struct {
	ID          string      `yaml:"id" json:"id"`
	Title       string      `yaml:"title" json:"title"`
	Guest       string      `yaml:"guest" json:"guest"`
	Description string      `yaml:"description" json:"description"`
	CoverImage  string      `yaml:"cover_image" json:"cover_image"`
	Link        string      `yaml:"link" json:"link"`
	Date        string      `yaml:"date" json:"date,omitempty"`
	Year        int         `yaml:"year" json:"year,omitempty"`
	ShareRank   *int        `yaml:"share_rank" json:"share_rank,omitempty"`
	AudioURL    string      `yaml:"audio_url" json:"audio_url,omitempty"`
	OutroMusic  *OutroMusic `yaml:"outro_music" json:"outro_music,omitempty"`
	Type        string      `yaml:"type" json:"type,omitempty"`

	DescriptionHTML template.HTML `yaml:"-" json:"-"`

	published time.Time
}

// OutroMusic names the track played at the end of an episode. Title doubles
// as the catalog search term.
type OutroMusic struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url,omitempty"`
}

// Published reports the episode date, if it has one.
func (e Episode) Published() (time.Time, bool) {
	return e.published, !e.published.IsZero()
}

// ArchiveYear is the year tab the episode is listed under.
func (e Episode) ArchiveYear() (int, bool) {
	return e.Year, e.Year != 0
}

// Rank is the per-year share rank, lower is better.
func (e Episode) Rank() (int, bool) {
	if e.ShareRank == nil {
		return 0, false
	}
	return *e.ShareRank, true
}

func (e Episode) clone() Episode {
	if e.ShareRank != nil {
		r := *e.ShareRank
		e.ShareRank = &r
	}
	if e.OutroMusic != nil {
		m := *e.OutroMusic
		e.OutroMusic = &m
	}
	return e
}

// Credit is one production in the producer work log.
type Credit struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Client         string   `yaml:"client" json:"client"`
	Roles          []string `yaml:"roles" json:"roles"`
	Description    string   `yaml:"description" json:"description"`
	Featured       bool     `yaml:"featured" json:"featured"`
	Image          string   `yaml:"image" json:"image"`
	Year           int      `yaml:"year" json:"year,omitempty"`
	DataHighlights string   `yaml:"data_highlights" json:"data_highlights,omitempty"`
	ListenLink     string   `yaml:"listen_link" json:"listen_link,omitempty"`

	DescriptionHTML template.HTML `yaml:"-" json:"-"`
}

func (c Credit) clone() Credit {
	c.Roles = cloneStrings(c.Roles)
	return c
}

// ContentType selects how a side project's detail window is laid out.
type ContentType string

const (
	ContentGalleryVertical ContentType = "gallery-vertical"
	ContentIframe          ContentType = "iframe"
	ContentTabs            ContentType = "tabs"
	ContentStaticGallery   ContentType = "static-gallery"
	ContentSitePreview     ContentType = "site-preview"
	ContentCodeLog         ContentType = "code-log"
	ContentFeedScroll      ContentType = "feed-scroll"
)

var validContentTypes = map[ContentType]bool{
	ContentGalleryVertical: true,
	ContentIframe:          true,
	ContentTabs:            true,
	ContentStaticGallery:   true,
	ContentSitePreview:     true,
	ContentCodeLog:         true,
	ContentFeedScroll:      true,
}

// Ladder is one side project. Its score sets how high the climber goes.
type Ladder struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Score       int           `yaml:"score" json:"score"`
	Position    Placement     `yaml:"position" json:"position"`
	ContentType ContentType   `yaml:"content_type" json:"content_type"`
	Content     LadderContent `yaml:"content" json:"content"`
	Icon        string        `yaml:"icon" json:"icon"`
	Link        string        `yaml:"link" json:"link,omitempty"`
}

// Placement is a percentage position inside the scene.
type Placement struct {
	Left float64 `yaml:"left" json:"left"`
	Top  float64 `yaml:"top" json:"top"`
}

// LadderContent is the body of a side project's detail window.
type LadderContent struct {
	Description  string        `yaml:"description" json:"description"`
	Media        []Media       `yaml:"media" json:"media,omitempty"`
	URL          string        `yaml:"url" json:"url,omitempty"`
	Tabs         []Tab         `yaml:"tabs" json:"tabs,omitempty"`
	PreviewImage string        `yaml:"preview_image" json:"preview_image,omitempty"`
	FeedImages   []string      `yaml:"feed_images" json:"feed_images,omitempty"`
	Projects     []CodeProject `yaml:"projects" json:"projects,omitempty"`
	Links        []Link        `yaml:"links" json:"links,omitempty"`

	DescriptionHTML template.HTML `yaml:"-" json:"-"`
}

// Media is an image or video inside a gallery.
type Media struct {
	Type    string `yaml:"type" json:"type"`
	Src     string `yaml:"src" json:"src"`
	Caption string `yaml:"caption" json:"caption,omitempty"`
}

// Tab is one tab of a tabbed side project.
type Tab struct {
	Name    string `yaml:"name" json:"name"`
	Content string `yaml:"content" json:"content,omitempty"`
	Link    string `yaml:"link" json:"link,omitempty"`
}

// CodeProject is an entry in a code-log side project.
type CodeProject struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Status      string `yaml:"status" json:"status"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image,omitempty"`

	DescriptionHTML template.HTML `yaml:"-" json:"-"`
}

// Link is a titled external URL.
type Link struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

func (l Ladder) clone() Ladder {
	c := l.Content
	c.Media = append([]Media(nil), c.Media...)
	c.Tabs = append([]Tab(nil), c.Tabs...)
	c.FeedImages = cloneStrings(c.FeedImages)
	c.Projects = append([]CodeProject(nil), c.Projects...)
	c.Links = append([]Link(nil), c.Links...)
	l.Content = c
	return l
}

// Card is an identity card on the home page.
type Card struct {
	Type        string `yaml:"type" json:"type"`
	Title       string `yaml:"title" json:"title"`
	Subtitle    string `yaml:"subtitle" json:"subtitle"`
	Description string `yaml:"description" json:"description"`
	Color       string `yaml:"color" json:"color"`
}

// HomeElement is a floating element on the home page. Hovering an element
// with LinkedID highlights the linked element as well.
type HomeElement struct {
	ID       string   `yaml:"id" json:"id"`
	Kind     string   `yaml:"kind" json:"kind"`
	Lines    []string `yaml:"lines" json:"lines,omitempty"`
	Image    string   `yaml:"image" json:"image,omitempty"`
	Path     string   `yaml:"path" json:"path,omitempty"`
	LinkedID string   `yaml:"linked_id" json:"linked_id,omitempty"`
	Sticker  string   `yaml:"sticker" json:"sticker,omitempty"`
	Top      float64  `yaml:"top" json:"top"`
	Left     float64  `yaml:"left" json:"left"`
	Rotate   float64  `yaml:"rotate" json:"rotate"`
	Depth    float64  `yaml:"depth" json:"depth"`
}

func (h HomeElement) clone() HomeElement {
	h.Lines = cloneStrings(h.Lines)
	return h
}

// Review is the year-in-review section set.
type Review struct {
	Principle  string     `yaml:"principle" json:"principle"`
	Modules    []Module   `yaml:"modules" json:"modules"`
	Issues     []Issue    `yaml:"issues" json:"issues"`
	Keywords   []Keyword  `yaml:"keywords" json:"keywords"`
	Strategies []Strategy `yaml:"strategies" json:"strategies"`
}

// Module is one OKR objective with its actions and results.
type Module struct {
	ID        string   `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	Subtitle  string   `yaml:"subtitle" json:"subtitle"`
	Objective string   `yaml:"objective" json:"objective"`
	Score     string   `yaml:"score" json:"score"`
	Actions   []string `yaml:"actions" json:"actions"`
	Results   []Result `yaml:"results" json:"results"`
}

// ResultType grades a single OKR result.
type ResultType string

const (
	ResultPositive ResultType = "positive"
	ResultMixed    ResultType = "mixed"
	ResultNegative ResultType = "negative"
)

// Result is an outcome line of an OKR module.
type Result struct {
	Text  string     `yaml:"text" json:"text"`
	Type  ResultType `yaml:"type" json:"type"`
	Label string     `yaml:"label" json:"label"`
}

// Issue is one diagnosed loop in the review.
type Issue struct {
	ID        string   `yaml:"id" json:"id"`
	Code      string   `yaml:"code" json:"code"`
	Title     string   `yaml:"title" json:"title"`
	Symptoms  []string `yaml:"symptoms" json:"symptoms"`
	Cost      string   `yaml:"cost" json:"cost"`
	Direction string   `yaml:"direction" json:"direction"`
	Action    string   `yaml:"action" json:"action"`
}

// Keyword is one word of the year with its explanation.
type Keyword struct {
	ID      string      `yaml:"id" json:"id"`
	Keyword string      `yaml:"keyword" json:"keyword"`
	CN      string      `yaml:"cn" json:"cn"`
	Content []Paragraph `yaml:"content" json:"content"`
}

// Paragraph is a titled block of text.
type Paragraph struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`

	TextHTML template.HTML `yaml:"-" json:"-"`
}

// Theme colours a strategy card.
type Theme string

var validThemes = map[Theme]bool{
	"blue":   true,
	"red":    true,
	"orange": true,
	"green":  true,
}

// Strategy is one column of next year's strategy map.
type Strategy struct {
	ID             string `yaml:"id" json:"id"`
	Title          string `yaml:"title" json:"title"`
	Subtitle       string `yaml:"subtitle" json:"subtitle"`
	Theme          Theme  `yaml:"theme" json:"theme"`
	Positioning    string `yaml:"positioning" json:"positioning,omitempty"`
	CoreGoal       string `yaml:"core_goal" json:"core_goal"`
	ValueToCompany string `yaml:"value_to_company" json:"value_to_company"`
	ValueToSelf    string `yaml:"value_to_self" json:"value_to_self"`
	CoreMetric     string `yaml:"core_metric" json:"core_metric,omitempty"`
	Risk           string `yaml:"risk" json:"risk"`
	Strategy       string `yaml:"strategy" json:"strategy"`
}

func (r Review) clone() Review {
	out := r
	out.Modules = make([]Module, len(r.Modules))
	for i, m := range r.Modules {
		m.Actions = cloneStrings(m.Actions)
		m.Results = append([]Result(nil), m.Results...)
		out.Modules[i] = m
	}
	out.Issues = make([]Issue, len(r.Issues))
	for i, is := range r.Issues {
		is.Symptoms = cloneStrings(is.Symptoms)
		out.Issues[i] = is
	}
	out.Keywords = make([]Keyword, len(r.Keywords))
	for i, k := range r.Keywords {
		k.Content = append([]Paragraph(nil), k.Content...)
		out.Keywords[i] = k
	}
	out.Strategies = append([]Strategy(nil), r.Strategies...)
	return out
}

// Memos is the passcode-gated branch of the content archive.
type Memos struct {
	Responsibility Highlight   `yaml:"responsibility" json:"responsibility"`
	Efficiency     Highlight   `yaml:"efficiency" json:"efficiency"`
	Exploration    Exploration `yaml:"exploration" json:"exploration"`
	MemeImage      string      `yaml:"meme_image" json:"meme_image,omitempty"`
	Takeaways      []LinkGroup `yaml:"takeaways" json:"takeaways"`
}

// Highlight is a headline memo with optional before/after stats.
type Highlight struct {
	Title     string     `yaml:"title" json:"title"`
	Text      string     `yaml:"text" json:"text"`
	Stat      string     `yaml:"stat" json:"stat,omitempty"`
	StatLabel string     `yaml:"stat_label" json:"stat_label,omitempty"`
	Stats     []Progress `yaml:"stats" json:"stats,omitempty"`
}

// Progress compares last year's share of a responsibility with this year's.
type Progress struct {
	Label string `yaml:"label" json:"label"`
	Prev  int    `yaml:"prev" json:"prev"`
	Curr  int    `yaml:"curr" json:"curr"`
}

// Exploration groups the things the extra time went into.
type Exploration struct {
	Title string     `yaml:"title" json:"title"`
	Items []MemoItem `yaml:"items" json:"items"`
}

// MemoItem is one exploration entry.
type MemoItem struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
	Links []Link `yaml:"links" json:"links,omitempty"`
}

// LinkGroup is a category of takeaway documents.
type LinkGroup struct {
	Category string `yaml:"category" json:"category"`
	Links    []Link `yaml:"links" json:"links"`
}

func (m Memos) clone() Memos {
	out := m
	out.Responsibility.Stats = append([]Progress(nil), m.Responsibility.Stats...)
	out.Efficiency.Stats = append([]Progress(nil), m.Efficiency.Stats...)
	out.Exploration.Items = make([]MemoItem, len(m.Exploration.Items))
	for i, it := range m.Exploration.Items {
		it.Links = append([]Link(nil), it.Links...)
		out.Exploration.Items[i] = it
	}
	out.Takeaways = make([]LinkGroup, len(m.Takeaways))
	for i, g := range m.Takeaways {
		g.Links = append([]Link(nil), g.Links...)
		out.Takeaways[i] = g
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
