// Package content holds the site's editorial copy: the process steps,
// services, case studies and lead-form industries per language, and the
// news feed. Copy ships as embedded YAML.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/volt-agency/site/internal/platform/i18n"
	"github.com/volt-agency/site/internal/process"
)

//go:embed data/*.yaml
var embeddedData embed.FS

const (
	dataDir    = "data"
	newsFile   = "news.yaml"
	dateLayout = "2006-01-02"
)

// StepCopy is one process step as written.
type StepCopy struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Process is the copy of the process section.
type Process struct {
	Label   string     `yaml:"label"`
	Heading string     `yaml:"heading"`
	Steps   []StepCopy `yaml:"steps"`
}

// Service is one offering in the services grid.
type Service struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Button      string `yaml:"button"`
}

// Lines splits the description on explicit line breaks.
func (s Service) Lines() []string {
	return strings.Split(s.Description, "\n")
}

// Services is the copy of the services section.
type Services struct {
	Label   string    `yaml:"label"`
	Heading string    `yaml:"heading"`
	Marquee string    `yaml:"marquee"`
	Items   []Service `yaml:"items"`
}

// Metric is a labelled case-study figure.
type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Case is one case study.
type Case struct {
	ID       int      `yaml:"id"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Goal     string   `yaml:"goal"`
	Metrics  []Metric `yaml:"metrics"`
	Results  []string `yaml:"results"`
}

// Cases is the copy of the case-studies section.
type Cases struct {
	Kicker string `yaml:"kicker"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Items  []Case `yaml:"items"`
}

// Page is the landing page copy for one language.
type Page struct {
	Lang       i18n.Code `yaml:"lang"`
	Process    Process   `yaml:"process"`
	Services   Services  `yaml:"services"`
	Cases      Cases     `yaml:"cases"`
	Industries []string  `yaml:"industries"`
}

// Post is a news entry.
type Post struct {
	ID      string `yaml:"id"`
	Date    string `yaml:"date"`
	Title   string `yaml:"title"`
	Excerpt string `yaml:"excerpt"`
	Content string `yaml:"content"`
	Image   string `yaml:"image"`

	published time.Time
}

// Published returns the post date.
func (p Post) Published() time.Time {
	return p.published
}

// Paragraphs splits the body on blank lines.
func (p Post) Paragraphs() []string {
	var out []string
	for _, block := range strings.Split(strings.ReplaceAll(p.Content, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// Anchor returns the slug of the title, used as the article's fragment id.
func (p Post) Anchor() string {
	return slug.Make(p.Title)
}

type newsDocument struct {
	Posts []Post `yaml:"posts"`
}

// Catalog is the loaded, validated copy.
type Catalog struct {
	pages map[i18n.Code]Page
	posts []Post
	index map[string]int
}

var defaultCatalog = mustLoadEmbedded()

// Default returns the catalog built from the embedded data.
func Default() *Catalog {
	return defaultCatalog
}

// LoadEmbedded parses the embedded data files.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embeddedData, dataDir)
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return LoadFromFS(sub)
}

// LoadFromFS parses one <lang>.yaml per supported language and news.yaml
// from the root of fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{pages: make(map[i18n.Code]Page), index: make(map[string]int)}

	for _, code := range i18n.Supported() {
		name := string(code) + ".yaml"
		var page Page
		if err := decodeFile(fsys, name, &page); err != nil {
			return nil, err
		}
		if page.Lang != code {
			return nil, fmt.Errorf("%s: lang %q does not match file name", name, page.Lang)
		}
		c.pages[code] = page
	}

	var doc newsDocument
	if err := decodeFile(fsys, newsFile, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Posts {
		published, err := time.Parse(dateLayout, doc.Posts[i].Date)
		if err != nil {
			return nil, fmt.Errorf("%s: post %q date: %w", newsFile, doc.Posts[i].ID, err)
		}
		doc.Posts[i].published = published
	}
	// Newest first; ties keep file order.
	sort.SliceStable(doc.Posts, func(i, j int) bool {
		return doc.Posts[i].published.After(doc.Posts[j].published)
	})
	c.posts = doc.Posts
	for i, post := range c.posts {
		c.index[post.ID] = i
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeFile(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, path.Clean(name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Validate checks that every language carries the same structure and that
// news ids are unique and non-empty.
func (c *Catalog) Validate() error {
	var err error
	base, ok := c.pages[i18n.Default()]
	if !ok {
		return fmt.Errorf("missing %s content", i18n.Default())
	}
	if len(base.Process.Steps) == 0 {
		err = multierr.Append(err, fmt.Errorf("%s: no process steps", base.Lang))
	}
	for _, code := range i18n.Supported() {
		page, ok := c.pages[code]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("missing %s content", code))
			continue
		}
		if got, want := len(page.Process.Steps), len(base.Process.Steps); got != want {
			err = multierr.Append(err, fmt.Errorf("%s: %d process steps, want %d", code, got, want))
		}
		if got, want := len(page.Services.Items), len(base.Services.Items); got != want {
			err = multierr.Append(err, fmt.Errorf("%s: %d services, want %d", code, got, want))
		}
		if got, want := len(page.Cases.Items), len(base.Cases.Items); got != want {
			err = multierr.Append(err, fmt.Errorf("%s: %d cases, want %d", code, got, want))
		}
		for i, step := range page.Process.Steps {
			if strings.TrimSpace(step.Title) == "" {
				err = multierr.Append(err, fmt.Errorf("%s: process step %d has no title", code, i+1))
			}
		}
	}

	seen := make(map[string]bool, len(c.posts))
	for _, post := range c.posts {
		switch {
		case strings.TrimSpace(post.ID) == "":
			err = multierr.Append(err, fmt.Errorf("news post %q has no id", post.Title))
		case seen[post.ID]:
			err = multierr.Append(err, fmt.Errorf("duplicate news id %q", post.ID))
		}
		seen[post.ID] = true
	}
	return err
}

// Page returns the copy for lang, falling back to the default language.
func (c *Catalog) Page(lang i18n.Code) Page {
	if page, ok := c.pages[lang]; ok {
		return page
	}
	return c.pages[i18n.Default()]
}

// Steps returns the process steps for lang.
func (c *Catalog) Steps(lang i18n.Code) []process.Step {
	page := c.Page(lang)
	steps := make([]process.Step, len(page.Process.Steps))
	for i, s := range page.Process.Steps {
		steps[i] = process.Step{
			Index:       i,
			Ordinal:     s.Number,
			Title:       s.Title,
			Description: s.Description,
		}
	}
	return steps
}

// Posts returns the news feed, newest first.
func (c *Catalog) Posts() []Post {
	out := make([]Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// Post looks up a news entry by id.
func (c *Catalog) Post(id string) (Post, bool) {
	i, ok := c.index[id]
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("load embedded content: %v", err))
	}
	return c
}
