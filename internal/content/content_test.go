package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/volt-agency/site/internal/platform/i18n"
)

func TestDefaultCatalogHasEveryLanguage(t *testing.T) {
	t.Parallel()

	c := Default()
	for _, code := range i18n.Supported() {
		page := c.Page(code)
		if page.Lang != code {
			t.Fatalf("Page(%q).Lang = %q", code, page.Lang)
		}
		if got := len(page.Process.Steps); got != 5 {
			t.Fatalf("%s steps = %d, want 5", code, got)
		}
		if got := len(page.Industries); got != 6 {
			t.Fatalf("%s industries = %d, want 6", code, got)
		}
	}
}

func TestStepsImplementStepSource(t *testing.T) {
	t.Parallel()

	steps := Default().Steps(i18n.Russian)
	if len(steps) != 5 {
		t.Fatalf("len(steps) = %d, want 5", len(steps))
	}
	if steps[0].Title != "Аналитика" {
		t.Fatalf("steps[0].Title = %q", steps[0].Title)
	}
	for i, step := range steps {
		if step.Index != i {
			t.Fatalf("steps[%d].Index = %d", i, step.Index)
		}
	}
	if steps[4].Ordinal != "05" {
		t.Fatalf("steps[4].Ordinal = %q", steps[4].Ordinal)
	}
}

func TestPageFallsBackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	page := Default().Page(i18n.Code("de"))
	if page.Process.Heading != "Our Process" {
		t.Fatalf("fallback heading = %q", page.Process.Heading)
	}
}

func TestPostsNewestFirst(t *testing.T) {
	t.Parallel()

	posts := Default().Posts()
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[0].ID != "1" || posts[1].ID != "2" {
		t.Fatalf("order = %q, %q", posts[0].ID, posts[1].ID)
	}
	if !posts[0].Published().After(posts[1].Published()) {
		t.Fatalf("posts not sorted by date")
	}
}

func TestPostLookupAndParagraphs(t *testing.T) {
	t.Parallel()

	post, ok := Default().Post("1")
	if !ok {
		t.Fatal("post 1 not found")
	}
	paragraphs := post.Paragraphs()
	if len(paragraphs) != 2 {
		t.Fatalf("paragraphs = %q", paragraphs)
	}
	if paragraphs[0] != "Full article text here." {
		t.Fatalf("paragraphs[0] = %q", paragraphs[0])
	}
	if got := post.Anchor(); got != "we-launched-volt-news" {
		t.Fatalf("Anchor() = %q", got)
	}

	if _, ok := Default().Post("404"); ok {
		t.Fatal("expected unknown post to be missing")
	}
}

func TestServiceLines(t *testing.T) {
	t.Parallel()

	s := Service{Description: "one\ntwo"}
	if got := s.Lines(); len(got) != 2 || got[1] != "two" {
		t.Fatalf("Lines() = %q", got)
	}
}

func testFS(overrides map[string]string) fstest.MapFS {
	page := func(lang string, steps int) string {
		var b strings.Builder
		b.WriteString("lang: " + lang + "\nprocess:\n  steps:\n")
		for i := 0; i < steps; i++ {
			b.WriteString("    - {number: \"0" + string(rune('1'+i)) + "\", title: \"T\"}\n")
		}
		return b.String()
	}
	files := map[string]string{
		"en.yaml":   page("en", 2),
		"ru.yaml":   page("ru", 2),
		"uk.yaml":   page("uk", 2),
		"news.yaml": "posts:\n  - {id: \"a\", date: \"2026-01-01\", title: \"A\"}\n",
	}
	for name, body := range overrides {
		files[name] = body
	}
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadFromFS(t *testing.T) {
	t.Parallel()

	c, err := LoadFromFS(testFS(nil))
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got := len(c.Steps(i18n.Ukrainian)); got != 2 {
		t.Fatalf("steps = %d, want 2", got)
	}
}

func TestLoadFromFSRejectsInconsistentContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides map[string]string
		want      string
	}{
		{
			name:      "step count mismatch",
			overrides: map[string]string{"ru.yaml": "lang: ru\nprocess:\n  steps:\n    - {number: \"01\", title: \"T\"}\n"},
			want:      "ru: 1 process steps, want 2",
		},
		{
			name:      "lang mismatch",
			overrides: map[string]string{"uk.yaml": "lang: ru\n"},
			want:      "does not match file name",
		},
		{
			name:      "bad date",
			overrides: map[string]string{"news.yaml": "posts:\n  - {id: \"a\", date: \"yesterday\"}\n"},
			want:      "date",
		},
		{
			name:      "duplicate post",
			overrides: map[string]string{"news.yaml": "posts:\n  - {id: \"a\", date: \"2026-01-01\"}\n  - {id: \"a\", date: \"2026-01-02\"}\n"},
			want:      "duplicate news id",
		},
		{
			name:      "invalid yaml",
			overrides: map[string]string{"en.yaml": "lang: [\n"},
			want:      "parse en.yaml",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFromFS(testFS(tc.overrides))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want substring %q", err, tc.want)
			}
		})
	}
}

func TestLoadFromFSMissingFile(t *testing.T) {
	t.Parallel()

	fsys := testFS(nil)
	delete(fsys, "news.yaml")
	if _, err := LoadFromFS(fsys); err == nil || !strings.Contains(err.Error(), "read news.yaml") {
		t.Fatalf("error = %v", err)
	}
}
