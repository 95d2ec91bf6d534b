// Package catalog loads the site's message catalogs and registers them with
// golang.org/x/text/message so templates can print localized copy.
//
// Catalogs live in locales/<locale>/<namespace>.yaml, one directory per
// supported language. Keys starting with "core." belong to the core
// namespace and every key is unique within a language.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/volt-agency/site/internal/platform/i18n"
)

const coreNamespace = "core"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every language found on disk.
type Bundle struct {
	messages   map[i18n.Code]map[string]string
	namespaces map[i18n.Code]map[string]int
}

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the embedded bundle, already registered.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS loads every supported language present in fsys. The default
// language is required; file errors are reported together.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{
		messages:   map[i18n.Code]map[string]string{},
		namespaces: map[i18n.Code]map[string]int{},
	}
	var errs error
	for _, code := range i18n.Supported() {
		files, err := fs.Glob(fsys, path.Join("locales", code.Locale(), "*.yaml"))
		if err != nil {
			return nil, fmt.Errorf("glob %s catalogs: %w", code.Locale(), err)
		}
		slices.Sort(files)
		for _, name := range files {
			errs = multierr.Append(errs, b.loadFile(fsys, code, name))
		}
	}
	if errs != nil {
		return nil, errs
	}
	if !b.Has(i18n.Default()) {
		return nil, fmt.Errorf("no catalogs for default locale %s", i18n.Default().Locale())
	}
	return b, nil
}

func (b *Bundle) loadFile(fsys fs.FS, code i18n.Code, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	if got := strings.TrimSpace(file.Locale); got != code.Locale() {
		return fmt.Errorf("%s: locale %q does not match directory %q", name, got, code.Locale())
	}
	namespace := strings.TrimSpace(file.Namespace)
	if want := strings.TrimSuffix(path.Base(name), path.Ext(name)); namespace != want {
		return fmt.Errorf("%s: namespace %q does not match file name %q", name, namespace, want)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("%s: no messages", name)
	}

	messages := b.messages[code]
	if messages == nil {
		messages = map[string]string{}
		b.messages[code] = messages
		b.namespaces[code] = map[string]int{}
	}

	var errs error
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		switch {
		case key == "":
			errs = multierr.Append(errs, fmt.Errorf("%s: blank key", name))
		case strings.HasPrefix(key, coreNamespace+".") && namespace != coreNamespace:
			errs = multierr.Append(errs, fmt.Errorf("%s: key %q belongs in the core namespace", name, key))
		default:
			if _, dup := messages[key]; dup {
				errs = multierr.Append(errs, fmt.Errorf("%s: duplicate key %q", name, key))
				continue
			}
			messages[key] = value
		}
	}
	b.namespaces[code][namespace] += len(file.Messages)
	return errs
}

// Has reports whether any catalog was loaded for code.
func (b *Bundle) Has(code i18n.Code) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[code]
	return ok
}

// Namespaces returns the namespaces loaded for code, sorted.
func (b *Bundle) Namespaces(code i18n.Code) []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.namespaces[code]))
	for ns := range b.namespaces[code] {
		out = append(out, ns)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the message for key in code, falling back to the default
// language.
func (b *Bundle) Lookup(code i18n.Code, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if v, ok := b.messages[code][key]; ok {
		return v, true
	}
	v, ok := b.messages[i18n.Default()][key]
	return v, ok
}

// Register makes every message available to printers for the language tag
// and its full locale tag.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, code := range i18n.Supported() {
		messages, ok := b.messages[code]
		if !ok {
			continue
		}
		tags := []language.Tag{code.Tag()}
		if full, err := language.Parse(code.Locale()); err == nil && full.String() != code.Tag().String() {
			tags = append(tags, full)
		}
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, tag := range tags {
			for _, key := range keys {
				if err := message.SetString(tag, key, messages[key]); err != nil {
					return fmt.Errorf("register %s %q: %w", tag, key, err)
				}
			}
		}
	}
	return nil
}

// Validate reports every default-language key another language lacks and
// every key a language has that the default language does not.
func (b *Bundle) Validate() error {
	if b == nil {
		return nil
	}
	base := b.messages[i18n.Default()]
	keys := make([]string, 0, len(base))
	for key := range base {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var errs error
	for _, code := range i18n.Supported() {
		messages, ok := b.messages[code]
		if !ok || code == i18n.Default() {
			continue
		}
		for _, key := range keys {
			if _, ok := messages[key]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("%s: missing key %q", code.Locale(), key))
			}
		}
		extra := make([]string, 0)
		for key := range messages {
			if _, ok := base[key]; !ok {
				extra = append(extra, key)
			}
		}
		slices.Sort(extra)
		for _, key := range extra {
			errs = multierr.Append(errs, fmt.Errorf("%s: unknown key %q", code.Locale(), key))
		}
	}
	return errs
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := b.Register(); err != nil {
		panic(err)
	}
	return b
}
