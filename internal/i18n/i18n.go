// Package i18n loads the embedded message catalogs and formats localized
// strings for tracers and the terminal UI.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the fallback locale for missing translations.
const BaseLocale = "en"

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Name     string            `yaml:"name"`
	Messages map[string]string `yaml:"messages"`
}

// Language describes one available locale.
type Language struct {
	Code string
	Name string
}

// Bundle holds every loaded locale and the x/text catalog built from them.
type Bundle struct {
	languages []Language
	messages  map[string]map[string]string
	tags      []language.Tag
	matcher   language.Matcher
	catalog   *catalog.Builder
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default returns the bundle built from the embedded catalogs.
func Default() *Bundle {
	defaultOnce.Do(func() {
		b, err := LoadFromFS(embeddedFS)
		if err != nil {
			panic(err)
		}
		defaultBundle = b
	})
	return defaultBundle
}

// LoadFromFS loads locales/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		messages: map[string]map[string]string{},
		catalog:  catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
	}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.add(path, file); err != nil {
			return nil, err
		}
	}
	if _, ok := b.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// Base locale first so the matcher falls back to it.
	sort.SliceStable(b.languages, func(i, j int) bool {
		if b.languages[i].Code == BaseLocale {
			return true
		}
		if b.languages[j].Code == BaseLocale {
			return false
		}
		return b.languages[i].Code < b.languages[j].Code
	})
	if err := b.fillFromBase(); err != nil {
		return nil, err
	}
	for _, l := range b.languages {
		b.tags = append(b.tags, language.MustParse(l.Code))
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	if _, exists := b.messages[locale]; exists {
		return fmt.Errorf("catalog %s: locale %q defined twice", path, locale)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", path)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale %q: %w", path, locale, err)
	}

	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		msgs[key] = value
		if err := b.catalog.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: key %q: %w", path, key, err)
		}
	}
	b.messages[locale] = msgs

	name := file.Name
	if name == "" {
		name = locale
	}
	b.languages = append(b.languages, Language{Code: locale, Name: name})
	return nil
}

// fillFromBase copies base messages into locales that lack them. The x/text
// catalog only walks tag parents on lookup, never the fallback tag.
func (b *Bundle) fillFromBase() error {
	base := b.messages[BaseLocale]
	for locale, msgs := range b.messages {
		if locale == BaseLocale {
			continue
		}
		tag := language.MustParse(locale)
		for key, value := range base {
			if _, ok := msgs[key]; ok {
				continue
			}
			if err := b.catalog.SetString(tag, key, value); err != nil {
				return fmt.Errorf("catalog %s: fallback key %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// Languages returns the available locales, base locale first.
func (b *Bundle) Languages() []Language {
	out := make([]Language, len(b.languages))
	copy(out, b.languages)
	return out
}

// Has reports whether the locale is available.
func (b *Bundle) Has(locale string) bool {
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Keys returns the sorted message keys of a locale.
func (b *Bundle) Keys(locale string) []string {
	msgs := b.messages[locale]
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Match resolves a user supplied language ("vi", "vi-VN", "en_US") to an
// available locale code, falling back to BaseLocale.
func (b *Bundle) Match(lang string) string {
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang == "" {
		return BaseLocale
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return BaseLocale
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return BaseLocale
	}
	return b.languages[idx].Code
}

// Printer returns a printer for the best match of lang.
func (b *Bundle) Printer(lang string) *Printer {
	code := b.Match(lang)
	return &Printer{
		code: code,
		p:    message.NewPrinter(language.MustParse(code), message.Catalog(b.catalog)),
	}
}
