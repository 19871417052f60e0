package metadata

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/strogo/wok/internal/diagnostics"
	"github.com/strogo/wok/internal/util"
	"github.com/strogo/wok/pkg/interfaces"
)

// Topic tags every diagnostic the builder emits.
const Topic = "metadata"

// Builder turns sparse page metadata into a Store satisfying every key in
// Guaranteed. Guesses are reported to the diagnostic sink; values that are
// present but malformed are rejected with a FormatError.
type Builder struct {
	sink     interfaces.DiagnosticSink
	now      func() time.Time
	location *time.Location
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSink sets the diagnostic sink. Nil restores the discarding default.
func WithSink(sink interfaces.DiagnosticSink) BuilderOption {
	return func(b *Builder) {
		if sink == nil {
			sink = diagnostics.Discard()
		}
		b.sink = sink
	}
}

// WithClock overrides the wall clock used for the datetime default.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLocation sets the location for datetimes written without a zone.
func WithLocation(loc *time.Location) BuilderOption {
	return func(b *Builder) {
		if loc != nil {
			b.location = loc
		}
	}
}

// NewBuilder returns a Builder writing to a discarding sink by default.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		sink:     diagnostics.Discard(),
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts raw into a Store and applies the guarantees. path locates
// the source file; its base name drives the title fallback.
func (b *Builder) Build(path string, raw map[string]any) (*Store, error) {
	store, err := FromRaw(path, raw)
	if err != nil {
		return nil, err
	}
	filename := filepath.Base(path)

	steps := []func(*Store, string) error{
		b.ensureTitle,
		b.ensureSlug,
		b.ensureAuthor,
		b.ensureCategory,
		b.ensurePublished,
		b.ensureDateTime,
	}
	for _, step := range steps {
		if err := step(store, filename); err != nil {
			return nil, withPath(err, path)
		}
	}
	return store, nil
}

func (b *Builder) ensureTitle(store *Store, filename string) error {
	if v, ok := store.Get(KeyTitle); ok {
		return expectKind(v, KindString, KeyTitle)
	}
	title := TitleFromFilename(filename)
	store.Set(KeyTitle, String(title))
	b.sink.Warn(Topic, fmt.Sprintf("no title in %s, using %q from the file name", filename, title))
	return nil
}

func (b *Builder) ensureSlug(store *Store, filename string) error {
	if v, ok := store.Get(KeySlug); ok {
		if err := expectKind(v, KindString, KeySlug); err != nil {
			return err
		}
		if slug := v.String(); !util.IsSlug(slug) {
			b.sink.Warn(Topic, fmt.Sprintf("slug %q in %s should be lower case and match [a-z0-9-]*", slug, filename))
		}
		return nil
	}
	title, _ := store.String(KeyTitle)
	slug := util.Slugify(title)
	store.Set(KeySlug, String(slug))
	if slug == "" {
		b.sink.Warn(Topic, fmt.Sprintf("title %q in %s produces an empty slug", title, filename))
		return nil
	}
	b.sink.Debug(Topic, fmt.Sprintf("no slug in %s, derived %q from the title", filename, slug))
	return nil
}

func (b *Builder) ensureAuthor(store *Store, _ string) error {
	v, ok := store.Get(KeyAuthor)
	if !ok {
		store.Set(KeyAuthor, EmptyAuthor())
		return nil
	}
	if author, ok := v.(Author); ok {
		store.Set(KeyAuthor, author)
		return nil
	}
	if err := expectKind(v, KindString, KeyAuthor); err != nil {
		return err
	}
	author, err := ParseAuthor(v.String())
	if err != nil {
		return err
	}
	store.Set(KeyAuthor, author)
	return nil
}

func (b *Builder) ensureCategory(store *Store, _ string) error {
	v, ok := store.Get(KeyCategory)
	if !ok {
		store.Set(KeyCategory, StringList{})
		return nil
	}
	switch val := v.(type) {
	case String:
		store.Set(KeyCategory, SplitCategory(string(val)))
	case StringList:
		store.Set(KeyCategory, compact(val))
	default:
		return kindError(v, KeyCategory)
	}
	return nil
}

func (b *Builder) ensurePublished(store *Store, _ string) error {
	v, ok := store.Get(KeyPublished)
	if !ok {
		store.Set(KeyPublished, Bool(true))
		return nil
	}
	switch val := v.(type) {
	case Bool:
		return nil
	case String:
		parsed, err := parseBoolish(string(val))
		if err != nil {
			return &FormatError{Field: KeyPublished, Value: string(val), Err: err}
		}
		store.Set(KeyPublished, Bool(parsed))
		return nil
	default:
		return kindError(v, KeyPublished)
	}
}

func (b *Builder) ensureDateTime(store *Store, _ string) error {
	for _, key := range dateTimeSources {
		v, ok := store.Get(key)
		if !ok {
			continue
		}
		switch val := v.(type) {
		case Timestamp:
			store.Set(KeyDateTime, val)
		case String:
			t, err := ParseDateTime(string(val), b.location)
			if err != nil {
				if fe, ok := err.(*FormatError); ok {
					fe.Field = key
				}
				return err
			}
			store.Set(KeyDateTime, Timestamp{Time: t})
		default:
			return kindError(v, key)
		}
		return nil
	}
	store.Set(KeyDateTime, Timestamp{Time: b.now()})
	return nil
}

// TitleFromFilename strips the last extension from filename, falling back
// to the whole name when nothing is left ("index.md" -> "index",
// ".md" -> ".md", "README" -> "README").
func TitleFromFilename(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx <= 0 {
		return filename
	}
	return filename[:idx]
}

// SplitCategory splits a "a/b/c" path on "/". Empty and blank segments are
// dropped, so "tech/" and "tech//" both yield [tech].
func SplitCategory(value string) StringList {
	return compact(strings.Split(value, "/"))
}

func compact(values []string) StringList {
	out := make(StringList, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseBoolish(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(value))
}

func expectKind(v Value, kind Kind, field string) error {
	if v.Kind() == kind {
		return nil
	}
	return kindError(v, field)
}

func kindError(v Value, field string) error {
	return &FormatError{
		Field: field,
		Value: Native(v),
		Err:   fmt.Errorf("%w: got %s", ErrUnexpectedKind, v.Kind()),
	}
}
