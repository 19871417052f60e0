package metadata

import (
	"maps"
	"slices"
	"time"
)

// Keys every built Store is guaranteed to carry.
const (
	KeyTitle     = "title"
	KeySlug      = "slug"
	KeyAuthor    = "author"
	KeyCategory  = "category"
	KeyPublished = "published"
	KeyDateTime  = "datetime"
)

// Keys consulted, in order, when deriving the datetime guarantee.
var dateTimeSources = []string{"time", "date", KeyDateTime}

// Guaranteed lists the keys present on every Store returned by Builder.Build.
var Guaranteed = []string{KeyTitle, KeySlug, KeyAuthor, KeyCategory, KeyPublished, KeyDateTime}

// Store maps attribute names to metadata values. A Store belongs to a single
// page and is not safe for concurrent mutation.
type Store struct {
	values map[string]Value
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: map[string]Value{}}
}

func (s *Store) Get(key string) (Value, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Set stores v under key. A nil value removes the key.
func (s *Store) Set(key string, v Value) {
	if v == nil {
		delete(s.values, key)
		return
	}
	s.values[key] = v
}

func (s *Store) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *Store) Delete(key string) {
	delete(s.values, key)
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Missing returns the guaranteed keys absent from the store.
func (s *Store) Missing() []string {
	var missing []string
	for _, key := range Guaranteed {
		if !s.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

func (s *Store) String(key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := v.(String)
	return string(str), ok
}

func (s *Store) StringList(key string) ([]string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return nil, false
	}
	list, ok := v.(StringList)
	return slices.Clone([]string(list)), ok
}

func (s *Store) Bool(key string) (bool, bool) {
	v, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(Bool)
	return bool(b), ok
}

func (s *Store) Time(key string) (time.Time, bool) {
	v, ok := s.Get(key)
	if !ok {
		return time.Time{}, false
	}
	ts, ok := v.(Timestamp)
	return ts.Time, ok
}

func (s *Store) Author(key string) (Author, bool) {
	v, ok := s.Get(key)
	if !ok {
		return Author{}, false
	}
	a, ok := v.(Author)
	return a, ok
}

// Clone returns a copy whose list values do not alias the original.
func (s *Store) Clone() *Store {
	out := NewStore()
	if s == nil {
		return out
	}
	for key, v := range s.values {
		if list, ok := v.(StringList); ok {
			v = slices.Clone(list)
		}
		out.values[key] = v
	}
	return out
}

// Natives returns every value unwrapped through Native.
func (s *Store) Natives() map[string]any {
	out := make(map[string]any, s.Len())
	if s == nil {
		return out
	}
	for key, v := range s.values {
		out[key] = Native(v)
	}
	return out
}
