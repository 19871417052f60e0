package metadata

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the closed set of metadata value types.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindStringList
	KindBool
	KindTimestamp
	KindAuthor
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringList:
		return "string list"
	case KindBool:
		return "bool"
	case KindTimestamp:
		return "timestamp"
	case KindAuthor:
		return "author"
	default:
		return "unknown"
	}
}

// Value is a metadata value. The set of implementations is closed: String,
// StringList, Bool, Timestamp and Author.
type Value interface {
	Kind() Kind
	String() string
	sealed()
}

type String string

func (String) Kind() Kind       { return KindString }
func (s String) String() string { return string(s) }
func (String) sealed()          {}

type StringList []string

func (StringList) Kind() Kind       { return KindStringList }
func (l StringList) String() string { return strings.Join(l, "/") }
func (StringList) sealed()          {}

type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (Bool) sealed()          {}

type Timestamp struct {
	Time time.Time
}

func (Timestamp) Kind() Kind       { return KindTimestamp }
func (t Timestamp) String() string { return t.Time.Format(time.RFC3339Nano) }
func (Timestamp) sealed()          {}

// Native unwraps v into the value handed to templates. Lists stay a
// StringList so they iterate and print joined by "/"; authors become
// AuthorFields so templates can reach name and email.
func Native(v Value) any {
	switch val := v.(type) {
	case String:
		return string(val)
	case StringList:
		return slices.Clone(val)
	case Bool:
		return bool(val)
	case Timestamp:
		return val.Time
	case Author:
		return val.Fields()
	default:
		return nil
	}
}
