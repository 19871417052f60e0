package metadata

import (
	"regexp"
	"strings"
)

// authorPattern matches an optional name, whitespace, then an email in angle
// brackets at the end of the string.
var authorPattern = regexp.MustCompile(`^(?:([^<>]*?)\s+)?<([^<>\s]+@[^<>\s]+)>$`)

// Author is a parsed "Name <email>" identity. Raw keeps the original text.
type Author struct {
	Raw   string
	Name  string
	Email string
}

// EmptyAuthor is the default used when a page declares no author.
func EmptyAuthor() Author {
	return Author{}
}

// ParseAuthor parses raw as "Name <email>" (the name is optional). A value
// that does not match yields a FormatError.
func ParseAuthor(raw string) (Author, error) {
	match := authorPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return Author{}, &FormatError{Field: KeyAuthor, Value: raw, Err: ErrAuthorPattern}
	}
	return Author{
		Raw:   raw,
		Name:  strings.TrimSpace(match[1]),
		Email: match[2],
	}, nil
}

func (Author) Kind() Kind { return KindAuthor }
func (Author) sealed()    {}

// String renders "Name <email>", the name alone when no email is known, and
// Raw otherwise.
func (a Author) String() string {
	switch {
	case a.Name == "":
		return a.Raw
	case a.Email == "":
		return a.Name
	default:
		return a.Name + " <" + a.Email + ">"
	}
}

// IsZero reports whether the author is the empty default.
func (a Author) IsZero() bool {
	return a.Raw == "" && a.Name == "" && a.Email == ""
}

// AuthorFields is the template form of an Author. Keys are "name", "email"
// and "raw"; printing it yields Author.String.
type AuthorFields map[string]string

func (f AuthorFields) String() string {
	return Author{Raw: f["raw"], Name: f["name"], Email: f["email"]}.String()
}

// Fields returns the template form of a.
func (a Author) Fields() AuthorFields {
	return AuthorFields{"name": a.Name, "email": a.Email, "raw": a.Raw}
}
