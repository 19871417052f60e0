package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestPageUUIDIsStable(t *testing.T) {
	first := PageUUID("posts/hello.txt")
	second := PageUUID("posts/./hello.txt")
	if first == uuid.Nil {
		t.Fatal("expected non-nil id")
	}
	if first != second {
		t.Fatalf("expected cleaned paths to share an id, got %s and %s", first, second)
	}
	if first == PageUUID("posts/other.txt") {
		t.Fatal("expected distinct paths to produce distinct ids")
	}
}

func TestPageUUIDEmpty(t *testing.T) {
	if got := PageUUID("  "); got != uuid.Nil {
		t.Fatalf("expected nil id for empty path, got %s", got)
	}
}

func TestUUIDFallsBackToNilForBlankKeys(t *testing.T) {
	if UUID(" ") != uuid.Nil {
		t.Fatal("expected nil id for blank key")
	}
	if UUID("wok:page:a") == UUID("wok:page:b") {
		t.Fatal("expected distinct keys to produce distinct ids")
	}
}
