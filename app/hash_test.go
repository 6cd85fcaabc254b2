package app

import (
	"testing"
)

func TestHashString(t *testing.T) {
	t.Run("fixed width uppercase hex", func(t *testing.T) {
		h := hashString("/data/foo.txt")
		if len(h) != 16 {
			t.Fatalf("expected 16 characters, got %d: %q", len(h), h)
		}
		for _, c := range h {
			if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
				t.Fatalf("unexpected character %q in %q", c, h)
			}
		}
	})

	t.Run("stable", func(t *testing.T) {
		if hashString("abc") != hashString("abc") {
			t.Error("same input produced different digests")
		}
	})

	t.Run("distinct inputs", func(t *testing.T) {
		if hashString("abc") == hashString("abd") {
			t.Error("different inputs produced the same digest")
		}
	})

	t.Run("known answer", func(t *testing.T) {
		if got := hashString(""); got != "EF46DB3751D8E999" {
			t.Errorf("hashString(\"\") = %q, want EF46DB3751D8E999", got)
		}
	})
}
