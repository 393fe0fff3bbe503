package gamess

import (
	"strings"
	"testing"
)

func TestScanner(t *testing.T) {
	s, err := NewScanner(strings.NewReader("first\n\nthird\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "", "third"}
	for _, w := range want {
		line, err := s.Next()
		if err != nil {
			t.Fatal(err)
		}
		if line != w {
			t.Errorf("got %q, wanted %q\n", line, w)
		}
		if s.Line() != w {
			t.Errorf("Line: got %q, wanted %q\n", s.Line(), w)
		}
	}
	if !s.AtEnd() {
		t.Errorf("expected scanner at end\n")
	}
	if _, err := s.Next(); err != ErrExhausted {
		t.Errorf("got %v, wanted %v\n", err, ErrExhausted)
	}
}
