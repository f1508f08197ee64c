package main

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		s    string
		cols int
		want []string
	}{
		{"", 21, nil},
		{"abc", 21, []string{"abc"}},
		{"abcdef", 3, []string{"abc", "def"}},
		{"abcdefg", 3, []string{"abc", "def", "g"}},
	}
	for _, test := range tests {
		got := wrap(test.s, test.cols)
		if strings.Join(got, "|") != strings.Join(test.want, "|") || len(got) != len(test.want) {
			t.Errorf("wrap(%q, %d): expected %q, got %q", test.s, test.cols, test.want, got)
		}
	}
}

func TestTestPattern(t *testing.T) {
	b := testPattern(128, 64)
	if !b.Bit(64, 0) || !b.Bit(0, 32) {
		t.Errorf("expected border to be lit")
	}
	if !b.Bit(64, 32) {
		t.Errorf("expected center box to be lit")
	}
}

func TestBanner(t *testing.T) {
	b, err := banner("Hi", 128, 64, 32)
	if err != nil {
		t.Fatal(err)
	}
	var lit int
	for _, v := range b.Pix {
		for ; v != 0; v &= v - 1 {
			lit++
		}
	}
	if lit == 0 {
		t.Errorf("expected banner text to light pixels")
	}
}

func TestGlyphs(t *testing.T) {
	face, err := glyphs("")
	if err != nil {
		t.Fatal(err)
	}
	if g, ok := face.Glyph('W'); !ok || g == [5]byte{} {
		t.Errorf("expected a visible W glyph, got %v", g)
	}
	if _, err = glyphs("does-not-exist.bin"); err == nil {
		t.Errorf("expected an error for a missing font file")
	}
}
