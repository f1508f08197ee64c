// Package font provides the glyph lookups used by the text rasterizer.
//
// The fixed 5x8 cell fonts used by SSD1306 drivers are supplied by the caller as a [Face].
// A [Table] holds the 96 printable ASCII glyphs (codes 32 through 127), and can be
// loaded from raw bytes, from a file, or rasterized from any [golang.org/x/image/font.Face].
package font

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Glyph cell dimensions.
const (
	Width  = 5
	Height = 8

	// Advance is the horizontal distance between two character origins: the glyph width
	// plus one pixel of spacing.
	Advance = Width + 1
)

// Printable ASCII range covered by a Table.
const (
	First = 32
	Last  = 127
	Count = Last - First + 1
)

// TableSize is the size in bytes of a raw glyph table.
const TableSize = Count * Width

// Errors
var (
	ErrTableSize = fmt.Errorf("font: glyph table must be %d bytes", TableSize)
)

// Glyph is a 5 column by 8 row bit pattern. Bit r of column c is the pixel at (c, r).
type Glyph [Width]byte

// Bit reports if the glyph pixel at (col, row) is set.
func (g Glyph) Bit(col, row int) bool {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return false
	}
	return g[col]&(1<<uint(row)) != 0
}

// Face looks up the glyph for a character code.
type Face interface {
	// Glyph returns the glyph for ch, ok is false if the face has no glyph for it.
	Glyph(ch byte) (g Glyph, ok bool)
}

// Printable reports if ch is in the range covered by a Table.
func Printable(ch byte) bool {
	return ch >= First && ch <= Last
}

// Table is a Face for the printable ASCII range.
type Table [Count]Glyph

// NewTable copies a raw glyph table, 5 column bytes per character starting at code 32.
func NewTable(data []byte) (*Table, error) {
	if len(data) != TableSize {
		return nil, ErrTableSize
	}
	t := new(Table)
	for i := range t {
		copy(t[i][:], data[i*Width:])
	}
	return t, nil
}

func (t *Table) Glyph(ch byte) (Glyph, bool) {
	if t == nil || !Printable(ch) {
		return Glyph{}, false
	}
	return t[ch-First], true
}

// Bytes returns the raw table, as accepted by NewTable.
func (t *Table) Bytes() []byte {
	out := make([]byte, 0, TableSize)
	for _, g := range t {
		out = append(out, g[:]...)
	}
	return out
}

// Load reads a glyph table. Both the raw binary layout and a hexadecimal text dump of it are
// accepted; in the text form whitespace, commas, "0x" prefixes and "//" or "#" comments are ignored.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == TableSize {
		return NewTable(data)
	}
	if data, err = decodeHex(data); err != nil {
		return nil, err
	}
	return NewTable(data)
}

func decodeHex(data []byte) ([]byte, error) {
	var (
		clean strings.Builder
		s     = bufio.NewScanner(bytes.NewReader(data))
	)
	for s.Scan() {
		line := s.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '{' || r == '}'
		}) {
			field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
			if len(field)%2 == 1 {
				field = "0" + field
			}
			clean.WriteString(field)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	out, err := hex.DecodeString(clean.String())
	if err != nil {
		return nil, fmt.Errorf("font: invalid hexadecimal glyph table: %w", err)
	}
	return out, nil
}
