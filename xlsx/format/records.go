package format

import (
	"fmt"
	"strconv"
)

// Font is font part of the format. It is comparable and serves as the font
// pool key.
type Font struct {
	Bold      bool
	Italic    bool
	Strikeout bool
	Condense  bool
	Extend    bool
	Underline Underline
	Script    Script
	Name      string
	Size      float64
	Color     Color
	Family    uint8
	Charset   uint8
	Scheme    string
	Theme     uint8
}

// DefaultFont is font of every new format, it always occupies slot 0 of the
// font pool.
var DefaultFont = Font{
	Name:   "Calibri",
	Size:   11,
	Color:  Automatic,
	Family: 2,
}

func (f Font) String() string {
	return fmt.Sprintf("%t:%d:%s:%t:%t:%d:%s:%s:%d:%s:%t:%t:%d:%d",
		f.Bold, f.Charset, f.Color.Hex(), f.Condense, f.Extend, f.Family, f.Name, f.Scheme,
		f.Script, strconv.FormatFloat(f.Size, 'f', -1, 64), f.Strikeout, f.Italic, f.Theme, f.Underline)
}

// Border describes all cell sides, it is the border pool key.
type Border struct {
	Bottom        BorderStyle
	BottomColor   Color
	Top           BorderStyle
	TopColor      Color
	Left          BorderStyle
	LeftColor     Color
	Right         BorderStyle
	RightColor    Color
	Diagonal      BorderStyle
	DiagonalColor Color
	DiagonalType  Diagonal
}

// DefaultBorder has no lines, it always occupies slot 0 of the border pool.
var DefaultBorder = Border{
	BottomColor:   Automatic,
	TopColor:      Automatic,
	LeftColor:     Automatic,
	RightColor:    Automatic,
	DiagonalColor: Automatic,
}

func (b Border) String() string {
	return fmt.Sprintf("%d:%s:%d:%s:%d:%d:%s:%d:%s:%d:%s",
		b.Bottom, b.BottomColor.Hex(), b.Diagonal, b.DiagonalColor.Hex(), b.DiagonalType,
		b.Left, b.LeftColor.Hex(), b.Right, b.RightColor.Hex(), b.Top, b.TopColor.Hex())
}

// IsEmpty reports whether no side has a line.
func (b Border) IsEmpty() bool {
	return b.Bottom == BorderStyleNone && b.Top == BorderStyleNone && b.Left == BorderStyleNone &&
		b.Right == BorderStyleNone && b.Diagonal == BorderStyleNone
}

// Fill is the fill pool key.
type Fill struct {
	Pattern    Pattern
	Foreground Color
	Background Color
}

// Two fills Excel requires at the beginning of every fill list.
var (
	DefaultFill = Fill{Pattern: PatternNone, Foreground: Automatic, Background: Automatic}
	Gray125Fill = Fill{Pattern: PatternGray125, Foreground: Automatic, Background: Automatic}
)

func (f Fill) String() string {
	return fmt.Sprintf("%s:%s:%d", f.Background.Hex(), f.Foreground.Hex(), f.Pattern)
}

// Normalized returns fill the way Excel stores it for cells: solid pattern
// swaps foreground and background and colors without pattern imply solid
// fill.
func (f Fill) Normalized() Fill {
	bgSet, fgSet := !f.Background.IsAutomatic(), !f.Foreground.IsAutomatic()
	if f.Pattern == PatternSolid && bgSet && fgSet {
		f.Foreground, f.Background = f.Background, f.Foreground
	}
	if f.Pattern <= PatternSolid && bgSet && !fgSet {
		f.Foreground, f.Background = f.Background, Automatic
		f.Pattern = PatternSolid
	}
	if f.Pattern <= PatternSolid && !bgSet && fgSet {
		f.Pattern = PatternSolid
	}
	return f
}

// IsEmpty reports whether neither pattern nor colors are set.
func (f Fill) IsEmpty() bool {
	return f.Pattern == PatternNone && f.Foreground.IsAutomatic() && f.Background.IsAutomatic()
}

// Alignment holds alignment properties of the format.
type Alignment struct {
	Horizontal       Align
	Vertical         Align
	Indent           uint8
	Rotation         int16
	ReadingDirection uint8
	TextWrap         bool
	Shrink           bool
	JustifyLast      bool
}

func (a Alignment) String() string {
	return fmt.Sprintf("%d:%d:%d:%t:%d:%d:%t:%t",
		a.Indent, a.ReadingDirection, a.Rotation, a.Shrink, a.Horizontal, a.Vertical, a.JustifyLast, a.TextWrap)
}

// HasAlignment reports whether <alignment> element has to be written.
// Bottom vertical alignment is Excel default and does not count here.
func (a Alignment) HasAlignment() bool {
	return a.Horizontal != AlignGeneral ||
		!(a.Vertical == AlignGeneral || a.Vertical == AlignBottom) ||
		a.Indent != 0 ||
		a.Rotation != 0 ||
		a.TextWrap ||
		a.Shrink ||
		a.ReadingDirection != 0
}

// ApplyAlignment reports whether applyAlignment attribute has to be set.
// Unlike HasAlignment explicit Bottom vertical alignment counts.
func (a Alignment) ApplyAlignment() bool {
	return a.Horizontal != AlignGeneral ||
		a.Vertical != AlignGeneral ||
		a.Indent != 0 ||
		a.Rotation != 0 ||
		a.TextWrap ||
		a.Shrink ||
		a.ReadingDirection != 0
}

// Protection holds cell protection flags.
type Protection struct {
	Locked bool
	Hidden bool
}

// HasProtection reports whether protection differs from Excel default
// (locked, visible).
func (p Protection) HasProtection() bool {
	return !p.Locked || p.Hidden
}

// Key is structural identity of the format used for deduplication. Formats
// with equal keys share single style record.
type Key struct {
	Alignment      Alignment
	Border         Border
	Fill           Fill
	Font           Font
	Hidden         bool
	Locked         bool
	NumFormat      string
	NumFormatIndex uint16
}

// String returns canonical representation of the key.
func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s:%t:%t:%s:%d",
		k.Alignment, k.Border, k.Fill, k.Font, k.Hidden, k.Locked, k.NumFormat, k.NumFormatIndex)
}
