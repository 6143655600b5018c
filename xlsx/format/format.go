// Package format defines cell format descriptor: all presentation properties
// of a cell and their structural keys used for deduplication.
package format

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ErrLocked is reported when registered format is modified.
var ErrLocked = errors.New("format is registered and cannot be changed")

// ValidationError describes rejected setter value. Format is left unchanged.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %v: %s", e.Field, e.Value, e.Reason)
}

// Resolved holds indexes assigned to format by the style table.
type Resolved struct {
	XFIndex     int
	FontIndex   int
	FillIndex   int
	BorderIndex int
	NumFormatID int
	HasFont     bool
	HasFill     bool
	HasBorder   bool
}

// Format is cell format builder. Setters modify format in place and return it
// so calls could be chained. Invalid values are rejected, leave format
// unchanged and are collected, see Err.
type Format struct {
	font           Font
	border         Border
	fill           Fill
	alignment      Alignment
	protection     Protection
	numFormat      string
	numFormatIndex uint16

	resolved   Resolved
	registered bool
	dxfIndex   int
	dxf        bool

	errs error
}

// New returns format with Excel defaults: Calibri 11, locked, no alignment,
// border or fill.
func New() *Format {
	return &Format{
		font:       DefaultFont,
		border:     DefaultBorder,
		fill:       DefaultFill,
		protection: Protection{Locked: true},
	}
}

// Clone returns unregistered copy of the format. Rejected values travel with
// the copy, so they are reported when copy is registered. Attempts to change
// registered format do not.
func (f *Format) Clone() *Format {
	var errs error
	for _, err := range multierr.Errors(f.errs) {
		var verr *ValidationError
		if errors.As(err, &verr) {
			errs = multierr.Append(errs, err)
		}
	}
	return &Format{
		errs:           errs,
		font:           f.font,
		border:         f.border,
		fill:           f.fill,
		alignment:      f.alignment,
		protection:     f.protection,
		numFormat:      f.numFormat,
		numFormatIndex: f.numFormatIndex,
	}
}

// Err returns all rejected values combined or nil.
func (f *Format) Err() error {
	return f.errs
}

// Errors returns rejected values one by one.
func (f *Format) Errors() []error {
	return multierr.Errors(f.errs)
}

func (f *Format) reject(field string, value any, reason string) *Format {
	f.errs = multierr.Append(f.errs, &ValidationError{Field: field, Value: value, Reason: reason})
	return f
}

// mutable reports whether setter may proceed, recording error otherwise.
func (f *Format) mutable(field string) bool {
	if f.registered {
		f.errs = multierr.Append(f.errs, fmt.Errorf("%s: %w", field, ErrLocked))
		return false
	}
	return true
}

func (f *Format) color(field string, c Color, dst *Color) *Format {
	if !f.mutable(field) {
		return f
	}
	if !c.IsValid() {
		return f.reject(field, fmt.Sprintf("0x%X", uint64(c)), "RGB color must be in the range 0x000000 - 0xFFFFFF")
	}
	*dst = c
	return f
}

// Resolve stores indexes assigned by the style table and locks the format.
func (f *Format) Resolve(r Resolved) {
	f.resolved = r
	f.registered = true
}

// ResolveDXF stores differential format index and locks the format.
func (f *Format) ResolveDXF(index int) {
	f.dxfIndex = index
	f.dxf = true
	f.registered = true
}

// Registered reports whether format was given to the style table.
func (f *Format) Registered() bool {
	return f.registered
}

// Resolved returns indexes assigned by the style table.
func (f *Format) Resolved() Resolved {
	return f.resolved
}

// XFIndex is index of the cell style record, valid after registration.
func (f *Format) XFIndex() int {
	return f.resolved.XFIndex
}

// DXFIndex returns differential format index and whether it was assigned.
func (f *Format) DXFIndex() (int, bool) {
	return f.dxfIndex, f.dxf
}

func (f *Format) Font() Font             { return f.font }
func (f *Format) Border() Border         { return f.border }
func (f *Format) Fill() Fill             { return f.fill }
func (f *Format) Alignment() Alignment   { return f.alignment }
func (f *Format) Protection() Protection { return f.protection }

// NumFormat returns number format string and legacy built-in index.
func (f *Format) NumFormat() (string, uint16) {
	return f.numFormat, f.numFormatIndex
}

// Key returns full structural identity of the format.
func (f *Format) Key() Key {
	return Key{
		Alignment:      f.alignment,
		Border:         f.border,
		Fill:           f.fill,
		Font:           f.font,
		Hidden:         f.protection.Hidden,
		Locked:         f.protection.Locked,
		NumFormat:      f.numFormat,
		NumFormatIndex: f.numFormatIndex,
	}
}

func (f *Format) HasAlignment() bool   { return f.alignment.HasAlignment() }
func (f *Format) ApplyAlignment() bool { return f.alignment.ApplyAlignment() }
func (f *Format) HasProtection() bool  { return f.protection.HasProtection() }

// HasFont reports whether font differs from the default one in slot 0.
func (f *Format) HasFont() bool { return f.font != DefaultFont }

// HasFill reports whether fill, as stored for cells, differs from the
// default "none" fill.
func (f *Format) HasFill() bool { return f.fill.Normalized() != DefaultFill }

// HasBorder reports whether border differs from the empty one, colors of
// absent lines count.
func (f *Format) HasBorder() bool { return f.border != DefaultBorder }

// Number format.

// SetNumFormat sets number format string, e.g. "0.00" or "d mmm yyyy".
func (f *Format) SetNumFormat(s string) *Format {
	if f.mutable("num_format") {
		f.numFormat = s
	}
	return f
}

// SetNumFormatIndex selects one of Excel's built-in legacy number formats.
// Index is not checked.
func (f *Format) SetNumFormatIndex(index uint8) *Format {
	if f.mutable("num_format_index") {
		f.numFormatIndex = uint16(index)
	}
	return f
}

// Font.

func (f *Format) SetBold() *Format {
	if f.mutable("bold") {
		f.font.Bold = true
	}
	return f
}

func (f *Format) SetItalic() *Format {
	if f.mutable("italic") {
		f.font.Italic = true
	}
	return f
}

func (f *Format) SetFontStrikeout() *Format {
	if f.mutable("font_strikeout") {
		f.font.Strikeout = true
	}
	return f
}

func (f *Format) SetFontCondense() *Format {
	if f.mutable("font_condense") {
		f.font.Condense = true
	}
	return f
}

func (f *Format) SetFontExtend() *Format {
	if f.mutable("font_extend") {
		f.font.Extend = true
	}
	return f
}

func (f *Format) SetFontColor(c Color) *Format {
	return f.color("font_color", c, &f.font.Color)
}

func (f *Format) SetFontName(name string) *Format {
	if !f.mutable("font_name") {
		return f
	}
	if len(name) == 0 {
		return f.reject("font_name", name, "font name cannot be empty")
	}
	f.font.Name = name
	return f
}

// SetFontSize sets font size in points.
func (f *Format) SetFontSize(size float64) *Format {
	if !f.mutable("font_size") {
		return f
	}
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 || size > 409 {
		return f.reject("font_size", size, "font size must be in the range 1 - 409")
	}
	f.font.Size = size
	return f
}

// SetFontScheme is rarely needed, Calibri gets "minor" scheme automatically.
func (f *Format) SetFontScheme(scheme string) *Format {
	if f.mutable("font_scheme") {
		f.font.Scheme = scheme
	}
	return f
}

func (f *Format) SetFontFamily(family uint8) *Format {
	if f.mutable("font_family") {
		f.font.Family = family
	}
	return f
}

func (f *Format) SetFontCharset(charset uint8) *Format {
	if f.mutable("font_charset") {
		f.font.Charset = charset
	}
	return f
}

// SetTheme sets font theme color index.
func (f *Format) SetTheme(theme uint8) *Format {
	if f.mutable("theme") {
		f.font.Theme = theme
	}
	return f
}

func (f *Format) SetUnderline(u Underline) *Format {
	if !f.mutable("underline") {
		return f
	}
	if !u.IsValid() {
		return f.reject("underline", uint8(u), "unknown underline type")
	}
	f.font.Underline = u
	return f
}

func (f *Format) SetFontScript(s Script) *Format {
	if !f.mutable("font_script") {
		return f
	}
	if !s.IsValid() {
		return f.reject("font_script", uint8(s), "unknown font script")
	}
	f.font.Script = s
	return f
}

// Alignment.

// SetAlign sets horizontal or vertical alignment depending on the value.
// AlignGeneral resets both.
func (f *Format) SetAlign(a Align) *Format {
	if !f.mutable("align") {
		return f
	}
	switch {
	case a == AlignGeneral:
		f.alignment.Horizontal = AlignGeneral
		f.alignment.Vertical = AlignGeneral
	case a.IsHorizontal():
		f.alignment.Horizontal = a
	case a.IsVertical():
		f.alignment.Vertical = a
	default:
		return f.reject("align", uint8(a), "unknown alignment")
	}
	return f
}

func (f *Format) SetTextWrap() *Format {
	if f.mutable("text_wrap") {
		f.alignment.TextWrap = true
	}
	return f
}

// SetIndent sets indentation level.
func (f *Format) SetIndent(level uint8) *Format {
	if f.mutable("indent") {
		f.alignment.Indent = level
	}
	return f
}

// SetRotation sets text angle. Accepted values are -90..90 and 270 (stacked
// text). Negative angles are stored the way Excel encodes them: 90 + |angle|.
func (f *Format) SetRotation(angle int16) *Format {
	if !f.mutable("rotation") {
		return f
	}
	switch {
	case angle == 270:
		f.alignment.Rotation = 255
	case angle >= -90 && angle < 0:
		f.alignment.Rotation = 90 - angle
	case angle >= 0 && angle <= 90:
		f.alignment.Rotation = angle
	default:
		return f.reject("rotation", angle, "angle must be in the range -90 <= angle <= 90 or 270")
	}
	return f
}

// SetReadingDirection sets 0 (context), 1 (left to right) or 2 (right to left).
func (f *Format) SetReadingDirection(dir uint8) *Format {
	if !f.mutable("reading_direction") {
		return f
	}
	if dir > 2 {
		return f.reject("reading_direction", dir, "reading direction must be 0, 1 or 2")
	}
	f.alignment.ReadingDirection = dir
	return f
}

func (f *Format) SetShrink() *Format {
	if f.mutable("shrink") {
		f.alignment.Shrink = true
	}
	return f
}

func (f *Format) SetJustifyLast() *Format {
	if f.mutable("justify_last") {
		f.alignment.JustifyLast = true
	}
	return f
}

// Fill.

func (f *Format) SetPattern(p Pattern) *Format {
	if !f.mutable("pattern") {
		return f
	}
	if !p.IsValid() {
		return f.reject("pattern", uint8(p), "unknown pattern")
	}
	f.fill.Pattern = p
	return f
}

// SetBackgroundColor sets cell background. Without pattern solid fill is
// assumed.
func (f *Format) SetBackgroundColor(c Color) *Format {
	return f.color("background_color", c, &f.fill.Background)
}

func (f *Format) SetForegroundColor(c Color) *Format {
	return f.color("foreground_color", c, &f.fill.Foreground)
}

// Border.

func (f *Format) border1(field string, s BorderStyle, dst *BorderStyle) *Format {
	if !f.mutable(field) {
		return f
	}
	if !s.IsValid() {
		return f.reject(field, uint8(s), "unknown border style")
	}
	*dst = s
	return f
}

// SetBorder sets style of all four sides.
func (f *Format) SetBorder(s BorderStyle) *Format {
	f.SetBorderTop(s)
	f.SetBorderBottom(s)
	f.SetBorderLeft(s)
	return f.SetBorderRight(s)
}

// SetBorderColor sets color of all four sides.
func (f *Format) SetBorderColor(c Color) *Format {
	f.SetBorderTopColor(c)
	f.SetBorderBottomColor(c)
	f.SetBorderLeftColor(c)
	return f.SetBorderRightColor(c)
}

func (f *Format) SetBorderTop(s BorderStyle) *Format {
	return f.border1("border_top", s, &f.border.Top)
}

func (f *Format) SetBorderBottom(s BorderStyle) *Format {
	return f.border1("border_bottom", s, &f.border.Bottom)
}

func (f *Format) SetBorderLeft(s BorderStyle) *Format {
	return f.border1("border_left", s, &f.border.Left)
}

func (f *Format) SetBorderRight(s BorderStyle) *Format {
	return f.border1("border_right", s, &f.border.Right)
}

func (f *Format) SetBorderDiagonal(s BorderStyle) *Format {
	return f.border1("border_diagonal", s, &f.border.Diagonal)
}

func (f *Format) SetBorderTopColor(c Color) *Format {
	return f.color("border_top_color", c, &f.border.TopColor)
}

func (f *Format) SetBorderBottomColor(c Color) *Format {
	return f.color("border_bottom_color", c, &f.border.BottomColor)
}

func (f *Format) SetBorderLeftColor(c Color) *Format {
	return f.color("border_left_color", c, &f.border.LeftColor)
}

func (f *Format) SetBorderRightColor(c Color) *Format {
	return f.color("border_right_color", c, &f.border.RightColor)
}

func (f *Format) SetBorderDiagonalColor(c Color) *Format {
	return f.color("border_diagonal_color", c, &f.border.DiagonalColor)
}

func (f *Format) SetBorderDiagonalType(d Diagonal) *Format {
	if !f.mutable("border_diagonal_type") {
		return f
	}
	if !d.IsValid() {
		return f.reject("border_diagonal_type", uint8(d), "unknown diagonal type")
	}
	f.border.DiagonalType = d
	return f
}

// Protection.

// SetUnlocked allows editing the cell when worksheet is protected.
func (f *Format) SetUnlocked() *Format {
	if f.mutable("locked") {
		f.protection.Locked = false
	}
	return f
}

// SetHidden hides formulas when worksheet is protected.
func (f *Format) SetHidden() *Format {
	if f.mutable("hidden") {
		f.protection.Hidden = true
	}
	return f
}
