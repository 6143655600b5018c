package css

import (
	"strconv"
	"strings"

	"xlsxw/xlsx/format"
)

// Formats builds cell format for every class. Rules for the same class are
// applied in source order on top of each other. Properties which cannot be
// mapped are reported in Warnings.
func (s *Stylesheet) Formats() map[string]*format.Format {
	out := make(map[string]*format.Format)
	for _, r := range s.Rules {
		f, ok := out[r.Class]
		if !ok {
			f = format.New()
			out[r.Class] = f
		}
		for _, d := range r.Declarations {
			if !apply(f, d) {
				warnf(s, r.Class, "unsupported value %q for %s", d.Value.Raw, d.Property)
			}
		}
	}
	for _, class := range s.Classes() {
		for _, err := range out[class].Errors() {
			warnf(s, class, "%v", err)
		}
	}
	return out
}

var (
	textAlign = map[string]format.Align{
		"left":          format.AlignLeft,
		"center":        format.AlignCenter,
		"right":         format.AlignRight,
		"justify":       format.AlignJustify,
		"fill":          format.AlignFill,
		"center-across": format.AlignCenterAcross,
		"distributed":   format.AlignDistributed,
		"general":       format.AlignGeneral,
	}
	verticalAlign = map[string]format.Align{
		"top":         format.AlignTop,
		"middle":      format.AlignVerticalCenter,
		"bottom":      format.AlignBottom,
		"justify":     format.AlignVerticalJustify,
		"distributed": format.AlignVerticalDistributed,
	}
)

// apply maps single declaration onto format, false means declaration was
// not understood.
func apply(f *format.Format, d Declaration) bool {
	v := d.Value
	switch d.Property {
	case "font-family":
		name, _, _ := strings.Cut(v.Raw, ",")
		if name = unquote(name); name == "" {
			return false
		}
		f.SetFontName(name)
	case "font-size":
		size, ok := points(v)
		if !ok {
			return false
		}
		f.SetFontSize(size)
	case "font-weight":
		switch {
		case v.Keyword == "bold" || v.Keyword == "bolder" || (v.IsNumeric() && v.Value >= 600):
			f.SetBold()
		case v.Keyword == "normal" || v.IsNumeric():
		default:
			return false
		}
	case "font-style":
		switch v.Keyword {
		case "italic", "oblique":
			f.SetItalic()
		case "normal":
		default:
			return false
		}
	case "text-decoration":
		for _, word := range v.Fields() {
			switch strings.ToLower(word) {
			case "underline":
				f.SetUnderline(format.UnderlineSingle)
			case "double-underline":
				f.SetUnderline(format.UnderlineDouble)
			case "line-through":
				f.SetFontStrikeout()
			case "none":
			default:
				return false
			}
		}
	case "vertical-align":
		switch v.Keyword {
		case "super":
			f.SetFontScript(format.ScriptSuperscript)
		case "sub":
			f.SetFontScript(format.ScriptSubscript)
		default:
			a, ok := verticalAlign[v.Keyword]
			if !ok {
				return false
			}
			f.SetAlign(a)
		}
	case "color":
		return withColor(v.Keyword, f.SetFontColor)
	case "background-color":
		return withColor(v.Keyword, f.SetBackgroundColor)
	case "text-align":
		a, ok := textAlign[v.Keyword]
		if !ok {
			return false
		}
		f.SetAlign(a)
	case "white-space":
		switch v.Keyword {
		case "normal", "pre-wrap":
			f.SetTextWrap()
		case "nowrap":
		default:
			return false
		}
	case "text-indent":
		if !v.IsNumeric() || v.Value < 0 || v.Value > 255 {
			return false
		}
		f.SetIndent(uint8(v.Value))
	case "transform":
		angle, ok := rotation(v.Raw)
		if !ok {
			return false
		}
		// CSS turns clockwise, Excel counterclockwise
		f.SetRotation(-angle)
	case "border":
		return border(v, f.SetBorder, f.SetBorderColor)
	case "border-top":
		return border(v, f.SetBorderTop, f.SetBorderTopColor)
	case "border-bottom":
		return border(v, f.SetBorderBottom, f.SetBorderBottomColor)
	case "border-left":
		return border(v, f.SetBorderLeft, f.SetBorderLeftColor)
	case "border-right":
		return border(v, f.SetBorderRight, f.SetBorderRightColor)
	case "-xlsx-diagonal":
		fields := v.Fields()
		if len(fields) == 0 {
			return false
		}
		dt, err := parseFold(format.DiagonalNames(), format.ParseDiagonal, fields[0])
		if err != nil {
			return false
		}
		f.SetBorderDiagonalType(dt)
		return border(Value{Raw: v.Raw, Keyword: strings.Join(fields[1:], " ")}, f.SetBorderDiagonal, f.SetBorderDiagonalColor)
	case "-xlsx-num-format":
		if v.IsNumeric() {
			if v.Value < 0 || v.Value > 255 || v.Value != float64(int(v.Value)) {
				return false
			}
			f.SetNumFormatIndex(uint8(v.Value))
			return true
		}
		if v.Keyword == "" {
			return false
		}
		f.SetNumFormat(v.Keyword)
	case "-xlsx-pattern":
		p, err := parseFold(format.PatternNames(), format.ParsePattern, v.Keyword)
		if err != nil {
			return false
		}
		f.SetPattern(p)
	case "-xlsx-fg-color":
		return withColor(v.Keyword, f.SetForegroundColor)
	case "-xlsx-shrink":
		return flag(v, f.SetShrink)
	case "-xlsx-hidden":
		return flag(v, f.SetHidden)
	case "-xlsx-locked":
		on, ok := boolean(v)
		if !ok {
			return false
		}
		if !on {
			f.SetUnlocked()
		}
	default:
		return false
	}
	return true
}

// points converts font size into points.
func points(v Value) (float64, bool) {
	if !v.IsNumeric() {
		return 0, false
	}
	switch v.Unit {
	case "", "pt":
		return v.Value, true
	case "px":
		return v.Value * 0.75, true
	default:
		return 0, false
	}
}

func rotation(raw string) (int16, bool) {
	arg, found := strings.CutPrefix(strings.ToLower(strings.TrimSpace(raw)), "rotate(")
	if !found {
		return 0, false
	}
	arg, found = strings.CutSuffix(arg, ")")
	if !found {
		return 0, false
	}
	arg = strings.TrimSuffix(strings.TrimSpace(arg), "deg")
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 16)
	if err != nil {
		return 0, false
	}
	return int16(n), true
}

func withColor(s string, set func(format.Color) *format.Format) bool {
	c, err := format.ParseColor(s)
	if err != nil {
		return false
	}
	set(c)
	return true
}

// border accepts "<style> [<color>]", CSS "solid" means thin line.
func border(v Value, style func(format.BorderStyle) *format.Format, color func(format.Color) *format.Format) bool {
	fields := v.Fields()
	if len(fields) == 0 || len(fields) > 2 {
		return false
	}
	name := fields[0]
	if name == "solid" {
		name = "thin"
	}
	bs, err := parseFold(format.BorderStyleNames(), format.ParseBorderStyle, name)
	if err != nil {
		return false
	}
	style(bs)
	if len(fields) == 2 {
		return withColor(fields[1], color)
	}
	return true
}

// parseFold parses enum value ignoring case, identifiers come lowercased.
func parseFold[T any](names []string, parse func(string) (T, error), s string) (T, error) {
	for _, n := range names {
		if strings.EqualFold(n, s) {
			return parse(n)
		}
	}
	return parse(s)
}

func boolean(v Value) (bool, bool) {
	switch v.Keyword {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	if v.IsNumeric() && v.Unit == "" {
		return v.Value != 0, true
	}
	return false, false
}

func flag(v Value, set func() *format.Format) bool {
	on, ok := boolean(v)
	if ok && on {
		set()
	}
	return ok
}
