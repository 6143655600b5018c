package convert

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"xlsxw/xlsx"
	"xlsxw/xlsx/format"
)

// Description is YAML definition of a single workbook.
type Description struct {
	Properties PropertiesDescription `yaml:"properties"`
	// CSS file with named formats, relative to description location
	Stylesheet string                       `yaml:"stylesheet"`
	Formats    map[string]FormatDescription `yaml:"formats"`
	Sheets     []SheetDescription           `yaml:"sheets"`
}

type PropertiesDescription struct {
	Title         string `yaml:"title"`
	Subject       string `yaml:"subject"`
	Author        string `yaml:"author"`
	Manager       string `yaml:"manager"`
	Company       string `yaml:"company"`
	Category      string `yaml:"category"`
	Keywords      string `yaml:"keywords"`
	Comments      string `yaml:"comments"`
	Status        string `yaml:"status"`
	Language      string `yaml:"language"`
	HyperlinkBase string `yaml:"hyperlink_base"`
}

// FormatDescription defines named format inline. Base names format from
// stylesheet (or previously defined inline one) to start from.
type FormatDescription struct {
	Base           string              `yaml:"base"`
	FontName       string              `yaml:"font_name"`
	FontSize       float64             `yaml:"font_size"`
	FontColor      *format.Color       `yaml:"font_color"`
	Bold           bool                `yaml:"bold"`
	Italic         bool                `yaml:"italic"`
	Strikeout      bool                `yaml:"strikeout"`
	Underline      *format.Underline   `yaml:"underline"`
	Script         *format.Script      `yaml:"script"`
	Align          *format.Align       `yaml:"align"`
	VerticalAlign  *format.Align       `yaml:"vertical_align"`
	Wrap           bool                `yaml:"wrap"`
	Indent         uint8               `yaml:"indent"`
	Rotation       int16               `yaml:"rotation"`
	Shrink         bool                `yaml:"shrink"`
	Pattern        *format.Pattern     `yaml:"pattern"`
	BgColor        *format.Color       `yaml:"bg_color"`
	FgColor        *format.Color       `yaml:"fg_color"`
	Border         *format.BorderStyle `yaml:"border"`
	BorderColor    *format.Color       `yaml:"border_color"`
	NumFormat      string              `yaml:"num_format"`
	NumFormatIndex *uint8              `yaml:"num_format_index"`
	Unlocked       bool                `yaml:"unlocked"`
	Hidden         bool                `yaml:"hidden"`
}

type SheetDescription struct {
	Name        string                   `yaml:"name"`
	Columns     []ColumnDescription      `yaml:"columns"`
	Rows        []RowDescription         `yaml:"rows"`
	Cells       []CellDescription        `yaml:"cells"`
	Conditional []ConditionalDescription `yaml:"conditional"`
}

// ColumnDescription covers "B" or "B:D" columns.
type ColumnDescription struct {
	Range  string  `yaml:"range"`
	Width  float64 `yaml:"width"`
	Format string  `yaml:"format"`
}

// RowDescription uses 1-based row number the way Excel shows it.
type RowDescription struct {
	Row    uint32  `yaml:"row"`
	Height float64 `yaml:"height"`
	Format string  `yaml:"format"`
}

// CellDescription holds at most one of the values, cell without value is
// blank.
type CellDescription struct {
	Ref     string   `yaml:"ref"`
	String  *string  `yaml:"string"`
	Number  *float64 `yaml:"number"`
	Bool    *bool    `yaml:"bool"`
	Formula string   `yaml:"formula"`
	Format  string   `yaml:"format"`
}

type ConditionalDescription struct {
	Range    string        `yaml:"range"`
	Operator xlsx.Operator `yaml:"operator"`
	Value    string        `yaml:"value"`
	Maximum  string        `yaml:"maximum"`
	Format   string        `yaml:"format"`
}

// ReadDescription decodes description, unknown fields are errors.
func ReadDescription(r io.Reader) (*Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var desc Description
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode workbook description: %w", err)
	}
	return &desc, nil
}

// Apply sets described properties on top of f.
func (fd *FormatDescription) Apply(f *format.Format) *format.Format {
	if fd.FontName != "" {
		f.SetFontName(fd.FontName)
	}
	if fd.FontSize != 0 {
		f.SetFontSize(fd.FontSize)
	}
	if fd.FontColor != nil {
		f.SetFontColor(*fd.FontColor)
	}
	if fd.Bold {
		f.SetBold()
	}
	if fd.Italic {
		f.SetItalic()
	}
	if fd.Strikeout {
		f.SetFontStrikeout()
	}
	if fd.Underline != nil {
		f.SetUnderline(*fd.Underline)
	}
	if fd.Script != nil {
		f.SetFontScript(*fd.Script)
	}
	if fd.Align != nil {
		f.SetAlign(*fd.Align)
	}
	if fd.VerticalAlign != nil {
		f.SetAlign(*fd.VerticalAlign)
	}
	if fd.Wrap {
		f.SetTextWrap()
	}
	if fd.Indent != 0 {
		f.SetIndent(fd.Indent)
	}
	if fd.Rotation != 0 {
		f.SetRotation(fd.Rotation)
	}
	if fd.Shrink {
		f.SetShrink()
	}
	if fd.Pattern != nil {
		f.SetPattern(*fd.Pattern)
	}
	if fd.BgColor != nil {
		f.SetBackgroundColor(*fd.BgColor)
	}
	if fd.FgColor != nil {
		f.SetForegroundColor(*fd.FgColor)
	}
	if fd.Border != nil {
		f.SetBorder(*fd.Border)
	}
	if fd.BorderColor != nil {
		f.SetBorderColor(*fd.BorderColor)
	}
	if fd.NumFormat != "" {
		f.SetNumFormat(fd.NumFormat)
	}
	if fd.NumFormatIndex != nil {
		f.SetNumFormatIndex(*fd.NumFormatIndex)
	}
	if fd.Unlocked {
		f.SetUnlocked()
	}
	if fd.Hidden {
		f.SetHidden()
	}
	return f
}

// columnRange parses "B" or "B:D".
func columnRange(s string) (uint16, uint16, error) {
	first, last, found := strings.Cut(s, ":")
	fc, err := xlsx.ParseColumnName(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, err
	}
	if !found {
		return fc, fc, nil
	}
	lc, err := xlsx.ParseColumnName(strings.TrimSpace(last))
	if err != nil {
		return 0, 0, err
	}
	return fc, lc, nil
}
