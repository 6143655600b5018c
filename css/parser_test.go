package css_test

import (
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"xlsxw/css"
)

func TestParser_ClassRules(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	sheet := p.Parse([]byte(`
.header { font-weight: bold; font-size: 14pt; }
.money, .total { -xlsx-num-format: "#,##0.00"; }
.header { color: #ff0000; }
`), "test.css")

	if len(sheet.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", sheet.Warnings)
	}
	if got := sheet.Classes(); !slices.Equal(got, []string{"header", "money", "total"}) {
		t.Errorf("Classes() = %v", got)
	}
	if got := len(sheet.RulesByClass("header")); got != 2 {
		t.Errorf("expected 2 header rules, got %d", got)
	}

	rule := sheet.RulesByClass("money")[0]
	v, ok := rule.GetProperty("-xlsx-num-format")
	if !ok {
		t.Fatal("num format property is missing")
	}
	if v.Keyword != "#,##0.00" {
		t.Errorf("num format = %q, want unquoted string", v.Keyword)
	}

	size, _ := sheet.RulesByClass("header")[0].GetProperty("font-size")
	if size.Value != 14 || size.Unit != "pt" {
		t.Errorf("font-size = %+v", size)
	}
}

func TestParser_Values(t *testing.T) {
	tests := []struct {
		name    string
		decl    string
		keyword string
		value   float64
		unit    string
		numeric bool
	}{
		{"ident", "text-align: Center", "center", 0, "", false},
		{"dimension", "font-size: 10.5pt", "", 10.5, "pt", true},
		{"number", "font-weight: 700", "", 700, "", true},
		{"zero", "text-indent: 0", "", 0, "", true},
		{"percent", "font-size: 50%", "", 50, "%", true},
		{"hash", "color: #00FF00", "#00FF00", 0, "", false},
		{"string", `-xlsx-num-format: 'd "x" mmm'`, `d "x" mmm`, 0, "", false},
		{"multi", "border: thin  red", "thin red", 0, "", false},
		{"function", "transform: rotate(45deg)", "rotate(45deg)", 0, "", false},
	}

	p := css.NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := p.Parse([]byte(".c { " + tt.decl + "; }"))
			if len(sheet.Rules) != 1 || len(sheet.Rules[0].Declarations) != 1 {
				t.Fatalf("unexpected parse result: %+v", sheet.Rules)
			}
			v := sheet.Rules[0].Declarations[0].Value
			if v.Keyword != tt.keyword {
				t.Errorf("Keyword = %q, want %q", v.Keyword, tt.keyword)
			}
			if v.Value != tt.value || v.Unit != tt.unit {
				t.Errorf("Value = %v%s, want %v%s", v.Value, v.Unit, tt.value, tt.unit)
			}
			if v.IsNumeric() != tt.numeric {
				t.Errorf("IsNumeric() = %v, want %v", v.IsNumeric(), tt.numeric)
			}
		})
	}
}

func TestParser_UnsupportedSelectors(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	sheet := p.Parse([]byte(`
p { color: red; }
.a .b { color: red; }
.a:hover { color: red; }
.ok, td.x { color: red; }
@media print { .z { color: red; } }
`))

	if got := sheet.Classes(); !slices.Equal(got, []string{"ok"}) {
		t.Errorf("Classes() = %v, want [ok]", got)
	}
	if len(sheet.Warnings) != 5 {
		t.Errorf("expected 5 warnings, got %d: %v", len(sheet.Warnings), sheet.Warnings)
	}
	for _, w := range sheet.Warnings[:4] {
		if !strings.HasPrefix(w, "unsupported selector: ") {
			t.Errorf("unexpected warning %q", w)
		}
	}
	if !strings.HasPrefix(sheet.Warnings[4], "unsupported at-rule: @media") {
		t.Errorf("unexpected warning %q", sheet.Warnings[4])
	}
}

func TestStylesheet_String(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(".a{color:red;font-size:12pt}.b{text-align:left}"))

	want := ".a {\n  color: red;\n  font-size: 12pt;\n}\n\n.b {\n  text-align: left;\n}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	again := css.NewParser(nil).Parse([]byte(sheet.String()))
	if again.String() != want {
		t.Errorf("serialized stylesheet does not parse back to itself:\n%s", again.String())
	}
}
