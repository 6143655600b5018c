package css

import (
	"io"
	"slices"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "12pt", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "pt", "px", "deg", etc.
	Keyword string  // Keyword if applicable: "bold", "center", unquoted strings
}

// IsNumeric returns true if the value has a numeric component, explicit
// zero included.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Keyword != "" {
		return false
	}
	if v.Value != 0 {
		return true
	}
	if v.Raw != "" {
		first := rune(v.Raw[0])
		return unicode.IsDigit(first) || first == '.' || first == '-' || first == '+'
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Fields splits multi-token value ("thin #ff0000") into words.
func (v Value) Fields() []string {
	return strings.Fields(v.Keyword)
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    Value
}

// Rule represents class rule. Declarations are kept in source order, later
// ones win.
type Rule struct {
	Class        string
	Declarations []Declaration
}

// GetProperty returns the last value set for a property.
func (r Rule) GetProperty(name string) (Value, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return Value{}, false
}

// Stylesheet is a parsed set of named cell formats.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// RulesByClass returns all rules for a class name (without dot) in source
// order.
func (s *Stylesheet) RulesByClass(class string) []Rule {
	var result []Rule
	for _, r := range s.Rules {
		if r.Class == class {
			result = append(result, r)
		}
	}
	return result
}

// Classes returns distinct class names in order of first appearance.
func (s *Stylesheet) Classes() []string {
	var names []string
	for _, r := range s.Rules {
		if !slices.Contains(names, r.Class) {
			names = append(names, r.Class)
		}
	}
	return names
}

// WriteTo serializes stylesheet back to CSS.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, r := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, &r)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (s *Stylesheet) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

func writeRule(w io.Writer, r *Rule) (int, error) {
	var sb strings.Builder
	sb.WriteString("." + r.Class + " {\n")
	for _, d := range r.Declarations {
		sb.WriteString("  " + d.Property + ": " + d.Value.Raw + ";\n")
	}
	sb.WriteString("}\n")
	return io.WriteString(w, sb.String())
}
