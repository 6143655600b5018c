package styles

// First index available for custom number formats.
const customNumFmtBase = 164

// NumFmt is custom number format definition.
type NumFmt struct {
	ID   int
	Code string
}

// builtinNumFmts are format codes of Excel's legacy built-in formats. Only
// needed when built-in format has to be spelled out (dxf records).
var builtinNumFmts = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  "($#,##0_);($#,##0)",
	6:  "($#,##0_);[Red]($#,##0)",
	7:  "($#,##0.00_);($#,##0.00)",
	8:  "($#,##0.00_);[Red]($#,##0.00)",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "m/d/yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "(#,##0_);(#,##0)",
	38: "(#,##0_);[Red](#,##0)",
	39: "(#,##0.00_);(#,##0.00)",
	40: "(#,##0.00_);[Red](#,##0.00)",
	41: `_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`,
	42: `_($* #,##0_);_($* (#,##0);_($* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`,
	44: `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
}

// numFmtCode returns format code to be written for id.
func numFmtCode(id int, code string) string {
	if id >= customNumFmtBase {
		return code
	}
	if c, ok := builtinNumFmts[id]; ok {
		return c
	}
	return "General"
}

// numFmtID resolves number format of the format to numFmtId, registering new
// custom formats. Legacy index always wins over format string.
func (t *Table) numFmtID(code string, index uint16) int {
	if index > 0 {
		return int(index)
	}
	switch code {
	case "", "General":
		return 0
	case "0":
		// Excel stores "0" as built-in format 1
		return 1
	}
	if id, ok := t.numFmts[code]; ok {
		return id
	}
	id := customNumFmtBase + len(t.customNumFmts)
	t.numFmts[code] = id
	t.customNumFmts = append(t.customNumFmts, NumFmt{ID: id, Code: code})
	return id
}
