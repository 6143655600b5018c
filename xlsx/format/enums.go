package format

//go:generate go tool go-enum --marshal --names

// Cell alignment. Horizontal and vertical values share single type, the
// format keeps them in separate fields.
// ENUM(general, left, center, right, fill, justify, centerAcross, distributed, top, bottom, verticalCenter, verticalJustify, verticalDistributed)
type Align uint8

// IsHorizontal reports whether alignment applies to horizontal axis.
func (x Align) IsHorizontal() bool {
	return x >= AlignLeft && x <= AlignDistributed
}

// IsVertical reports whether alignment applies to vertical axis.
func (x Align) IsVertical() bool {
	return x >= AlignTop && x <= AlignVerticalDistributed
}

// Cell fill pattern, names are Excel patternType values.
// ENUM(none, solid, mediumGray, darkGray, lightGray, darkHorizontal, darkVertical, darkDown, darkUp, darkGrid, darkTrellis, lightHorizontal, lightVertical, lightDown, lightUp, lightGrid, lightTrellis, gray125, gray0625)
type Pattern uint8

// Font underline.
// ENUM(none, single, double, singleAccounting, doubleAccounting)
type Underline uint8

// Font super/subscript.
// ENUM(none, superscript, subscript)
type Script uint8

// Cell border line style, names are Excel style values.
// ENUM(none, thin, medium, dashed, dotted, thick, double, hair, mediumDashed, dashDot, mediumDashDot, dashDotDot, mediumDashDotDot, slantDashDot)
type BorderStyle uint8

// Direction of diagonal border.
// ENUM(none, up, down, upDown)
type Diagonal uint8
