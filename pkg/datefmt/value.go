package datefmt

import "strconv"

// Value is the reading a token produces: either a number (unpadded numeric field)
// or text (padded or named field). Which one is part of the token's contract.
type Value struct {
	text    string
	number  int
	numeric bool
}

// Number returns a numeric Value.
func Number(n int) Value {
	return Value{number: n, numeric: true}
}

// Text returns a textual Value.
func Text(s string) Value {
	return Value{text: s}
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.numeric
}

// Int returns the numeric reading, or 0 for text values.
func (v Value) Int() int {
	return v.number
}

// String renders the value; numbers are written in base 10.
func (v Value) String() string {
	if v.numeric {
		return strconv.Itoa(v.number)
	}
	return v.text
}

// Any returns the reading as an int or a string.
func (v Value) Any() any {
	if v.numeric {
		return v.number
	}
	return v.text
}
