package utils

import "strings"

// BooleanLiteralsListing enumerates the accepted boolean spellings for messages.
const BooleanLiteralsListing = "true, false, yes, no, on, off, 1, 0"

var booleanLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// ParseBooleanLiteral interprets input as one of the accepted boolean spellings,
// case-insensitively. The second result is false when input is not recognized.
func ParseBooleanLiteral(input string) (bool, bool) {
	parsed, recognized := booleanLiterals[strings.ToLower(strings.TrimSpace(input))]
	return parsed, recognized
}
