package front

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	// Statement keywords. LOOP and below are recognized but have no
	// statement rule yet.
	PULSE TokenKind = iota
	WAIT
	MEASURE
	ENTANGLE
	BROADCAST
	THERMAL
	SYNC
	IF
	ELSE
	LOOP
	BREAK
	FUNCTION
	RETURN

	// Identifiers and literals
	IDENTIFIER
	NUMBER
	STRING
	WAVELENGTH   // 1550nm, 405nm
	DURATION     // 100ns, 1us
	POLARIZATION // H, V, D, L, R

	// Operators. MINUS through GREATER are reserved: the scanner skips
	// the characters today but the categories are part of the wire
	// vocabulary.
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	EQUAL
	NOT_EQUAL
	LESS
	GREATER
	ASSIGN

	// Delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	SEMICOLON
	COLON

	// Specials
	EOF
	NEWLINE
)

var tokenNames = [...]string{
	PULSE:        "PULSE",
	WAIT:         "WAIT",
	MEASURE:      "MEASURE",
	ENTANGLE:     "ENTANGLE",
	BROADCAST:    "BROADCAST",
	THERMAL:      "THERMAL",
	SYNC:         "SYNC",
	IF:           "IF",
	ELSE:         "ELSE",
	LOOP:         "LOOP",
	BREAK:        "BREAK",
	FUNCTION:     "FUNCTION",
	RETURN:       "RETURN",
	IDENTIFIER:   "IDENTIFIER",
	NUMBER:       "NUMBER",
	STRING:       "STRING",
	WAVELENGTH:   "WAVELENGTH",
	DURATION:     "DURATION",
	POLARIZATION: "POLARIZATION",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	MULTIPLY:     "MULTIPLY",
	DIVIDE:       "DIVIDE",
	EQUAL:        "EQUAL",
	NOT_EQUAL:    "NOT_EQUAL",
	LESS:         "LESS",
	GREATER:      "GREATER",
	ASSIGN:       "ASSIGN",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	COMMA:        "COMMA",
	SEMICOLON:    "SEMICOLON",
	COLON:        "COLON",
	EOF:          "EOF",
	NEWLINE:      "NEWLINE",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}

	return tokenNames[k]
}

// Token is one classified span of source text.
//
// Text carries the raw literal: original-case text for identifiers and
// keywords, string contents, the uppercased polarization letter, and the
// full suffixed text of numeric literals. Num carries the normalized value
// of plain NUMBER tokens; unit conversion of suffixed literals happens in
// the parser, not here.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64

	Line int
	Col  int
}

// keywords maps case-folded source text to its keyword TokenKind.
var keywords = map[string]TokenKind{
	"PULSE":     PULSE,
	"WAIT":      WAIT,
	"MEASURE":   MEASURE,
	"ENTANGLE":  ENTANGLE,
	"BROADCAST": BROADCAST,
	"THERMAL":   THERMAL,
	"SYNC":      SYNC,
	"IF":        IF,
	"ELSE":      ELSE,
	"LOOP":      LOOP,
	"BREAK":     BREAK,
	"FUNCTION":  FUNCTION,
	"RETURN":    RETURN,
}
