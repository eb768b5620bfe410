package front

import (
	"context"
	"strconv"
	"strings"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

// Lexer scans one source buffer into tokens. It never fails: unknown
// characters are skipped, unterminated strings run to the end of input,
// unparsable numeric text becomes zero.
type Lexer struct {
	b []byte

	pos  int
	line int
	col  int

	tokens []Token

	tr tlog.Span
}

// Tokenize scans src completely. The returned stream always ends with
// exactly one EOF token.
func Tokenize(ctx context.Context, src []byte) []Token {
	l := &Lexer{
		b:    src,
		line: 1,
		col:  1,
		tr:   tlog.SpanFromContext(ctx),
	}

	return l.run()
}

func (l *Lexer) run() []Token {
	for l.pos < len(l.b) {
		l.skipBlanks()

		if l.pos == len(l.b) {
			break
		}

		c := l.b[l.pos]

		switch {
		case c == '\n':
			l.emit(Token{Kind: NEWLINE, Text: "\n", Line: l.line, Col: l.col})
			l.pos++
			l.line++
			l.col = 1
		case c == '"':
			l.scanString()
		case c >= '0' && c <= '9':
			l.scanNumber()
		case isAlpha(c) || c == '_':
			l.scanWord()
		default:
			l.scanOperator()
		}
	}

	l.emit(Token{Kind: EOF, Line: l.line, Col: l.col})

	return l.tokens
}

// skipBlanks consumes spaces, tabs and line comments. A comment stops at
// the line break so the NEWLINE token is still produced.
func (l *Lexer) skipBlanks() {
	for l.pos < len(l.b) {
		switch {
		case l.b[l.pos] == ' ' || l.b[l.pos] == '\t':
			l.pos++
			l.col++
		case l.b[l.pos] == '/' && l.pos+1 < len(l.b) && l.b[l.pos+1] == '/':
			for l.pos < len(l.b) && l.b[l.pos] != '\n' {
				l.pos++
				l.col++
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanString() {
	col := l.col

	l.pos++ // opening quote
	l.col++

	st := l.pos

	for l.pos < len(l.b) && l.b[l.pos] != '"' {
		l.pos++
		l.col++
	}

	text := string(l.b[st:l.pos])

	if l.pos < len(l.b) { // closing quote, unless input ended first
		l.pos++
		l.col++
	}

	l.emit(Token{Kind: STRING, Text: text, Line: l.line, Col: col})
}

func (l *Lexer) scanNumber() {
	col := l.col
	st := l.pos
	dot := false
	hex := false

loop:
	for l.pos < len(l.b) {
		c := l.b[l.pos]

		switch {
		case c >= '0' && c <= '9':
		case !dot && c == '.':
			dot = true
		case c == 'x' && l.pos == st+1 && l.b[st] == '0':
			hex = true
		case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		default:
			break loop
		}

		l.pos++
		l.col++
	}

	num := string(l.b[st:l.pos])

	sst := l.pos

	for l.pos < len(l.b) && isAlpha(l.b[l.pos]) {
		l.pos++
		l.col++
	}

	suffix := string(l.b[sst:l.pos])

	switch suffix {
	case "nm", "um", "mm":
		l.emit(Token{Kind: WAVELENGTH, Text: num + suffix, Line: l.line, Col: col})
	case "ns", "us", "ms", "s":
		l.emit(Token{Kind: DURATION, Text: num + suffix, Line: l.line, Col: col})
	default:
		l.emit(Token{Kind: NUMBER, Text: num + suffix, Num: numValue(num), Line: l.line, Col: col})
	}
}

func (l *Lexer) scanWord() {
	col := l.col
	st := l.pos

	for l.pos < len(l.b) && (isAlpha(l.b[l.pos]) || l.b[l.pos] >= '0' && l.b[l.pos] <= '9' || l.b[l.pos] == '_') {
		l.pos++
		l.col++
	}

	text := string(l.b[st:l.pos])
	upper := strings.ToUpper(text)

	if k, ok := keywords[upper]; ok {
		l.emit(Token{Kind: k, Text: text, Line: l.line, Col: col})
		return
	}

	switch upper {
	case "H", "V", "D", "L", "R":
		l.emit(Token{Kind: POLARIZATION, Text: upper, Line: l.line, Col: col})
	default:
		l.emit(Token{Kind: IDENTIFIER, Text: text, Line: l.line, Col: col})
	}
}

func (l *Lexer) scanOperator() {
	col := l.col

	var k TokenKind

	switch l.b[l.pos] {
	case '(':
		k = LPAREN
	case ')':
		k = RPAREN
	case '{':
		k = LBRACE
	case '}':
		k = RBRACE
	case ',':
		k = COMMA
	case ';':
		k = SEMICOLON
	case '+':
		k = PLUS
	case '=':
		l.pos++
		l.col++

		if l.pos < len(l.b) && l.b[l.pos] == '=' {
			l.pos++
			l.col++

			l.emit(Token{Kind: EQUAL, Text: "==", Line: l.line, Col: col})
		} else {
			l.emit(Token{Kind: ASSIGN, Text: "=", Line: l.line, Col: col})
		}

		return
	default:
		// unrecognized characters produce no token and do not stop the scan
		l.pos++
		l.col++

		return
	}

	l.emit(Token{Kind: k, Text: string(l.b[l.pos]), Line: l.line, Col: col})
	l.pos++
	l.col++
}

func (l *Lexer) emit(tk Token) {
	if l.tr.If("token") {
		l.tr.Printw("token", "kind", tk.Kind, "text", tk.Text, "line", tk.Line, "col", tk.Col, "from", loc.Callers(1, 2))
	}

	l.tokens = append(l.tokens, tk)
}

// numValue parses a numeric literal with its unit already stripped.
// Failure yields zero, the lexer has no error path.
func numValue(s string) float64 {
	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0
		}

		return float64(v)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
