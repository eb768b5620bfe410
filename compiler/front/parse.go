package front

import (
	"context"
	"fmt"
	"strings"

	"tlog.app/go/tlog"

	"github.com/smokappstore/smopsysql/compiler/ir"
)

type (
	// Parser consumes a token stream and produces one instruction per
	// recognized statement.
	Parser struct {
		tokens []Token
		pos    int

		tr tlog.Span
	}

	// SyntaxError is a grammar violation. It aborts the whole parse:
	// there is no recovery to a later statement.
	SyntaxError struct {
		Msg  string
		Line int
		Got  TokenKind
	}
)

// Parse recognizes statements until EOF. Tokens that do not start a
// statement are skipped without producing an instruction, the first
// grammar violation inside a statement fails the whole call.
func Parse(ctx context.Context, tokens []Token) ([]ir.Instr, error) {
	p := &Parser{
		tokens: tokens,
		tr:     tlog.SpanFromContext(ctx),
	}

	return p.run()
}

func (p *Parser) run() (prog []ir.Instr, err error) {
	for !p.atEnd() {
		p.skipNewlines()

		if p.atEnd() {
			break
		}

		var x ir.Instr

		switch p.peek().Kind {
		case PULSE:
			x, err = p.parsePulse()
		case WAIT:
			x, err = p.parseWait()
		case MEASURE:
			x, err = p.parseMeasure()
		case BROADCAST:
			x, err = p.parseBroadcast()
		case THERMAL:
			x, err = p.parseThermal()
		case SYNC:
			x, err = p.parseSync()
		default:
			// stray tokens between statements are tolerated
			p.advance()
			continue
		}

		if err != nil {
			return nil, err
		}

		p.tr.Printw("statement", "kind", x.Kind(), "instr", x)

		prog = append(prog, x)
	}

	return prog, nil
}

// PULSE <wavelength> <duration> <polarization>
func (p *Parser) parsePulse() (ir.Instr, error) {
	_, err := p.consume(PULSE, "expected PULSE")
	if err != nil {
		return nil, err
	}

	w, err := p.consume(WAVELENGTH, "expected wavelength")
	if err != nil {
		return nil, err
	}

	d, err := p.consume(DURATION, "expected duration")
	if err != nil {
		return nil, err
	}

	pol, err := p.consume(POLARIZATION, "expected polarization")
	if err != nil {
		return nil, err
	}

	p.consumeOptional(SEMICOLON)

	return ir.PulseEmit{
		Wavelength:   w.Text,
		Duration:     d.Text,
		Polarization: pol.Text,
		Laser: ir.LaserParams{
			FrequencyNM:  numValue(trimUnit(w.Text)),
			DurationNS:   pulseDurationNS(d.Text),
			Polarization: pol.Text,
		},
	}, nil
}

// WAIT <duration>
func (p *Parser) parseWait() (ir.Instr, error) {
	_, err := p.consume(WAIT, "expected WAIT")
	if err != nil {
		return nil, err
	}

	d, err := p.consume(DURATION, "expected duration")
	if err != nil {
		return nil, err
	}

	p.consumeOptional(SEMICOLON)

	return ir.Wait{TimeNS: timeToNS(d.Text)}, nil
}

// MEASURE <qubit>
func (p *Parser) parseMeasure() (ir.Instr, error) {
	_, err := p.consume(MEASURE, "expected MEASURE")
	if err != nil {
		return nil, err
	}

	q, err := p.consume(IDENTIFIER, "expected qubit identifier")
	if err != nil {
		return nil, err
	}

	p.consumeOptional(SEMICOLON)

	return ir.Measure{Qubit: q.Text}, nil
}

// BROADCAST <string>
func (p *Parser) parseBroadcast() (ir.Instr, error) {
	_, err := p.consume(BROADCAST, "expected BROADCAST")
	if err != nil {
		return nil, err
	}

	m, err := p.consume(STRING, "expected message")
	if err != nil {
		return nil, err
	}

	p.consumeOptional(SEMICOLON)

	return ir.Broadcast{Message: m.Text}, nil
}

// THERMAL <address> <threshold>
func (p *Parser) parseThermal() (ir.Instr, error) {
	_, err := p.consume(THERMAL, "expected THERMAL")
	if err != nil {
		return nil, err
	}

	addr, err := p.consume(NUMBER, "expected address")
	if err != nil {
		return nil, err
	}

	th, err := p.consume(NUMBER, "expected threshold")
	if err != nil {
		return nil, err
	}

	p.consumeOptional(SEMICOLON)

	return ir.ThermalPageCheck{
		Address:   int(addr.Num),
		Threshold: th.Num,
	}, nil
}

// SYNC <phase>
func (p *Parser) parseSync() (ir.Instr, error) {
	_, err := p.consume(SYNC, "expected SYNC")
	if err != nil {
		return nil, err
	}

	ph, err := p.consume(NUMBER, "expected phase")
	if err != nil {
		return nil, err
	}

	p.consumeOptional(SEMICOLON)

	return ir.PhaseSync{Phase: ph.Num}, nil
}

func (p *Parser) peek() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}

	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) advance() Token {
	tk := p.peek()
	p.pos++

	return tk
}

func (p *Parser) consume(k TokenKind, msg string) (Token, error) {
	tk := p.peek()
	if tk.Kind != k {
		return tk, &SyntaxError{Msg: msg, Line: tk.Line, Got: tk.Kind}
	}

	return p.advance(), nil
}

func (p *Parser) consumeOptional(k TokenKind) bool {
	if p.peek().Kind != k {
		return false
	}

	p.advance()

	return true
}

func (p *Parser) skipNewlines() {
	for p.peek().Kind == NEWLINE {
		p.advance()
	}
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == EOF
}

// timeToNS normalizes a duration literal to nanoseconds. An unrecognized
// unit is taken as already-nanosecond text, per the runtime contract.
func timeToNS(s string) float64 {
	switch {
	case strings.Contains(s, "ns"):
		return numValue(strings.ReplaceAll(s, "ns", ""))
	case strings.Contains(s, "us"):
		return numValue(strings.ReplaceAll(s, "us", "")) * 1e3
	case strings.Contains(s, "ms"):
		return numValue(strings.ReplaceAll(s, "ms", "")) * 1e6
	default:
		return numValue(s)
	}
}

// pulseDurationNS derives the laser duration. Only ns literals carry over,
// anything else is zero. WAIT durations are normalized differently, see
// timeToNS.
func pulseDurationNS(s string) float64 {
	if !strings.Contains(s, "ns") {
		return 0
	}

	return numValue(strings.ReplaceAll(s, "ns", ""))
}

func trimUnit(s string) string {
	i := len(s)

	for i > 0 && isAlpha(s[i-1]) {
		i--
	}

	return s[:i]
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at line %v, got %v", e.Msg, e.Line, e.Got)
}
