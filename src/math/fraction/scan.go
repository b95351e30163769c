package fraction

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse builds a Frac from one of the three accepted literal shapes: "N",
// "N/D", or "W N/D", with optional ASCII space or tab padding. The result
// is stored as scanned, not reduced.
//
// A lone integer literal "N" stores N as both numerator and denominator,
// so it evaluates to one rather than N/1. This contradicts the documented
// grammar but is the inherited external contract, kept as observed.
//
// Mixed input is collapsed to improper at parse time: "3 1/2" yields
// numerator 7 over denominator 2 with a zero whole part.
func Parse(s string) (Frac, error) {
	return parseFrac(s, false)
}

// ParseSimplified parses s like Parse and reduces the result as a final
// step. The "N" shape returns before simplification applies.
func ParseSimplified(s string) (Frac, error) {
	return parseFrac(s, true)
}

func parseFrac(s string, simplify bool) (Frac, error) {
	p := parser{in: s}

	p.skipSpace()
	num, err := p.digits()
	if err != nil {
		return Frac{}, err
	}

	if p.eof() {
		// Lone integer: both fields get N. See Parse.
		return Frac{num: num, den: num}, nil
	}

	whole := 0
	den := 0
	switch p.next() {
	case ' ':
		whole = num
		p.skipSpace()
		num, err = p.digits()
		if err != nil {
			return Frac{}, err
		}
		if p.eof() || p.peek() != '/' {
			return Frac{}, ErrInvalidFormat
		}
		p.pos++
		p.skipSpace()
		den, err = p.digits()
		if err != nil {
			return Frac{}, err
		}
	case '/':
		p.skipSpace()
		den, err = p.digits()
		if err != nil {
			return Frac{}, err
		}
	default:
		return Frac{}, ErrInvalidFormat
	}

	p.skipSpace()

	if den == 0 {
		return Frac{}, ErrZeroDivisor
	}

	f := Frac{den: den}
	if whole != 0 {
		if MulOverflows(den, whole) {
			return Frac{}, ErrOverflow
		}
		f.num = den * whole
		if AddOverflows(f.num, num) {
			return Frac{}, ErrOverflow
		}
		f.num += num
	} else {
		f.num = num
	}

	if simplify {
		f.Simplify()
	}
	return f, nil
}

type parser struct {
	in  string
	pos int
}

func (p *parser) eof() bool  { return p.pos >= len(p.in) }
func (p *parser) peek() byte { return p.in[p.pos] }

func (p *parser) next() byte {
	ch := p.in[p.pos]
	p.pos++
	return ch
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

// digits reads a run of ASCII digits by accumulation. Anything but a digit
// at the cursor is a format error.
func (p *parser) digits() (int, error) {
	if p.eof() || !isDigit(p.peek()) {
		return 0, ErrInvalidFormat
	}
	v := 0
	for !p.eof() && isDigit(p.peek()) {
		v = v*10 + int(p.next()-'0')
	}
	return v, nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// ScanLine parses one input line the way the stream adapter does: the line
// is trimmed of ASCII whitespace and gated on its first character, then
// tried as a single-precision decimal literal before falling back to the
// fraction scanner. The decimal attempt wins only when it consumes the
// whole line, so "25" takes the decimal path while "2 1/2" falls through.
func ScanLine(line string) (Frac, error) {
	line = strings.Trim(line, " \t\n\r\f\v")
	if line == "" || (!isDigit(line[0]) && line[0] != '-') {
		return Frac{}, ErrStreamFormat
	}

	if x, err := strconv.ParseFloat(line, 32); err == nil {
		return FromFloat32(float32(x))
	}

	return parseFrac(line, false)
}

// Scanner reads fractions line by line from an input source, accepting
// decimal literals ("0.5", "1.2") and fraction literals ("1/2", "2 1/2").
// A line that fails to parse latches the scanner into a failed state, the
// line-oriented analogue of a stream failbit: further Scan calls return
// false until Reset clears the state.
type Scanner struct {
	r      *bufio.Scanner
	frac   Frac
	err    error
	failed bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewScanner(r)}
}

// Scan reads and parses the next line. It returns false at end of input,
// on a read error, or once a line has been rejected.
func (s *Scanner) Scan() bool {
	if s.failed {
		return false
	}
	if !s.r.Scan() {
		if err := s.r.Err(); err != nil {
			s.err = err
			s.failed = true
		}
		return false
	}
	f, err := ScanLine(s.r.Text())
	if err != nil {
		s.err = err
		s.failed = true
		return false
	}
	s.frac = f
	return true
}

// Frac returns the most recently scanned fraction.
func (s *Scanner) Frac() Frac { return s.frac }

// Err returns the error that stopped the scanner, if any.
func (s *Scanner) Err() error { return s.err }

// Failed reports whether the scanner is latched after a rejected line.
func (s *Scanner) Failed() bool { return s.failed }

// Reset clears the failure state so scanning can resume.
func (s *Scanner) Reset() {
	s.err = nil
	s.failed = false
}
