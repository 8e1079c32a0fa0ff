// Package dbcfile parses and serializes the Vector DBC text format into and
// out of a dbc.Document. The tokenizer is a byte cursor over the whole input;
// every statement handler advances it and never backtracks past its own
// start, so an error midway through a statement always has a well-defined
// line number.
package dbcfile

import (
	"strconv"
	"strings"
	"unicode/utf8"

	dbc "github.com/canlinelabs/godbc"
)

// cursor is a minimal byte-oriented scanner. It has no regexp or bufio
// dependency: DBC statements are simple enough that a hand-written cursor
// reads more clearly than a lexer generator, and it keeps byte offsets
// directly convertible to line numbers.
//
// overflowLine, eofLine and invalidCharLine are sticky: once set they are
// never cleared, and Parse's dispatch loop consults them after each
// statement: a set eofLine replaces whatever error the handler returned
// with dbc.KindUnexpectedEOF, and a set invalidCharLine or overflowLine
// fails a statement whose handler returned no error with
// dbc.KindInvalidChar or dbc.KindMaxStrLength.
type cursor struct {
	data              []byte
	pos               int
	overflowLine      int
	eofLine           int
	invalidCharLine   int
	invalidCharReason string
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.data)
}

func (c *cursor) peekByte() (byte, bool) {
	if c.atEOF() {
		return 0, false
	}
	return c.data[c.pos], true
}

func (c *cursor) peekByteAt(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.data) {
		return 0, false
	}
	return c.data[i], true
}

func (c *cursor) startsWith(lit string) bool {
	if c.pos+len(lit) > len(c.data) {
		return false
	}
	return string(c.data[c.pos:c.pos+len(lit)]) == lit
}

// line returns the 1-based line number of the cursor's current position.
func (c *cursor) line() int {
	return c.lineAt(c.pos)
}

// lineAt returns the 1-based line number of an arbitrary byte offset.
func (c *cursor) lineAt(pos int) int {
	n := 1
	for i := 0; i < pos && i < len(c.data); i++ {
		if c.data[i] == '\n' {
			n++
		}
	}
	return n
}

// expect consumes lit if the cursor is positioned at it, returning false
// (without advancing) otherwise. A failed match at EOF sets the cursor's
// sticky eofLine, since running out of input mid-statement is a more useful
// root cause than whatever domain-specific reason the caller reports.
func (c *cursor) expect(lit string) bool {
	if !c.startsWith(lit) {
		if c.atEOF() && c.eofLine == 0 {
			c.eofLine = c.line()
		}
		return false
	}
	c.pos += len(lit)
	return true
}

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

func isNewline(b byte) bool { return b == '\n' || b == '\r' }

func (c *cursor) skipSpaces() {
	for !c.atEOF() && isSpaceOrTab(c.data[c.pos]) {
		c.pos++
	}
}

// skipNewlinesAndSpaces skips whitespace of every kind, including blank
// lines, which DBC text uses freely between statements.
func (c *cursor) skipNewlinesAndSpaces() {
	for !c.atEOF() {
		b := c.data[c.pos]
		if isSpaceOrTab(b) || isNewline(b) {
			c.pos++
			continue
		}
		break
	}
}

func (c *cursor) skipToEndOfLine() {
	for !c.atEOF() && !isNewline(c.data[c.pos]) {
		c.pos++
	}
	for !c.atEOF() && isNewline(c.data[c.pos]) {
		c.pos++
	}
}

// isIdentByte reports whether b may appear inside a DBC identifier: ASCII
// letters, digits and underscore.
func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// parseIdentifier reads a run of identifier bytes. The first byte must not
// be a digit.
func (c *cursor) parseIdentifier() (string, bool) {
	start := c.pos
	if c.atEOF() {
		if c.eofLine == 0 {
			c.eofLine = c.line()
		}
		return "", false
	}
	if !isIdentByte(c.data[c.pos]) || (c.data[c.pos] >= '0' && c.data[c.pos] <= '9') {
		return "", false
	}
	for !c.atEOF() && isIdentByte(c.data[c.pos]) {
		c.pos++
	}
	name := string(c.data[start:c.pos])
	c.recordIfOverLength(name, start)
	return name, true
}

// recordIfOverLength sets the cursor's sticky overflowLine the first time a
// parsed name or quoted string exceeds dbc.MaxNameSize.
func (c *cursor) recordIfOverLength(token string, start int) {
	if c.overflowLine == 0 && len(token) > dbc.MaxNameSize {
		c.overflowLine = c.lineAt(start)
	}
}

// parseNumberRun reads a run of bytes that look like a signed/float literal
// (digits, one leading '-' or '+', one '.', one exponent). Callers hand the
// result to strconv; this only isolates the token.
func (c *cursor) parseNumberRun() (string, bool) {
	start := c.pos
	i := c.pos
	if i < len(c.data) && (c.data[i] == '-' || c.data[i] == '+') {
		i++
	}
	digits := 0
	for i < len(c.data) && c.data[i] >= '0' && c.data[i] <= '9' {
		i++
		digits++
	}
	if i < len(c.data) && c.data[i] == '.' {
		i++
		for i < len(c.data) && c.data[i] >= '0' && c.data[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		if c.atEOF() && c.eofLine == 0 {
			c.eofLine = c.line()
		}
		return "", false
	}
	if i < len(c.data) && (c.data[i] == 'e' || c.data[i] == 'E') {
		j := i + 1
		if j < len(c.data) && (c.data[j] == '-' || c.data[j] == '+') {
			j++
		}
		expDigits := 0
		for j < len(c.data) && c.data[j] >= '0' && c.data[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	c.pos = i
	return string(c.data[start:c.pos]), true
}

func (c *cursor) parseU32() (uint32, bool) {
	tok, ok := c.parseNumberRun()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func (c *cursor) parseU8() (uint8, bool) {
	v, ok := c.parseU32()
	if !ok || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

func (c *cursor) parseU64() (uint64, bool) {
	tok, ok := c.parseNumberRun()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *cursor) parseI64() (int64, bool) {
	tok, ok := c.parseNumberRun()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *cursor) parseF64() (float64, bool) {
	tok, ok := c.parseNumberRun()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// takeUntilQuote consumes the opening quote (caller must already have
// matched it) plus everything up to and including the closing quote,
// returning the text in between. It does not process backslash escapes:
// DBC quoted strings do not use them, they only disallow a literal quote. A
// literal NUL byte inside the string is the one character DBC text can never
// legitimately contain; a byte sequence that isn't valid UTF-8 is likewise
// rejected. Both set the cursor's sticky invalidCharLine/invalidCharReason.
func (c *cursor) takeUntilQuote() (string, bool) {
	start := c.pos
	sawNUL := false
	for !c.atEOF() && c.data[c.pos] != '"' {
		if c.data[c.pos] == 0 {
			sawNUL = true
		}
		c.pos++
	}
	if c.atEOF() {
		// Unterminated: callers report this with the more specific
		// ReasonUnterminatedString, so no generic eofLine here.
		c.pos = start
		return "", false
	}
	s := string(c.data[start:c.pos])
	c.pos++ // closing quote
	switch {
	case sawNUL && c.invalidCharLine == 0:
		c.invalidCharLine = c.lineAt(start)
		c.invalidCharReason = dbc.ReasonInvalidChar
	case !utf8.ValidString(s) && c.invalidCharLine == 0:
		c.invalidCharLine = c.lineAt(start)
		c.invalidCharReason = dbc.ReasonInvalidUTF8
	}
	c.recordIfOverLength(s, start)
	return s, true
}
