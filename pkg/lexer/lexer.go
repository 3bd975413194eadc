// Package lexer turns GraphQL source bytes into tokens per the October 2021 specification.
//
// The Lexer never allocates: every token literal is a window into the Input. String and
// block string literals are fully validated here so that decoding them later cannot fail,
// the decoded representation itself is produced on demand by the ast package.
package lexer

import (
	"unicode/utf8"

	"github.com/gqlkit/graphql-go-parser/pkg/ast"
	"github.com/gqlkit/graphql-go-parser/pkg/graphqlerrors"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/keyword"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/position"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/runes"
	"github.com/gqlkit/graphql-go-parser/pkg/lexer/token"
)

// Lexer emits the next token from the current cursor on every call to Read.
// It holds no state besides the cursor, two calls with the same cursor yield
// the same token.
type Lexer struct {
	input    *ast.Input
	pos      uint32
	line     uint32
	char     uint32
	prevByte byte
}

// SetInput resets the Lexer to read from the beginning of input
func (l *Lexer) SetInput(input *ast.Input) {
	l.input = input
	l.pos = 0
	l.line = 1
	l.char = 1
	l.prevByte = 0
}

// Read skips ignored tokens (whitespace, line terminators, commas, BOM) and
// returns the next significant token, or a SyntaxError describing the first
// lexical failure.
func (l *Lexer) Read() (token.Token, error) {
	return l.read()
}

// ReadAt lexes the next token at an arbitrary byte offset without moving the
// Lexer cursor. It re-derives the text position by scanning from the start of
// the input, which makes it O(offset); it is intended for tests and tools.
func (l *Lexer) ReadAt(offset uint32) (token.Token, error) {
	prev := *l
	defer func() { *l = prev }()

	l.pos = offset
	loc := position.DecodeLocation(l.input.RawBytes, offset)
	l.line = loc.Line
	l.char = loc.Column
	l.prevByte = 0
	return l.read()
}

func (l *Lexer) read() (tok token.Token, err error) {
	l.skipIgnored()

	start := l.pos
	startLine, startChar := l.line, l.char

	if start >= l.input.Length {
		tok.Keyword = keyword.EOF
		tok.Start = l.input.Length
		tok.End = l.input.Length
		tok.Literal.Start = l.input.Length
		tok.Literal.End = l.input.Length
		tok.TextPosition = position.Position{LineStart: startLine, CharStart: startChar, LineEnd: startLine, CharEnd: startChar}
		return tok, nil
	}

	tok.Literal.Start = start
	tok.Literal.End = start

	c := l.input.RawBytes[start]
	switch {
	case identStart(c):
		l.readIdent()
		tok.Keyword = keyword.IDENT
		tok.Literal.End = l.pos
	case isDigit(c) || c == runes.SUB:
		tok.Keyword, err = l.readNumber()
		tok.Literal.End = l.pos
	case c == runes.QUOTE:
		tok.Keyword, tok.Literal, err = l.readString()
	case c == runes.HASHTAG:
		tok.Literal = l.readComment()
		tok.Keyword = keyword.COMMENT
	case c == runes.DOT:
		err = l.readSpread()
		tok.Keyword = keyword.SPREAD
		tok.Literal.End = l.pos
	default:
		tok.Keyword, err = l.readPunctuator(c)
		tok.Literal.End = l.pos
	}
	if err != nil {
		return token.Token{Keyword: keyword.UNDEFINED}, err
	}

	l.trackPosition(start, l.pos)
	tok.Start = start
	tok.End = l.pos
	tok.TextPosition = position.Position{LineStart: startLine, CharStart: startChar, LineEnd: l.line, CharEnd: l.char}
	return tok, nil
}

func (l *Lexer) skipIgnored() {
	start := l.pos
	for l.pos < l.input.Length {
		switch l.input.RawBytes[l.pos] {
		case runes.SPACE, runes.TAB, runes.COMMA, runes.LINETERMINATOR, runes.CARRIAGERETURN:
			l.pos++
		case runes.BOM0:
			if l.pos+2 < l.input.Length &&
				l.input.RawBytes[l.pos+1] == runes.BOM1 &&
				l.input.RawBytes[l.pos+2] == runes.BOM2 {
				l.pos += 3
				continue
			}
			l.trackPosition(start, l.pos)
			return
		default:
			l.trackPosition(start, l.pos)
			return
		}
	}
	l.trackPosition(start, l.pos)
}

// trackPosition advances the line/char counters over the consumed byte range.
// "\r\n" counts as a single line terminator, utf8 continuation bytes don't
// count as chars.
func (l *Lexer) trackPosition(from, to uint32) {
	for i := from; i < to; i++ {
		b := l.input.RawBytes[i]
		switch b {
		case runes.LINETERMINATOR:
			if l.prevByte != runes.CARRIAGERETURN {
				l.line++
			}
			l.char = 1
		case runes.CARRIAGERETURN:
			l.line++
			l.char = 1
		default:
			if b&0xC0 != 0x80 {
				l.char++
			}
		}
		l.prevByte = b
	}
}

func (l *Lexer) readIdent() {
	for l.pos < l.input.Length && identContinue(l.input.RawBytes[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) readNumber() (keyword.Keyword, error) {
	if l.input.RawBytes[l.pos] == runes.SUB {
		l.pos++
	}
	if l.pos >= l.input.Length || !isDigit(l.input.RawBytes[l.pos]) {
		return keyword.UNDEFINED, l.errSyntax(l.pos, "invalid number, expected digit")
	}
	if l.input.RawBytes[l.pos] == '0' {
		l.pos++
		if l.pos < l.input.Length && isDigit(l.input.RawBytes[l.pos]) {
			return keyword.UNDEFINED, l.errSyntax(l.pos, "invalid number, unexpected digit after 0: %q", rune(l.input.RawBytes[l.pos]))
		}
	} else {
		l.readDigits()
	}

	isFloat := false
	if l.pos < l.input.Length && l.input.RawBytes[l.pos] == runes.DOT {
		l.pos++
		isFloat = true
		if l.pos >= l.input.Length || !isDigit(l.input.RawBytes[l.pos]) {
			return keyword.UNDEFINED, l.errSyntax(l.pos, "invalid float, expected digit after dot")
		}
		l.readDigits()
	}
	if l.pos < l.input.Length && (l.input.RawBytes[l.pos] == 'e' || l.input.RawBytes[l.pos] == 'E') {
		l.pos++
		isFloat = true
		if l.pos < l.input.Length && (l.input.RawBytes[l.pos] == runes.ADD || l.input.RawBytes[l.pos] == runes.SUB) {
			l.pos++
		}
		if l.pos >= l.input.Length || !isDigit(l.input.RawBytes[l.pos]) {
			return keyword.UNDEFINED, l.errSyntax(l.pos, "invalid float, expected digit after exponent")
		}
		l.readDigits()
	}

	// IntValue and FloatValue must not be followed by a name start or a dot
	if l.pos < l.input.Length {
		switch c := l.input.RawBytes[l.pos]; {
		case identStart(c), c == runes.DOT:
			return keyword.UNDEFINED, l.errSyntax(l.pos, "invalid number, unexpected character after number: %q", rune(c))
		}
	}

	if isFloat {
		return keyword.FLOAT, nil
	}
	return keyword.INTEGER, nil
}

func (l *Lexer) readDigits() {
	for l.pos < l.input.Length && isDigit(l.input.RawBytes[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) readString() (keyword.Keyword, ast.ByteSliceReference, error) {
	if l.pos+2 < l.input.Length &&
		l.input.RawBytes[l.pos+1] == runes.QUOTE &&
		l.input.RawBytes[l.pos+2] == runes.QUOTE {
		return l.readBlockString()
	}
	return l.readSingleLineString()
}

func (l *Lexer) readSingleLineString() (keyword.Keyword, ast.ByteSliceReference, error) {
	l.pos++ // opening quote
	contentStart := l.pos
	for {
		if l.pos >= l.input.Length {
			return keyword.UNDEFINED, ast.ByteSliceReference{}, l.errSyntax(l.pos, "unterminated string")
		}
		switch c := l.input.RawBytes[l.pos]; {
		case c == runes.QUOTE:
			ref := ast.ByteSliceReference{Start: contentStart, End: l.pos}
			l.pos++
			return keyword.STRING, ref, nil
		case c == runes.BACKSLASH:
			if err := l.readEscape(); err != nil {
				return keyword.UNDEFINED, ast.ByteSliceReference{}, err
			}
		case c == runes.LINETERMINATOR, c == runes.CARRIAGERETURN:
			return keyword.UNDEFINED, ast.ByteSliceReference{}, l.errSyntax(l.pos, "unterminated string")
		case c < 0x20 && c != runes.TAB:
			return keyword.UNDEFINED, ast.ByteSliceReference{}, l.errSyntax(l.pos, "invalid character within string: 0x%02X", c)
		default:
			l.pos++
		}
	}
}

// readEscape validates and consumes one escape sequence, cursor on the backslash
func (l *Lexer) readEscape() error {
	if l.pos+1 >= l.input.Length {
		return l.errSyntax(l.pos, "unterminated string")
	}
	switch l.input.RawBytes[l.pos+1] {
	case runes.QUOTE, runes.BACKSLASH, runes.SLASH, 'b', 'f', 'n', 'r', 't':
		l.pos += 2
		return nil
	case 'u':
		return l.readUnicodeEscape()
	default:
		return l.errSyntax(l.pos+1, "invalid escape character: %q", rune(l.input.RawBytes[l.pos+1]))
	}
}

func (l *Lexer) readUnicodeEscape() error {
	value, err := l.readHexQuad()
	if err != nil {
		return err
	}
	switch {
	case value >= 0xD800 && value <= 0xDBFF:
		// leading surrogate requires a trailing one right behind it
		if l.pos+1 >= l.input.Length ||
			l.input.RawBytes[l.pos] != runes.BACKSLASH ||
			l.input.RawBytes[l.pos+1] != 'u' {
			return l.errSyntax(l.pos, "invalid surrogate pair, expected trailing surrogate escape")
		}
		trailing, err := l.readHexQuad()
		if err != nil {
			return err
		}
		if trailing < 0xDC00 || trailing > 0xDFFF {
			return l.errSyntax(l.pos, "invalid surrogate pair, %#04x is not a trailing surrogate", trailing)
		}
		return nil
	case value >= 0xDC00 && value <= 0xDFFF:
		return l.errSyntax(l.pos, "invalid surrogate pair, unexpected trailing surrogate %#04x", value)
	default:
		return nil
	}
}

// readHexQuad consumes "\uXXXX" with the cursor on the backslash and returns the value
func (l *Lexer) readHexQuad() (int, error) {
	if l.pos+5 >= l.input.Length {
		return 0, l.errSyntax(l.input.Length, "unterminated unicode escape")
	}
	value := 0
	for _, c := range l.input.RawBytes[l.pos+2 : l.pos+6] {
		v, ok := hexValue(c)
		if !ok {
			return 0, l.errSyntax(l.pos, "invalid unicode escape, expected 4 hex digits")
		}
		value = value<<4 | v
	}
	l.pos += 6
	return value, nil
}

func (l *Lexer) readBlockString() (keyword.Keyword, ast.ByteSliceReference, error) {
	start := l.pos
	l.pos += 3 // opening triple quote
	contentStart := l.pos
	for {
		if l.pos >= l.input.Length {
			return keyword.UNDEFINED, ast.ByteSliceReference{}, l.errSyntax(start, "unterminated block string")
		}
		switch l.input.RawBytes[l.pos] {
		case runes.BACKSLASH:
			// \""" keeps the triple quote inside the block string
			if l.pos+3 < l.input.Length &&
				l.input.RawBytes[l.pos+1] == runes.QUOTE &&
				l.input.RawBytes[l.pos+2] == runes.QUOTE &&
				l.input.RawBytes[l.pos+3] == runes.QUOTE {
				l.pos += 4
				continue
			}
			l.pos++
		case runes.QUOTE:
			if l.pos+2 < l.input.Length &&
				l.input.RawBytes[l.pos+1] == runes.QUOTE &&
				l.input.RawBytes[l.pos+2] == runes.QUOTE {
				ref := ast.ByteSliceReference{Start: contentStart, End: l.pos}
				l.pos += 3
				return keyword.BLOCKSTRING, ref, nil
			}
			l.pos++
		default:
			l.pos++
		}
	}
}

func (l *Lexer) readComment() ast.ByteSliceReference {
	l.pos++ // '#'
	contentStart := l.pos
	for l.pos < l.input.Length {
		switch l.input.RawBytes[l.pos] {
		case runes.LINETERMINATOR, runes.CARRIAGERETURN:
			return ast.ByteSliceReference{Start: contentStart, End: l.pos}
		}
		l.pos++
	}
	return ast.ByteSliceReference{Start: contentStart, End: l.pos}
}

func (l *Lexer) readSpread() error {
	if l.pos+2 >= l.input.Length ||
		l.input.RawBytes[l.pos+1] != runes.DOT ||
		l.input.RawBytes[l.pos+2] != runes.DOT {
		return l.errSyntax(l.pos, "unexpected %q, expected spread operator \"...\"", ".")
	}
	l.pos += 3
	return nil
}

func (l *Lexer) readPunctuator(c byte) (keyword.Keyword, error) {
	k := keyword.UNDEFINED
	switch c {
	case runes.BANG:
		k = keyword.BANG
	case runes.DOLLAR:
		k = keyword.DOLLAR
	case runes.AND:
		k = keyword.AND
	case runes.LPAREN:
		k = keyword.LPAREN
	case runes.RPAREN:
		k = keyword.RPAREN
	case runes.COLON:
		k = keyword.COLON
	case runes.EQUALS:
		k = keyword.EQUALS
	case runes.AT:
		k = keyword.AT
	case runes.LBRACK:
		k = keyword.LBRACK
	case runes.RBRACK:
		k = keyword.RBRACK
	case runes.LBRACE:
		k = keyword.LBRACE
	case runes.RBRACE:
		k = keyword.RBRACE
	case runes.PIPE:
		k = keyword.PIPE
	default:
		r, _ := utf8.DecodeRune(l.input.RawBytes[l.pos:])
		return keyword.UNDEFINED, l.errSyntax(l.pos, "unexpected character: %q", r)
	}
	l.pos++
	return k, nil
}

func (l *Lexer) errSyntax(offset uint32, format string, args ...interface{}) error {
	return graphqlerrors.NewSyntaxError(l.input.RawBytes, offset, format, args...)
}

func identStart(c byte) bool {
	return c == runes.UNDERSCORE || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identContinue(c byte) bool {
	return identStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
