package ast

import (
	"bytes"
	"unicode/utf8"

	"github.com/gqlkit/graphql-go-parser/pkg/lexer/literal"
)

// Splits byte slices into lines based on line terminators (\n, \r, \r\n)
// defined by https://spec.graphql.org/October2021/#sec-Line-Terminators
func splitBytesIntoLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	length := len(data)

	for i := 0; i < length; i++ {
		switch c := data[i]; c {
		case '\n', '\r':
			if start <= i {
				lines = append(lines, data[start:i])
			}

			if c == '\r' && i+1 < length && data[i+1] == '\n' {
				i++
			}

			start = i + 1
		}
	}

	if start <= length {
		lines = append(lines, data[start:])
	}

	return lines
}

// counts leading whitespace characters (spaces or tabs) in a byte slice
func leadingWhitespaceCount(line []byte) int {
	count := 0
	for _, c := range line {
		if c != ' ' && c != '\t' {
			break
		}
		count++
	}
	return count
}

func isBlankLine(line []byte) bool {
	return leadingWhitespaceCount(line) == len(line)
}

// BlockStringValue implements the BlockStringValue() algorithm of
// https://spec.graphql.org/October2021/#sec-String-Value.Block-Strings:
// the common indentation of all non-first lines is stripped, leading and
// trailing blank lines are removed, lines are joined with "\n" and the
// escaped triple quote is resolved. raw is the literal between the
// surrounding triple quotes.
func BlockStringValue(raw ByteSlice) ByteSlice {
	lines := splitBytesIntoLines(raw)

	commonIndent := -1
	for i := 1; i < len(lines); i++ {
		if isBlankLine(lines[i]) {
			continue
		}
		indent := leadingWhitespaceCount(lines[i])
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = lines[i][len(lines[i]):]
				continue
			}
			lines[i] = lines[i][commonIndent:]
		}
	}

	start := 0
	for start < len(lines) && isBlankLine(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlankLine(lines[end-1]) {
		end--
	}
	lines = lines[start:end]

	out := make([]byte, 0, len(raw))
	for i, line := range lines {
		if i != 0 {
			out = append(out, '\n')
		}
		out = append(out, line...)
	}

	return bytes.ReplaceAll(out, literal.ESCAPEDBLOCKQUOTE, literal.BLOCKQUOTE)
}

// StringContent resolves the escape sequences of a single line string literal.
// raw is the literal between the quotes and must have been validated by the
// lexer. When raw contains no escapes it is returned as is, without copying.
func StringContent(raw ByteSlice) ByteSlice {
	if bytes.IndexByte(raw, '\\') == -1 {
		return raw
	}

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		switch raw[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			value := hexQuadValue(raw[i+1 : i+5])
			i += 4
			if value >= 0xD800 && value <= 0xDBFF {
				// the lexer guarantees the trailing surrogate escape follows
				trailing := hexQuadValue(raw[i+3 : i+7])
				i += 6
				value = 0x10000 + (value-0xD800)<<10 + (trailing - 0xDC00)
			}
			out = utf8.AppendRune(out, rune(value))
		}
	}
	return out
}

func hexQuadValue(quad []byte) int {
	value := 0
	for _, c := range quad {
		switch {
		case c >= '0' && c <= '9':
			value = value<<4 | int(c-'0')
		case c >= 'a' && c <= 'f':
			value = value<<4 | (int(c-'a') + 10)
		case c >= 'A' && c <= 'F':
			value = value<<4 | (int(c-'A') + 10)
		}
	}
	return value
}
