package records

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenString
	TokenNumber
	TokenPunct
	TokenRegex
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenPunct:
		return "punctuation"
	case TokenRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Token is a lexical unit. Text is the raw source; for strings Value holds
// the decoded contents.
type Token struct {
	Kind   TokenKind
	Text   string
	Value  string
	Line   int
	Column int
}

// Is reports whether t is punctuation with the given text.
func (t Token) Is(punct string) bool {
	return t.Kind == TokenPunct && t.Text == punct
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// regexKeywords may precede a regex literal even though they are identifiers.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true,
	"instanceof": true, "yield": true, "await": true,
}

type lexer struct {
	src    string
	pos    int
	line   int
	col    int
	tokens []Token
	errs   []*SyntaxError
}

// Tokenize splits content into tokens. Comments and whitespace are
// dropped. Malformed input yields SyntaxErrors and lexing resumes on the
// next line. The returned slice always ends with a TokenEOF.
// Line endings are normalized first, so CRLF and lone CR count as one line
// break.
func Tokenize(content string) ([]Token, []*SyntaxError) {
	lx := &lexer{src: newlines.Replace(content), line: 1, col: 1}
	lx.run()
	return lx.tokens, lx.errs
}

func (lx *lexer) peek(offset int) byte {
	if lx.pos+offset < len(lx.src) {
		return lx.src[lx.pos+offset]
	}
	return 0
}

// advance consumes one rune and keeps line and column current.
func (lx *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += size
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func (lx *lexer) errorf(line, col int, msg, hint string) {
	lx.errs = append(lx.errs, &SyntaxError{Line: line, Column: col, Message: msg, Hint: hint})
}

func (lx *lexer) emit(kind TokenKind, start, line, col int, value string) {
	lx.tokens = append(lx.tokens, Token{
		Kind:   kind,
		Text:   lx.src[start:lx.pos],
		Value:  value,
		Line:   line,
		Column: col,
	})
}

func (lx *lexer) run() {
	for lx.pos < len(lx.src) {
		c := lx.peek(0)
		start, line, col := lx.pos, lx.line, lx.col

		switch {
		case c == '\n' || c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			lx.advance()
		case c == '/' && lx.peek(1) == '/':
			lx.skipLineComment()
		case c == '/' && lx.peek(1) == '*':
			lx.skipBlockComment(line, col)
		case c == '/' && lx.regexAllowed():
			if lx.regex() {
				lx.emit(TokenRegex, start, line, col, "")
			} else {
				// Not a regex after all: rewind and treat '/' as an operator.
				lx.pos, lx.line, lx.col = start, line, col
				lx.advance()
				lx.emit(TokenPunct, start, line, col, "")
			}
		case c == '"' || c == '\'':
			if value, ok := lx.quoted(c); ok {
				lx.emit(TokenString, start, line, col, value)
			} else {
				lx.errorf(line, col, "unterminated string literal", "close the string with "+string(c)+" on the same line")
			}
		case c == '`':
			if value, ok := lx.template(); ok {
				lx.emit(TokenString, start, line, col, value)
			} else {
				lx.errorf(line, col, "unterminated template literal", "close the template with `")
			}
		case c >= '0' && c <= '9':
			lx.number()
			lx.emit(TokenNumber, start, line, col, "")
		default:
			r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
			if isIdentStart(r) {
				lx.ident()
				lx.emit(TokenIdent, start, line, col, "")
				continue
			}
			if unicode.IsSpace(r) {
				lx.advance()
				continue
			}
			lx.advance()
			lx.emit(TokenPunct, start, line, col, "")
		}
	}
	lx.tokens = append(lx.tokens, Token{Kind: TokenEOF, Line: lx.line, Column: lx.col})
}

// regexAllowed reports whether a '/' here starts a regex literal rather
// than a division.
func (lx *lexer) regexAllowed() bool {
	if len(lx.tokens) == 0 {
		return true
	}
	prev := lx.tokens[len(lx.tokens)-1]
	if prev.Kind == TokenIdent && regexKeywords[prev.Text] {
		return true
	}
	return !endsOperand(prev)
}

// regex reads a regex literal with its flags. It fails on a line break
// before the closing slash.
func (lx *lexer) regex() bool {
	lx.advance()
	inClass := false
	for lx.pos < len(lx.src) {
		c := lx.peek(0)
		switch {
		case c == '\n':
			return false
		case c == '\\':
			lx.advance()
			if lx.pos >= len(lx.src) || lx.peek(0) == '\n' {
				return false
			}
			lx.advance()
		case c == '[':
			inClass = true
			lx.advance()
		case c == ']':
			inClass = false
			lx.advance()
		case c == '/' && !inClass:
			lx.advance()
			for c := lx.peek(0); (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'); c = lx.peek(0) {
				lx.advance()
			}
			return true
		default:
			lx.advance()
		}
	}
	return false
}

func (lx *lexer) skipLineComment() {
	for lx.pos < len(lx.src) && lx.peek(0) != '\n' {
		lx.advance()
	}
}

func (lx *lexer) skipBlockComment(line, col int) {
	lx.advance()
	lx.advance()
	for lx.pos < len(lx.src) {
		if lx.peek(0) == '*' && lx.peek(1) == '/' {
			lx.advance()
			lx.advance()
			return
		}
		lx.advance()
	}
	lx.errorf(line, col, "unterminated block comment", "close the comment with */")
}

// quoted reads a single- or double-quoted string. A newline before the
// closing quote ends the attempt; the lexer resumes at that newline.
func (lx *lexer) quoted(quote byte) (string, bool) {
	lx.advance()
	var b strings.Builder
	for lx.pos < len(lx.src) {
		c := lx.peek(0)
		switch {
		case c == quote:
			lx.advance()
			return b.String(), true
		case c == '\n':
			return "", false
		case c == '\\':
			lx.advance()
			if lx.pos >= len(lx.src) {
				return "", false
			}
			b.WriteRune(unescape(lx.advance()))
		default:
			b.WriteRune(lx.advance())
		}
	}
	return "", false
}

// template reads a backtick string. Interpolations are kept verbatim.
func (lx *lexer) template() (string, bool) {
	lx.advance()
	var b strings.Builder
	for lx.pos < len(lx.src) {
		c := lx.peek(0)
		switch c {
		case '`':
			lx.advance()
			return b.String(), true
		case '\\':
			lx.advance()
			if lx.pos >= len(lx.src) {
				return "", false
			}
			b.WriteRune(unescape(lx.advance()))
		default:
			b.WriteRune(lx.advance())
		}
	}
	return "", false
}

func (lx *lexer) number() {
	for lx.pos < len(lx.src) {
		c := lx.peek(0)
		if c == '.' || c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			lx.advance()
			continue
		}
		return
	}
}

func (lx *lexer) ident() {
	for lx.pos < len(lx.src) {
		r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !isIdentPart(r) {
			return
		}
		lx.advance()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}
