package records

// Property is one `key: value` member of an object literal.
type Property struct {
	Key      string
	Value    string // decoded value when IsString is true
	IsString bool
	Optional bool // declared as `key?:`, as in type literals
	Line     int
	Column   int
	// Terminated reports whether a separator followed the value. The last
	// property of an object may legitimately be unterminated.
	Terminated bool
}

// Record is one object literal with its properties in source order.
type Record struct {
	Line       int
	EndLine    int
	Properties []Property
}

// Document is everything the parser extracted from a file.
// Records are ordered by their opening brace.
type Document struct {
	Records []*Record
	Errors  []*SyntaxError
}

// Parse tokenizes content and extracts every object literal, nested ones
// included. separator is the property separator of the data file; ';' is
// always accepted as well. Parse never fails: malformed input is reported
// in Document.Errors.
func Parse(content string, separator string) *Document {
	tokens, lexErrs := Tokenize(content)
	p := &parser{tokens: tokens, separator: separator}
	p.doc.Errors = append(p.doc.Errors, lexErrs...)

	for !p.at(TokenEOF) {
		if p.cur().Is("{") {
			p.object()
			continue
		}
		p.next()
	}
	return &p.doc
}

type parser struct {
	tokens    []Token
	pos       int
	separator string
	doc       Document
}

func (p *parser) cur() Token { return p.tokens[p.pos] }

func (p *parser) peekAt(offset int) Token {
	if p.pos+offset < 0 {
		return Token{}
	}
	if p.pos+offset < len(p.tokens) {
		return p.tokens[p.pos+offset]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) at(kind TokenKind) bool { return p.cur().Kind == kind }

func (p *parser) next() Token {
	t := p.cur()
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) isSeparator(t Token) bool {
	return t.Kind == TokenPunct && (t.Text == p.separator || t.Text == ";")
}

// startsProperty reports whether the tokens at offset begin `key:` or `key?:`.
func (p *parser) startsProperty(offset int) bool {
	key := p.peekAt(offset)
	if key.Kind != TokenIdent && key.Kind != TokenString && key.Kind != TokenNumber {
		return false
	}
	colon := p.peekAt(offset + 1)
	if colon.Is("?") {
		colon = p.peekAt(offset + 2)
	}
	return colon.Is(":")
}

// object parses from an opening brace through its matching closing brace.
func (p *parser) object() {
	open := p.next()
	rec := &Record{Line: open.Line}
	p.doc.Records = append(p.doc.Records, rec)

	for {
		t := p.cur()
		switch {
		case t.Kind == TokenEOF:
			p.doc.Errors = append(p.doc.Errors, &SyntaxError{
				Line:    open.Line,
				Column:  open.Column,
				Message: "unclosed object literal",
				Hint:    "add the matching }",
			})
			rec.EndLine = t.Line
			return
		case t.Is("}"):
			p.next()
			rec.EndLine = t.Line
			return
		case p.isSeparator(t):
			p.next()
		case p.startsProperty(0):
			rec.Properties = append(rec.Properties, p.property())
		default:
			// Shorthand members, spreads, methods and statements: skip one
			// expression so nested objects are still discovered.
			p.skipExpression()
			if p.isSeparator(p.cur()) {
				p.next()
			}
		}
	}
}

// property parses `key: value` plus an optional trailing separator.
func (p *parser) property() Property {
	key := p.next()
	prop := Property{Key: key.Text, Line: key.Line, Column: key.Column}
	if key.Kind == TokenString {
		prop.Key = key.Value
	}
	if p.cur().Is("?") {
		p.next()
		prop.Optional = true
	}
	p.next() // ':'

	start := p.pos
	p.skipExpression()
	if p.pos-start == 1 && p.tokens[start].Kind == TokenString {
		prop.Value = p.tokens[start].Value
		prop.IsString = true
	}

	if p.isSeparator(p.cur()) {
		p.next()
		prop.Terminated = true
	}
	return prop
}

// skipExpression consumes one value expression. It stops before a
// separator or closing bracket at depth zero, or before the start of the
// next property when a separator is missing. Object literals inside the
// expression are parsed as records.
func (p *parser) skipExpression() {
	depth := 0
	consumed := 0
	for {
		t := p.cur()
		switch {
		case t.Kind == TokenEOF:
			return
		case t.Is("{"):
			p.object()
			consumed++
			continue
		case t.Is("(") || t.Is("["):
			depth++
		case t.Is(")") || t.Is("]"):
			if depth == 0 {
				if consumed == 0 {
					p.next()
				}
				return
			}
			depth--
		case t.Is("}"):
			return
		case depth == 0 && p.isSeparator(t):
			return
		case depth == 0 && consumed > 0 && endsOperand(p.peekAt(-1)) && p.startsProperty(0):
			return
		}
		p.next()
		consumed++
	}
}

// endsOperand reports whether t can end a value, so that a following
// `key:` must start a new property rather than continue the value.
func endsOperand(t Token) bool {
	switch t.Kind {
	case TokenIdent, TokenString, TokenNumber, TokenRegex:
		return true
	case TokenPunct:
		return t.Text == ")" || t.Text == "]" || t.Text == "}"
	}
	return false
}
