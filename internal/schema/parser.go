package schema

import (
	"fmt"
	"strconv"
)

// Parser parses tokenized .bwire schema files into a Schema.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser over an already-lexed token stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSchema lexes and parses a full schema from source text.
func ParseSchema(input string) (*Schema, error) {
	lexer := NewLexer(input)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	return p.parseSchema()
}

// parseSchema parses: Schema = { Attr* (Struct | Enum) }
func (p *Parser) parseSchema() (*Schema, error) {
	s := &Schema{}

	p.skipRegularComments()

	for !p.isAtEnd() {
		doc := p.collectDocComments()
		repr, hasRepr, err := p.tryParseReprAttr()
		if err != nil {
			return nil, err
		}

		switch {
		case p.check(TokenStruct):
			st, err := p.parseStruct(doc)
			if err != nil {
				return nil, err
			}
			s.Structs = append(s.Structs, st)
		case p.check(TokenEnum):
			en, err := p.parseEnum(doc, repr, hasRepr)
			if err != nil {
				return nil, err
			}
			s.Enums = append(s.Enums, en)
		default:
			return nil, p.error("expected 'struct' or 'enum'")
		}

		p.skipRegularComments()
	}

	return s, nil
}

// tryParseReprAttr parses an optional leading
// #[repr(u8|i8|u16|i16|u32|i32|u64|i64|u128|i128|usize|isize)] attribute.
func (p *Parser) tryParseReprAttr() (ReprKind, bool, error) {
	if !p.check(TokenHash) {
		return ReprIsize, false, nil
	}
	p.advance()
	if !p.match(TokenLBracket) {
		return 0, false, p.error("expected '[' after '#'")
	}
	if !p.check(TokenIdent) || p.peek().Value != "repr" {
		return 0, false, p.error("expected 'repr' attribute")
	}
	p.advance()
	if !p.match(TokenLParen) {
		return 0, false, p.error("expected '(' after 'repr'")
	}
	if !p.check(TokenIdent) {
		return 0, false, p.error("expected repr width")
	}
	width := p.advance().Value
	repr, ok := reprKeywords[width]
	if !ok {
		return 0, false, p.error("repr must be one of u8, i8, u16, i16, u32, i32, u64, i64, u128, i128, usize, isize")
	}
	if !p.match(TokenRParen) {
		return 0, false, p.error("expected ')'")
	}
	if !p.match(TokenRBracket) {
		return 0, false, p.error("expected ']'")
	}
	p.skipRegularComments()
	return repr, true, nil
}

var reprKeywords = map[string]ReprKind{
	"u8": ReprU8, "i8": ReprI8,
	"u16": ReprU16, "i16": ReprI16,
	"u32": ReprU32, "i32": ReprI32,
	"u64": ReprU64, "i64": ReprI64,
	"u128": ReprU128, "i128": ReprI128,
	"usize": ReprUsize, "isize": ReprIsize,
}

// parseStruct parses: Struct = "struct" Ident "{" FieldList "}"
func (p *Parser) parseStruct(doc string) (Struct, error) {
	s := Struct{Doc: doc}

	if !p.match(TokenStruct) {
		return s, p.error("expected 'struct'")
	}
	if !p.check(TokenIdent) {
		return s, p.error("expected struct name")
	}
	s.Name = p.advance().Value

	if !p.match(TokenLBrace) {
		return s, p.error("expected '{'")
	}

	for !p.check(TokenRBrace) && !p.isAtEnd() {
		p.skipRegularComments()
		if p.check(TokenRBrace) || p.isAtEnd() {
			break
		}

		field, err := p.parseField()
		if err != nil {
			return s, err
		}
		s.Fields = append(s.Fields, field)

		if p.match(TokenComma) {
			p.skipRegularComments()
		} else if !p.check(TokenRBrace) {
			return s, p.error("expected ',' or '}'")
		}
	}

	if !p.match(TokenRBrace) {
		return s, p.error("expected '}'")
	}
	return s, nil
}

// parseField parses: Field = Ident ":" TypeExpr
func (p *Parser) parseField() (Field, error) {
	f := Field{Doc: p.collectDocComments()}

	if !p.check(TokenIdent) {
		return f, p.error("expected field name")
	}
	f.Name = p.advance().Value

	if !p.match(TokenColon) {
		return f, p.error("expected ':'")
	}

	typeExpr, err := p.parseTypeExpr()
	if err != nil {
		return f, err
	}
	f.Type = typeExpr
	return f, nil
}

// parseEnum parses: Enum = "enum" Ident "{" VariantList "}"
func (p *Parser) parseEnum(doc string, repr ReprKind, hasRepr bool) (Enum, error) {
	e := Enum{Doc: doc, Repr: ReprIsize}
	if hasRepr {
		e.Repr = repr
	}

	if !p.match(TokenEnum) {
		return e, p.error("expected 'enum'")
	}
	if !p.check(TokenIdent) {
		return e, p.error("expected enum name")
	}
	e.Name = p.advance().Value

	if !p.match(TokenLBrace) {
		return e, p.error("expected '{'")
	}

	next := 0
	for !p.check(TokenRBrace) && !p.isAtEnd() {
		p.skipRegularComments()
		if p.check(TokenRBrace) || p.isAtEnd() {
			break
		}

		variant, err := p.parseVariant(next)
		if err != nil {
			return e, err
		}
		e.Variants = append(e.Variants, variant)
		next = variant.Discriminant + 1

		if p.match(TokenComma) {
			p.skipRegularComments()
		} else if !p.check(TokenRBrace) {
			return e, p.error("expected ',' or '}'")
		}
	}

	if !p.match(TokenRBrace) {
		return e, p.error("expected '}'")
	}
	return e, nil
}

// parseVariant parses: Variant = Ident [ "=" Number ] [ "(" TypeExpr ")" ]
func (p *Parser) parseVariant(defaultDiscriminant int) (Variant, error) {
	v := Variant{Doc: p.collectDocComments(), Discriminant: defaultDiscriminant}

	if !p.check(TokenIdent) {
		return v, p.error("expected variant name")
	}
	v.Name = p.advance().Value

	if p.match(TokenEquals) {
		if !p.check(TokenNumber) {
			return v, p.error("expected discriminant number")
		}
		n, err := strconv.Atoi(p.advance().Value)
		if err != nil {
			return v, p.error("invalid discriminant number")
		}
		v.Discriminant = n
	}

	if p.match(TokenLParen) {
		payload, err := p.parseTypeExpr()
		if err != nil {
			return v, err
		}
		v.Payload = payload
		v.HasPayload = true
		if !p.match(TokenRParen) {
			return v, p.error("expected ')' after variant payload")
		}
	}

	return v, nil
}

// parseTypeExpr parses a type expression:
//
//	TypeExpr = "Option" "<" TypeExpr ">"
//	         | "Box" "<" TypeExpr ">"
//	         | "map" "<" TypeExpr "," TypeExpr ">"
//	         | "set" "<" TypeExpr ">"
//	         | "[" TypeExpr ";" Number "]"
//	         | "[" "]" TypeExpr
//	         | "(" TypeExpr { "," TypeExpr } ")"
//	         | Ident
func (p *Parser) parseTypeExpr() (TypeExpr, error) {
	if p.check(TokenLBracket) {
		return p.parseArrayOrFixedArray()
	}

	if p.check(TokenLParen) {
		return p.parseTuple()
	}

	if p.check(TokenIdent) {
		name := p.peek().Value

		switch name {
		case "Option":
			p.advance()
			if !p.match(TokenLAngle) {
				return TypeExpr{}, p.error("expected '<' after 'Option'")
			}
			inner, err := p.parseTypeExpr()
			if err != nil {
				return TypeExpr{}, err
			}
			if !p.match(TokenRAngle) {
				return TypeExpr{}, p.error("expected '>' closing Option<...>")
			}
			inner.Optional = true
			return inner, nil

		case "Box":
			p.advance()
			if !p.match(TokenLAngle) {
				return TypeExpr{}, p.error("expected '<' after 'Box'")
			}
			inner, err := p.parseTypeExpr()
			if err != nil {
				return TypeExpr{}, err
			}
			if !p.match(TokenRAngle) {
				return TypeExpr{}, p.error("expected '>' closing Box<...>")
			}
			inner.Boxed = true
			return inner, nil

		case "map":
			p.advance()
			if !p.match(TokenLAngle) {
				return TypeExpr{}, p.error("expected '<' after 'map'")
			}
			key, err := p.parseTypeExpr()
			if err != nil {
				return TypeExpr{}, err
			}
			if !p.match(TokenComma) {
				return TypeExpr{}, p.error("expected ',' between map key and value types")
			}
			val, err := p.parseTypeExpr()
			if err != nil {
				return TypeExpr{}, err
			}
			if !p.match(TokenRAngle) {
				return TypeExpr{}, p.error("expected '>' closing map<...>")
			}
			return TypeExpr{Kind: TypeKindMap, Elem: &key, Value: &val}, nil

		case "set":
			p.advance()
			if !p.match(TokenLAngle) {
				return TypeExpr{}, p.error("expected '<' after 'set'")
			}
			elem, err := p.parseTypeExpr()
			if err != nil {
				return TypeExpr{}, err
			}
			if !p.match(TokenRAngle) {
				return TypeExpr{}, p.error("expected '>' closing set<...>")
			}
			return TypeExpr{Kind: TypeKindSet, Elem: &elem}, nil
		}

		p.advance()
		if IsPrimitive(name) {
			return TypeExpr{Kind: TypeKindPrimitive, Name: name}, nil
		}
		return TypeExpr{Kind: TypeKindNamed, Name: name}, nil
	}

	return TypeExpr{}, p.error("expected type name")
}

// parseArrayOrFixedArray parses "[" "]" TypeExpr (dynamic) or
// "[" TypeExpr ";" Number "]" (fixed-size).
func (p *Parser) parseArrayOrFixedArray() (TypeExpr, error) {
	p.advance() // consume '['

	if p.match(TokenRBracket) {
		elem, err := p.parseTypeExpr()
		if err != nil {
			return TypeExpr{}, err
		}
		return TypeExpr{Kind: TypeKindArray, Elem: &elem}, nil
	}

	elem, err := p.parseTypeExpr()
	if err != nil {
		return TypeExpr{}, err
	}
	if !p.match(TokenSemi) {
		return TypeExpr{}, p.error("expected ';' in fixed-size array type")
	}
	if !p.check(TokenNumber) {
		return TypeExpr{}, p.error("expected array size")
	}
	n, err := strconv.Atoi(p.advance().Value)
	if err != nil {
		return TypeExpr{}, p.error("invalid array size")
	}
	if !p.match(TokenRBracket) {
		return TypeExpr{}, p.error("expected ']' closing fixed-size array")
	}
	return TypeExpr{Kind: TypeKindFixedArray, Elem: &elem, Size: n}, nil
}

// parseTuple parses "(" TypeExpr { "," TypeExpr } ")".
func (p *Parser) parseTuple() (TypeExpr, error) {
	p.advance() // consume '('

	var elems []TypeExpr
	for {
		elem, err := p.parseTypeExpr()
		if err != nil {
			return TypeExpr{}, err
		}
		elems = append(elems, elem)
		if !p.match(TokenComma) {
			break
		}
	}
	if !p.match(TokenRParen) {
		return TypeExpr{}, p.error("expected ')' closing tuple type")
	}
	return TypeExpr{Kind: TypeKindTuple, Elems: elems}, nil
}

// collectDocComments gathers consecutive /// comments into a single block.
func (p *Parser) collectDocComments() string {
	for p.check(TokenComment) {
		p.advance()
	}

	var comments []string
	for p.check(TokenDocComment) {
		comments = append(comments, p.advance().Value)
	}

	if len(comments) == 0 {
		return ""
	}
	result := comments[0]
	for i := 1; i < len(comments); i++ {
		result += "\n" + comments[i]
	}
	return result
}

func (p *Parser) skipRegularComments() {
	for p.check(TokenComment) {
		p.advance()
	}
}

func (p *Parser) check(t TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].Type == TokenEOF
}

func (p *Parser) error(msg string) error {
	tok := p.peek()
	return fmt.Errorf("line %d, column %d: %s (got %s)", tok.Line, tok.Column, msg, tok.String())
}
