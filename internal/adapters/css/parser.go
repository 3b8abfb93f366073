// Package css parses, prints and loads stylesheets.
package css

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/zerr"
)

type token struct {
	tt     css.TokenType
	data   string
	offset int
}

// Parser builds stylesheet trees from CSS text. It supports nested rules, which
// the grammar-level parser of tdewolff/parse does not, by working on lexer tokens.
type Parser struct {
	recover bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithErrorRecovery drops malformed statements and stray braces instead of failing.
func WithErrorRecovery() ParserOption {
	return func(p *Parser) {
		p.recover = true
	}
}

// NewParser creates a new CSS parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text into a stylesheet carrying opts as its source options.
func (p *Parser) Parse(text string, opts domain.SourceOptions) (*domain.Stylesheet, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, zerr.With(err, "file", opts.From)
	}

	s := &state{tokens: tokens, recover: p.recover}
	nodes, err := s.block(false)
	if err != nil {
		return nil, zerr.With(err, "file", opts.From)
	}

	return &domain.Stylesheet{Nodes: nodes, Source: opts}, nil
}

func tokenize(text string) ([]token, error) {
	lexer := css.NewLexer(parse.NewInputString(text))

	var (
		tokens []token
		offset int
	)
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, zerr.With(zerr.Wrap(domain.ErrStylesheetParse, err.Error()), "offset", offset)
			}
			return tokens, nil
		}
		tokens = append(tokens, token{tt: tt, data: string(data), offset: offset})
		offset += len(data)
	}
}

type state struct {
	tokens  []token
	pos     int
	recover bool
}

func (s *state) eof() bool {
	return s.pos >= len(s.tokens)
}

func (s *state) peek() token {
	return s.tokens[s.pos]
}

func (s *state) skipWhitespace() {
	for !s.eof() && s.peek().tt == css.WhitespaceToken {
		s.pos++
	}
}

func (s *state) fail(msg string) error {
	offset := 0
	if !s.eof() {
		offset = s.peek().offset
	} else if len(s.tokens) > 0 {
		last := s.tokens[len(s.tokens)-1]
		offset = last.offset + len(last.data)
	}
	return zerr.With(zerr.Wrap(domain.ErrStylesheetParse, msg), "offset", offset)
}

// block parses statements until the closing brace of a nested block or the end of input.
func (s *state) block(nested bool) ([]*domain.Node, error) {
	var nodes []*domain.Node
	for {
		s.skipWhitespace()
		if s.eof() {
			if nested && !s.recover {
				return nil, s.fail("unclosed block")
			}
			return nodes, nil
		}

		tok := s.peek()
		switch tok.tt {
		case css.RightBraceToken:
			if !nested {
				if !s.recover {
					return nil, s.fail("unexpected '}'")
				}
				s.pos++
				continue
			}
			s.pos++
			return nodes, nil
		case css.SemicolonToken, css.CDOToken, css.CDCToken:
			s.pos++
		case css.CommentToken:
			s.pos++
			nodes = append(nodes, &domain.Node{Kind: domain.NodeComment, Text: commentText(tok.data)})
		case css.AtKeywordToken:
			s.pos++
			node, err := s.atRule(tok.data[1:])
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		default:
			node, err := s.statement()
			if err != nil {
				return nil, err
			}
			if node != nil {
				nodes = append(nodes, node)
			}
		}
	}
}

func (s *state) atRule(name string) (*domain.Node, error) {
	prelude, end := s.prelude()
	node := &domain.Node{Kind: domain.NodeAtRule, Name: strings.ToLower(name), Params: prelude}

	switch end {
	case css.LeftBraceToken:
		s.pos++
		children, err := s.block(true)
		if err != nil {
			return nil, err
		}
		node.Block = true
		node.Nodes = children
	case css.SemicolonToken:
		s.pos++
	}
	return node, nil
}

// statement parses a qualified rule or a declaration, telling them apart by
// whether the prelude ends in an opening brace.
func (s *state) statement() (*domain.Node, error) {
	start := s.pos
	prelude, end := s.prelude()

	if end == css.LeftBraceToken {
		s.pos++
		children, err := s.block(true)
		if err != nil {
			return nil, err
		}
		return &domain.Node{Kind: domain.NodeRule, Selector: prelude, Nodes: children}, nil
	}
	if end == css.SemicolonToken {
		s.pos++
	}

	prop, value, ok := splitDeclaration(s.tokens[start:s.pos])
	if !ok {
		if s.recover {
			return nil, nil
		}
		s.pos = start
		return nil, s.fail(fmt.Sprintf("expected declaration, got %q", prelude))
	}
	return &domain.Node{Kind: domain.NodeDecl, Prop: prop, Value: value}, nil
}

// prelude consumes tokens up to a top-level '{', ';' or '}' without consuming the
// terminator, and returns their normalized text.
func (s *state) prelude() (string, css.TokenType) {
	var (
		b     strings.Builder
		depth int
		space bool
	)
	for !s.eof() {
		tok := s.peek()
		switch tok.tt {
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.LeftBraceToken, css.SemicolonToken, css.RightBraceToken:
			if depth == 0 {
				return strings.TrimSpace(b.String()), tok.tt
			}
		}

		s.pos++
		switch tok.tt {
		case css.WhitespaceToken:
			space = true
			continue
		case css.CommentToken:
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteString(tok.data)
	}
	return strings.TrimSpace(b.String()), css.ErrorToken
}

func splitDeclaration(tokens []token) (string, string, bool) {
	var prop strings.Builder
	for i, tok := range tokens {
		switch tok.tt {
		case css.ColonToken:
			value := normalize(tokens[i+1:])
			name := strings.TrimSpace(prop.String())
			return name, value, name != ""
		case css.WhitespaceToken, css.CommentToken:
		case css.SemicolonToken:
			return "", "", false
		default:
			prop.WriteString(tok.data)
		}
	}
	return "", "", false
}

func normalize(tokens []token) string {
	var (
		b     strings.Builder
		space bool
	)
	for _, tok := range tokens {
		switch tok.tt {
		case css.SemicolonToken:
			return strings.TrimSpace(b.String())
		case css.WhitespaceToken:
			space = true
			continue
		case css.CommentToken:
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteString(tok.data)
	}
	return strings.TrimSpace(b.String())
}

func commentText(data string) string {
	text := strings.TrimPrefix(data, "/*")
	text = strings.TrimSuffix(text, "*/")
	return strings.TrimSpace(text)
}
