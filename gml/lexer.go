package gml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokKey
	tokNumber
	tokString
	tokOpen
	tokClose
)

func (k tokKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokKey:
		return "key"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokOpen:
		return "'['"
	case tokClose:
		return "']'"
	default:
		return "token"
	}
}

type token struct {
	kind tokKind
	text string
	line int
}

// lexer splits GML input into tokens. It tracks the current line.
type lexer struct {
	r    *bufio.Reader
	line int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), line: 1}
}

func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err == nil && c == '\n' {
		l.line++
	}

	return c, err
}

func (l *lexer) unread(c rune) {
	_ = l.r.UnreadRune()
	if c == '\n' {
		l.line--
	}
}

// next returns the next token or a *SyntaxError.
func (l *lexer) next() (token, error) {
	// 1) Skip blanks and comments.
	var c rune
	var err error
	for {
		c, err = l.read()
		if errors.Is(err, io.EOF) {
			return token{kind: tokEOF, line: l.line}, nil
		}
		if err != nil {
			return token{}, err
		}
		if c == '#' {
			if err = l.skipLine(); err != nil {
				return token{}, err
			}
			continue
		}
		if !unicode.IsSpace(c) {
			break
		}
	}

	line := l.line
	switch {
	case c == '[':
		return token{kind: tokOpen, text: "[", line: line}, nil
	case c == ']':
		return token{kind: tokClose, text: "]", line: line}, nil
	case c == '"':
		s, err := l.quoted()
		if err != nil {
			return token{}, err
		}
		return token{kind: tokString, text: s, line: line}, nil
	case c == '-' || c == '+' || c == '.' || unicode.IsDigit(c):
		return token{kind: tokNumber, text: l.word(c, isNumberRune), line: line}, nil
	case unicode.IsLetter(c) || c == '_':
		return token{kind: tokKey, text: l.word(c, isKeyRune), line: line}, nil
	default:
		return token{}, &SyntaxError{Line: line, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}

func (l *lexer) skipLine() error {
	for {
		c, err := l.read()
		if errors.Is(err, io.EOF) || c == '\n' {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// quoted reads up to the closing quote; the opening one is consumed.
func (l *lexer) quoted() (string, error) {
	start := l.line
	var sb strings.Builder
	for {
		c, err := l.read()
		if errors.Is(err, io.EOF) {
			return "", &SyntaxError{Line: start, Msg: "unterminated string"}
		}
		if err != nil {
			return "", err
		}
		if c == '"' {
			return sb.String(), nil
		}
		sb.WriteRune(c)
	}
}

// word reads first and every following rune accepted by ok.
func (l *lexer) word(first rune, ok func(rune) bool) string {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		c, err := l.read()
		if err != nil {
			return sb.String()
		}
		if !ok(c) {
			l.unread(c)
			return sb.String()
		}
		sb.WriteRune(c)
	}
}

func isNumberRune(c rune) bool {
	return unicode.IsDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '-' || c == '+'
}

func isKeyRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}
