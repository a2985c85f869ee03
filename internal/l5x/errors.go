package l5x

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a load failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindParse
	KindInvalidFormat
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindParse:
		return "ParseError"
	case KindInvalidFormat:
		return "InvalidFormat"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is checks against *Error values.
var (
	ErrNotFound      = errors.New("l5x: file not found")
	ErrParse         = errors.New("l5x: malformed xml")
	ErrInvalidFormat = errors.New("l5x: invalid format")
)

// Error is returned by Load and Parse when the input cannot become a Document.
type Error struct {
	Kind Kind
	Path string

	// Found and Expected are set for KindInvalidFormat.
	Found    string
	Expected string

	// Err is the underlying cause, the parser diagnostic for KindParse.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("File not found: %s", e.Path)
	case KindParse:
		return fmt.Sprintf("XML Parsing Error: %v", e.Err)
	case KindInvalidFormat:
		return fmt.Sprintf("Invalid L5X file: Root element is '%s', expected '%s'", e.Found, e.Expected)
	default:
		return fmt.Sprintf("l5x: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrParse:
		return e.Kind == KindParse
	case ErrInvalidFormat:
		return e.Kind == KindInvalidFormat
	}
	return false
}
