package validargs

import (
	"errors"
	"strconv"
	"strings"

	"github.com/reoring/validargs/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Binding failures (call shape).
	CodeTooManyPositional = "too_many_positional"
	CodeUnexpectedNamed   = "unexpected_named"
	CodeMissingRequired   = "missing_required"
	// Validator rejected a resolved value.
	CodeValidationFailed = "validation_failed"
	// Malformed parameter declaration.
	CodeInvalidDeclaration = "invalid_declaration"
)

// Sentinels for errors.Is. A *BindingError matches ErrBinding and the sentinel
// of its own code; a *ValidationError matches ErrValidation.
var (
	ErrBinding            = errors.New("validargs: binding failed")
	ErrTooManyPositional  = errors.New("validargs: too many positional arguments")
	ErrUnexpectedNamed    = errors.New("validargs: unexpected named arguments")
	ErrMissingRequired    = errors.New("validargs: missing required arguments")
	ErrValidation         = errors.New("validargs: validation failed")
	ErrInvalidDeclaration = errors.New("validargs: invalid declaration")
)

// BindingError reports a call whose arguments do not fit the signature.
// No validator has run when it is returned.
type BindingError struct {
	Func  string   // Name of the wrapped callable.
	Code  string   // One of CodeTooManyPositional, CodeUnexpectedNamed, CodeMissingRequired.
	Names []string // Offending parameter or argument names (empty for too_many_positional).
	Max   int      // Positional capacity (too_many_positional only).
	Got   int      // Positional values supplied (too_many_positional only).
}

func (e *BindingError) Error() string {
	return i18n.T(e.Code, map[string]string{
		"func":  funcName(e.Func),
		"names": quoteNames(e.Names),
		"max":   strconv.Itoa(e.Max),
		"got":   strconv.Itoa(e.Got),
	})
}

// Is matches ErrBinding and the sentinel for e.Code.
func (e *BindingError) Is(target error) bool {
	switch target {
	case ErrBinding:
		return true
	case ErrTooManyPositional:
		return e.Code == CodeTooManyPositional
	case ErrUnexpectedNamed:
		return e.Code == CodeUnexpectedNamed
	case ErrMissingRequired:
		return e.Code == CodeMissingRequired
	}
	return false
}

// ValidationError reports a resolved value rejected by its parameter's
// validator, whether the value came from the caller or from a default.
type ValidationError struct {
	Func    string
	Param   string
	Message string // Message of the validator failure.
	Cause   error  // The validator failure itself.
}

func (e *ValidationError) Error() string {
	return i18n.T(CodeValidationFailed, map[string]string{
		"func":  funcName(e.Func),
		"names": quoteNames([]string{e.Param}),
		"cause": e.Message,
	})
}

func (e *ValidationError) Unwrap() error { return e.Cause }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DeclarationError reports a parameter list that cannot form a Signature.
type DeclarationError struct {
	Func   string
	Param  string
	Reason string
}

func (e *DeclarationError) Error() string {
	cause := e.Reason
	if e.Param != "" {
		cause = quoteNames([]string{e.Param}) + ": " + e.Reason
	}
	return i18n.T(CodeInvalidDeclaration, map[string]string{"func": funcName(e.Func), "cause": cause})
}

func (e *DeclarationError) Is(target error) bool { return target == ErrInvalidDeclaration }

// AsBindingError extracts a *BindingError from an error using errors.As internally.
func AsBindingError(err error) (*BindingError, bool) {
	if err == nil {
		return nil, false
	}
	var be *BindingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// AsValidationError extracts a *ValidationError from an error using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func funcName(s string) string {
	if s == "" {
		return "function"
	}
	return s
}

func quoteNames(names []string) string {
	if len(names) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(n))
	}
	return b.String()
}
