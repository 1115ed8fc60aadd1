package validargs

import (
	"fmt"
	"log/slog"
)

// Kind is the calling category of a parameter.
type Kind int

const (
	PositionalOnly    Kind = iota // Supplied by position only.
	PositionalOrNamed             // Supplied by position or by name.
	NamedOnly                     // Supplied by name only.
)

func (k Kind) String() string {
	switch k {
	case PositionalOnly:
		return "positional_only"
	case PositionalOrNamed:
		return "positional_or_named"
	case NamedOnly:
		return "named_only"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Positional reports whether the parameter can receive a positional value.
func (k Kind) Positional() bool { return k == PositionalOnly || k == PositionalOrNamed }

// ParseKind maps the manifest spelling of a kind back to Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "positional_only":
		return PositionalOnly, nil
	case "positional_or_named", "":
		return PositionalOrNamed, nil
	case "named_only":
		return NamedOnly, nil
	}
	return 0, fmt.Errorf("validargs: unknown parameter kind %q", s)
}

// Default is the tri-state default policy of a parameter. The zero value
// declares no default; DefaultOf declares one, and nil is a legal value.
type Default struct {
	value any
	set   bool
}

// NoDefault returns the zero Default. It exists for readability at call sites.
func NoDefault() Default { return Default{} }

// DefaultOf declares a default value. v may be nil.
func DefaultOf(v any) Default { return Default{value: v, set: true} }

// IsSet reports whether a default was declared.
func (d Default) IsSet() bool { return d.set }

// Value returns the declared default, or nil when none was declared.
func (d Default) Value() any { return d.value }

// Args carries the arguments of a single call.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Param is a raw parameter declaration, in declaration order.
// When Default holds a *Validator, that validator becomes the parameter's
// validator and its own default decides the default policy.
type Param struct {
	Name    string
	Kind    Kind
	Default Default
}

// WrapOpt bundles options for Wrap.
type WrapOpt struct {
	Name   string       // Used in error messages and logs; defaults to "function".
	Logger *slog.Logger // Receives debug records for each finished call. Nil discards.
}
