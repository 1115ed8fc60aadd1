package dsl

import (
	"github.com/reoring/validargs"
)

type signatureBuilder struct {
	name   string
	params []validargs.Param
}

type paramStep struct {
	b   *signatureBuilder
	idx int
}

// Signature starts a declaration for the callable called name.
func Signature(name string) *signatureBuilder {
	return &signatureBuilder{name: name}
}

func (b *signatureBuilder) add(name string, k validargs.Kind) *paramStep {
	b.params = append(b.params, validargs.Param{Name: name, Kind: k})
	return &paramStep{b: b, idx: len(b.params) - 1}
}

// PositionalOnly declares a parameter that only accepts a positional value.
func (b *signatureBuilder) PositionalOnly(name string) *paramStep {
	return b.add(name, validargs.PositionalOnly)
}

// Param declares a positional-or-named parameter.
func (b *signatureBuilder) Param(name string) *paramStep {
	return b.add(name, validargs.PositionalOrNamed)
}

// NamedOnly declares a parameter that only accepts a named value.
func (b *signatureBuilder) NamedOnly(name string) *paramStep {
	return b.add(name, validargs.NamedOnly)
}

// Params returns a copy of the declarations collected so far.
func (b *signatureBuilder) Params() []validargs.Param {
	return append([]validargs.Param(nil), b.params...)
}

// Build extracts the Signature.
func (b *signatureBuilder) Build() (*validargs.Signature, error) {
	return validargs.NewSignature(b.name, b.params...)
}

// MustBuild is like Build but panics on error.
func (b *signatureBuilder) MustBuild() *validargs.Signature {
	return validargs.MustSignature(b.name, b.params...)
}

// Wrap wraps target with the declared parameters. The declaration name is used
// unless an option overrides it.
func (b *signatureBuilder) Wrap(target validargs.Callable, opts ...validargs.WrapOpt) (*validargs.Func, error) {
	return validargs.Wrap(target, b.params, b.opts(opts)...)
}

// MustWrap is like Wrap but panics on error.
func (b *signatureBuilder) MustWrap(target validargs.Callable, opts ...validargs.WrapOpt) *validargs.Func {
	return validargs.MustWrap(target, b.params, b.opts(opts)...)
}

func (b *signatureBuilder) opts(opts []validargs.WrapOpt) []validargs.WrapOpt {
	return append([]validargs.WrapOpt{{Name: b.name}}, opts...)
}

// Default declares a plain default for the current parameter. A
// *validargs.Validator passed here is taken as the parameter's validator.
func (p *paramStep) Default(v any) *signatureBuilder {
	p.b.params[p.idx].Default = validargs.DefaultOf(v)
	return p.b
}

// Validator attaches v; the parameter's default is v's default, if any.
func (p *paramStep) Validator(v *validargs.Validator) *signatureBuilder {
	p.b.params[p.idx].Default = validargs.DefaultOf(v)
	return p.b
}

// Validate attaches fn as a validator and leaves the parameter required.
func (p *paramStep) Validate(fn validargs.ValidateFunc) *signatureBuilder {
	return p.Validator(validargs.NewValidator(fn))
}

// ValidateOr attaches fn as a validator with def as its default. def goes
// through fn on every call that falls back to it.
func (p *paramStep) ValidateOr(fn validargs.ValidateFunc, def any) *signatureBuilder {
	return p.Validator(validargs.NewValidator(fn, validargs.WithDefault(def)))
}

// Required leaves the current parameter without a default.
func (p *paramStep) Required() *signatureBuilder { return p.b }

func (p *paramStep) PositionalOnly(name string) *paramStep { return p.b.PositionalOnly(name) }
func (p *paramStep) Param(name string) *paramStep          { return p.b.Param(name) }
func (p *paramStep) NamedOnly(name string) *paramStep      { return p.b.NamedOnly(name) }
func (p *paramStep) Params() []validargs.Param             { return p.b.Params() }
func (p *paramStep) Build() (*validargs.Signature, error)  { return p.b.Build() }
func (p *paramStep) MustBuild() *validargs.Signature       { return p.b.MustBuild() }
func (p *paramStep) Wrap(target validargs.Callable, opts ...validargs.WrapOpt) (*validargs.Func, error) {
	return p.b.Wrap(target, opts...)
}
func (p *paramStep) MustWrap(target validargs.Callable, opts ...validargs.WrapOpt) *validargs.Func {
	return p.b.MustWrap(target, opts...)
}
