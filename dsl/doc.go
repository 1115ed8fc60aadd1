// Package dsl provides a chained builder for validargs signatures.
//
// Overview
//   - Signature(name): start a declaration; add parameters in declaration order with
//     PositionalOnly/Param/NamedOnly, then Build()/MustBuild() or Wrap(target).
//   - Per parameter: Default(v) declares a plain default (nil is a real default),
//     Validate(fn) attaches a validator without a default, Validator(v) attaches a
//     prepared *validargs.Validator together with its own default.
//   - Kind ordering (positional-only, then positional-or-named, then named-only) is
//     checked by Build, not by the chain.
//
// Example
//
//	f := dsl.Signature("transfer").
//	    PositionalOnly("amount").Validate(validators.PositiveNumber).
//	    Param("note").Validator(validargs.NewValidator(validators.ShortStr, validargs.WithDefault(nil))).
//	    NamedOnly("dry_run").Default(false).
//	    MustWrap(validargs.CallableFunc(transfer))
//
//	out, err := f.CallWith(ctx, []any{10}, map[string]any{"dry_run": true})
package dsl
