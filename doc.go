// Package validargs provides:
//
// - Declarative per-parameter validation and default resolution for ordinary callables
// - Three parameter kinds (positional-only, positional-or-named, named-only) bound the same way for every call shape
// - A stable error model (BindingError for call-shape failures, ValidationError for rejected values)
// - Presence metadata on resolved arguments (supplied vs default applied vs null)
//
// Design policy:
//   - Keep only public APIs in the root package; the declaration DSL lives under dsl/,
//     stock validators under validators/, manifest loaders under manifest/ and the CLI under cmd/validargs.
//   - A Signature is built once per wrapped callable and is read-only afterwards.
//   - Defaults are never validated at declaration time; they go through their validator when a call uses them.
//
// Typical usage:
//
//	f, err := validargs.Wrap(target,
//	    []validargs.Param{
//	        {Name: "count", Kind: validargs.PositionalOrNamed, Default: validargs.DefaultOf(
//	            validargs.NewValidator(validators.PositiveNumber, validargs.WithDefault(1)))},
//	        {Name: "label", Kind: validargs.NamedOnly},
//	    })
//	out, err := f.CallWith(ctx, []any{3}, map[string]any{"label": "x"})
package validargs
