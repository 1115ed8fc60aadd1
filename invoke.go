package validargs

import "context"

// Callable is the target behind a wrapped function. It receives arguments
// that have already been bound and validated.
type Callable interface {
	Invoke(ctx context.Context, r *Resolved) (any, error)
}

// CallableFunc adapts a function taking the caller's call shape: values of
// positional-capable parameters by position, named-only values by name.
type CallableFunc func(ctx context.Context, positional []any, named map[string]any) (any, error)

// Invoke calls f with r split back into positional and named values.
func (f CallableFunc) Invoke(ctx context.Context, r *Resolved) (any, error) {
	return f(ctx, r.Positional(), r.Named())
}

// Invoke calls c with r and returns its result unchanged.
func Invoke(ctx context.Context, c Callable, r *Resolved) (any, error) {
	return c.Invoke(ctx, r)
}

// arityChecker is implemented by targets that can verify at wrap time that
// they accept n parameters.
type arityChecker interface {
	checkArity(n int) error
}
