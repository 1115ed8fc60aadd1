package validargs

import (
	"context"
	"log/slog"
	"sync"
)

// stage is a state of the per-call pipeline:
// binding -> validating -> invoking -> done, with two failure exits.
type stage int

const (
	stageBinding stage = iota
	stageValidating
	stageInvoking
	stageDone
	stageBindingFailed
	stageValidationFailed
)

func (s stage) String() string {
	switch s {
	case stageBinding:
		return "binding"
	case stageValidating:
		return "validating"
	case stageInvoking:
		return "invoking"
	case stageDone:
		return "done"
	case stageBindingFailed:
		return "binding_failed"
	case stageValidationFailed:
		return "validation_failed"
	}
	return "unknown"
}

var discardLogger = slog.New(slog.DiscardHandler)

// Func is a callable wrapped with binding and validation. It is safe for
// concurrent use; its Signature is built once and then only read.
type Func struct {
	name   string
	target Callable
	params []Param
	logger *slog.Logger

	once sync.Once
	sig  *Signature
	err  error
}

// Lazy wraps target without extracting its signature yet. Extraction happens
// exactly once, on the first call to Signature, Call, CallWith or Bind, even
// when that first use races across goroutines. A malformed declaration is
// then reported by every call.
func Lazy(target Callable, params []Param, opts ...WrapOpt) *Func {
	f := &Func{
		name:   "function",
		target: target,
		params: append([]Param(nil), params...),
		logger: discardLogger,
	}
	for _, o := range opts {
		if o.Name != "" {
			f.name = o.Name
		}
		if o.Logger != nil {
			f.logger = o.Logger
		}
	}
	return f
}

// Wrap wraps target and extracts its signature immediately, reporting a
// malformed declaration as a *DeclarationError.
func Wrap(target Callable, params []Param, opts ...WrapOpt) (*Func, error) {
	f := Lazy(target, params, opts...)
	if _, err := f.Signature(); err != nil {
		return nil, err
	}
	return f, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap(target Callable, params []Param, opts ...WrapOpt) *Func {
	f, err := Wrap(target, params, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the name used in errors and logs.
func (f *Func) Name() string { return f.name }

// Signature returns the extracted signature, building it on first use.
func (f *Func) Signature() (*Signature, error) {
	f.once.Do(func() {
		if f.target == nil {
			f.err = &DeclarationError{Func: f.name, Reason: "nil target"}
			return
		}
		sig, err := NewSignature(f.name, f.params...)
		if err != nil {
			f.err = err
			return
		}
		if ac, ok := f.target.(arityChecker); ok {
			if err := ac.checkArity(sig.Len()); err != nil {
				f.err = &DeclarationError{Func: f.name, Reason: err.Error()}
				return
			}
		}
		f.sig = sig
	})
	return f.sig, f.err
}

// Bind binds and validates args without invoking the target.
func (f *Func) Bind(ctx context.Context, args Args) (*Resolved, error) {
	r, _, err := f.run(ctx, args, false)
	return r, err
}

// Call binds args, validates the resolved values and invokes the target.
// Binding and validation failures are returned before the target runs; the
// target's own result and error pass through unchanged.
func (f *Func) Call(ctx context.Context, args Args) (any, error) {
	_, out, err := f.run(ctx, args, true)
	return out, err
}

// CallWith is Call with the positional and named values given separately.
func (f *Func) CallWith(ctx context.Context, positional []any, named map[string]any) (any, error) {
	return f.Call(ctx, Args{Positional: positional, Named: named})
}

func (f *Func) run(ctx context.Context, args Args, invoke bool) (*Resolved, any, error) {
	sig, err := f.Signature()
	if err != nil {
		return nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		st  = stageBinding
		r   *Resolved
		out any
	)
	for {
		switch st {
		case stageBinding:
			if r, err = Bind(sig, args); err != nil {
				st = stageBindingFailed
				continue
			}
			st = stageValidating
		case stageValidating:
			if err = Validate(r); err != nil {
				st = stageValidationFailed
				continue
			}
			if !invoke {
				st = stageDone
				continue
			}
			st = stageInvoking
		case stageInvoking:
			out, err = Invoke(ctx, f.target, r)
			st = stageDone
		default:
			f.logFinish(ctx, st, r, err)
			if st != stageDone {
				return nil, nil, err
			}
			return r, out, err
		}
	}
}

func (f *Func) logFinish(ctx context.Context, st stage, r *Resolved, err error) {
	if !f.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.String("func", f.name),
		slog.String("stage", st.String()),
	}
	if r != nil {
		if d := r.Defaulted(); len(d) > 0 {
			attrs = append(attrs, slog.Any("defaulted", d))
		}
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	f.logger.LogAttrs(ctx, slog.LevelDebug, "validargs call", attrs...)
}
