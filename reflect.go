package validargs

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var (
	ctxType = reflect.TypeFor[context.Context]()
	errType = reflect.TypeFor[error]()
)

// ErrNotCallable is returned by Reflect for values it cannot call.
var ErrNotCallable = errors.New("validargs: not a callable function")

type reflectCallable struct {
	fn      reflect.Value
	t       reflect.Type
	withCtx bool // first Go parameter is context.Context
	result  int  // index of the value result, -1 when none
	errOut  int  // index of the error result, -1 when none
}

// Reflect adapts an ordinary Go function to Callable. Resolved values are
// passed in ordinal order; Go has no named arguments, so named-only values
// follow the positional ones. An optional leading context.Context receives the
// call context. Accepted result shapes are (), (T), (error) and (T, error).
//
// Values are never converted: each must be assignable to its Go parameter
// type, and nil is only accepted for nillable types.
func Reflect(fn any) (Callable, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, ErrNotCallable
	}
	t := rv.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic functions are not supported", ErrNotCallable)
	}
	c := reflectCallable{fn: rv, t: t, result: -1, errOut: -1}
	c.withCtx = t.NumIn() > 0 && t.In(0) == ctxType
	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) == errType {
			c.errOut = 0
		} else {
			c.result = 0
		}
	case 2:
		if t.Out(1) != errType {
			return nil, fmt.Errorf("%w: second result must be error, got %s", ErrNotCallable, t.Out(1))
		}
		c.result, c.errOut = 0, 1
	default:
		return nil, fmt.Errorf("%w: too many results (%d)", ErrNotCallable, t.NumOut())
	}
	return c, nil
}

// MustReflect is like Reflect but panics on error.
func MustReflect(fn any) Callable {
	c, err := Reflect(fn)
	if err != nil {
		panic(err)
	}
	return c
}

func (c reflectCallable) arity() int {
	if c.withCtx {
		return c.t.NumIn() - 1
	}
	return c.t.NumIn()
}

func (c reflectCallable) checkArity(n int) error {
	if got := c.arity(); got != n {
		return fmt.Errorf("function takes %d arguments but %d parameters are declared", got, n)
	}
	return nil
}

func (c reflectCallable) Invoke(ctx context.Context, r *Resolved) (any, error) {
	if err := c.checkArity(r.sig.Len()); err != nil {
		return nil, fmt.Errorf("validargs: %s: %w", funcName(r.sig.name), err)
	}
	in := make([]reflect.Value, 0, c.t.NumIn())
	if c.withCtx {
		if ctx == nil {
			ctx = context.Background()
		}
		in = append(in, reflect.ValueOf(ctx))
	}
	off := len(in)
	for i, v := range r.values {
		pt := c.t.In(off + i)
		av, err := argValue(v, pt)
		if err != nil {
			return nil, fmt.Errorf("validargs: %s: argument %q: %w", funcName(r.sig.name), r.sig.specs[i].name, err)
		}
		in = append(in, av)
	}
	out := c.fn.Call(in)

	var res any
	if c.result >= 0 {
		res = out[c.result].Interface()
	}
	if c.errOut >= 0 {
		if e, _ := out[c.errOut].Interface().(error); e != nil {
			return res, e
		}
	}
	return res, nil
}

func argValue(v any, pt reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", pt)
	}
	vv := reflect.ValueOf(v)
	if !vv.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", vv.Type(), pt)
	}
	return vv, nil
}
