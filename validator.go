package validargs

// ValidateFunc accepts one value and returns nil when it is acceptable.
// Whether nil is automatically valid is up to the function.
type ValidateFunc func(v any) error

// Validator pairs a ValidateFunc with an optional default value.
// It is stateless and safe to share across signatures and goroutines.
type Validator struct {
	fn  ValidateFunc
	def Default
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithDefault declares the default used when the parameter is omitted.
// A nil v declares a nil default, which is different from declaring none.
func WithDefault(v any) ValidatorOption {
	return func(vd *Validator) { vd.def = DefaultOf(v) }
}

// NewValidator wraps fn. A nil fn accepts every value.
func NewValidator(fn ValidateFunc, opts ...ValidatorOption) *Validator {
	v := &Validator{fn: fn}
	for _, o := range opts {
		if o != nil {
			o(v)
		}
	}
	return v
}

// HasDefault reports whether a default was declared, including a nil one.
func (v *Validator) HasDefault() bool { return v.def.IsSet() }

// Default returns the declared default; ok is false when none was declared.
func (v *Validator) Default() (value any, ok bool) { return v.def.Value(), v.def.IsSet() }

// Validate runs the wrapped function and returns its failure unchanged.
func (v *Validator) Validate(value any) error {
	if v.fn == nil {
		return nil
	}
	return v.fn(value)
}
