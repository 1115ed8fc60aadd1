package validargs

// Validate runs each parameter's validator over its resolved value in
// ordinal order, whether the value was supplied or defaulted. It stops at the
// first rejection and returns it as a *ValidationError.
func Validate(r *Resolved) error {
	sig := r.sig
	for i, sp := range sig.specs {
		if sp.validator == nil {
			continue
		}
		if err := sp.validator.Validate(r.values[i]); err != nil {
			return &ValidationError{Func: sig.name, Param: sp.name, Message: err.Error(), Cause: err}
		}
	}
	return nil
}
