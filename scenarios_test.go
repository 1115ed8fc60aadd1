package validargs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/validargs"
	"github.com/reoring/validargs/dsl"
	"github.com/reoring/validargs/validators"
)

// echo returns every resolved argument by name, like the target functions of
// the scenario suites below.
var echo = validargs.CallableFunc(func(_ context.Context, positional []any, named map[string]any) (any, error) {
	out := map[string]any{}
	names := []string{"boolean", "number_1", "number_2", "number_3"}
	for i, v := range positional {
		out[names[i]] = v
	}
	for k, v := range named {
		out[k] = v
	}
	return out, nil
})

type scenario struct {
	description string
	positional  []any
	named       map[string]any
	want        map[string]any
	wantErr     error
}

func runScenarios(t *testing.T, f *validargs.Func, scenarios []scenario) {
	t.Helper()
	for _, sc := range scenarios {
		t.Run(sc.description, func(t *testing.T) {
			got, err := f.CallWith(context.Background(), sc.positional, sc.named)
			if sc.wantErr != nil {
				if !errors.Is(err, sc.wantErr) {
					t.Fatalf("expected %v, got %v (result %v)", sc.wantErr, err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !reflect.DeepEqual(got, sc.want) {
				t.Fatalf("got %#v, want %#v", got, sc.want)
			}
		})
	}
}

func all(b bool, n1, n2, n3 any, s1, s2 any) map[string]any {
	return map[string]any{"boolean": b, "number_1": n1, "number_2": n2, "number_3": n3, "string_1": s1, "string_2": s2}
}

func allNil() map[string]any {
	return map[string]any{"boolean": nil, "number_1": nil, "number_2": nil, "number_3": nil, "string_1": nil, "string_2": nil}
}

// suppliedScenarios are shared by every mixed suite: all arguments supplied
// in each legal shape, with real values and with nils.
func suppliedScenarios() []scenario {
	return []scenario{
		{"all supplied, positional-or-named by position", []any{false, 1, 2, 3}, map[string]any{"string_1": "string 1", "string_2": "string 2"}, all(false, 1, 2, 3, "string 1", "string 2"), nil},
		{"all supplied, positional-or-named mixed", []any{false, 1, 2}, map[string]any{"number_3": 3, "string_1": "string 1", "string_2": "string 2"}, all(false, 1, 2, 3, "string 1", "string 2"), nil},
		{"all supplied, positional-or-named by name", []any{false, 1}, map[string]any{"number_2": 2, "number_3": 3, "string_1": "string 1", "string_2": "string 2"}, all(false, 1, 2, 3, "string 1", "string 2"), nil},
		{"nil values by position", []any{nil, nil, nil, nil}, map[string]any{"string_1": nil, "string_2": nil}, allNil(), nil},
		{"nil values mixed", []any{nil, nil, nil}, map[string]any{"number_3": nil, "string_1": nil, "string_2": nil}, allNil(), nil},
		{"nil values by name", []any{nil, nil}, map[string]any{"number_2": nil, "number_3": nil, "string_1": nil, "string_2": nil}, allNil(), nil},
	}
}

func TestMixed_NoValidatorsNoDefaults(t *testing.T) {
	f := dsl.Signature("arguments_without_defaults").
		PositionalOnly("boolean").PositionalOnly("number_1").
		Param("number_2").Param("number_3").
		NamedOnly("string_1").NamedOnly("string_2").
		MustWrap(echo)

	sc := append(suppliedScenarios(),
		scenario{"positional-only missing", []any{false}, map[string]any{"number_2": 2, "number_3": 3, "string_1": "string 1", "string_2": "string 2"}, nil, validargs.ErrMissingRequired},
		scenario{"positional-only supplied by name", []any{false}, map[string]any{"number_1": 1, "number_2": 2, "number_3": 3, "string_1": "s", "string_2": "s"}, nil, validargs.ErrUnexpectedNamed},
		scenario{"named-only missing", []any{false, 1}, map[string]any{"number_2": 2, "number_3": 3, "string_2": "string 2"}, nil, validargs.ErrMissingRequired},
		scenario{"positional-or-named missing", []any{false, 1}, map[string]any{"number_3": 3, "string_2": "string 2"}, nil, validargs.ErrMissingRequired},
	)
	runScenarios(t, f, sc)
}

func TestMixed_NoValidatorsDefaults(t *testing.T) {
	f := dsl.Signature("arguments_with_defaults").
		PositionalOnly("boolean").Default(false).PositionalOnly("number_1").Default(1).
		Param("number_2").Default(2).Param("number_3").Default(3).
		NamedOnly("string_1").Default("default string 1").NamedOnly("string_2").Default("default string 2").
		MustWrap(echo)

	sc := append(suppliedScenarios(),
		scenario{"positional-only missing takes default", []any{false}, map[string]any{"number_3": 3, "string_1": "string 1", "string_2": "string 2"}, all(false, 1, 2, 3, "string 1", "string 2"), nil},
		scenario{"named-only missing takes default", []any{false, 1}, map[string]any{"number_2": 2, "number_3": 3, "string_2": "string 2"}, all(false, 1, 2, 3, "default string 1", "string 2"), nil},
		scenario{"positional-or-named missing takes default", []any{false, 1}, map[string]any{"number_3": 3, "string_1": "string 1", "string_2": "string 2"}, all(false, 1, 2, 3, "string 1", "string 2"), nil},
		scenario{"nothing supplied", nil, nil, all(false, 1, 2, 3, "default string 1", "default string 2"), nil},
	)
	runScenarios(t, f, sc)
}

func TestMixed_ValidatorsNoDefaults(t *testing.T) {
	f := dsl.Signature("arguments_with_validators_without_defaults").
		PositionalOnly("boolean").Validate(validators.Boolean).
		PositionalOnly("number_1").Validate(validators.PositiveNumber).
		Param("number_2").Validate(validators.PositiveNumber).
		Param("number_3").Validate(validators.PositiveNumber).
		NamedOnly("string_1").Validate(validators.ShortStr).
		NamedOnly("string_2").Validate(validators.ShortStr).
		MustWrap(echo)

	long := "This is a very long string and will fail validation"
	sc := append(suppliedScenarios(),
		scenario{"positional-only invalid", []any{false, -1, 2, 3}, map[string]any{"string_1": "string 1", "string_2": "string 2"}, nil, validargs.ErrValidation},
		scenario{"named-only invalid", []any{false, 1, 2, 3}, map[string]any{"string_1": long, "string_2": "string 2"}, nil, validargs.ErrValidation},
		scenario{"positional-or-named invalid by position", []any{false, 1, 2, -3}, map[string]any{"string_1": "string 1", "string_2": "string 2"}, nil, validargs.ErrValidation},
		scenario{"positional-or-named invalid by name", []any{false, 1, 2}, map[string]any{"number_3": -3, "string_1": "string 1", "string_2": "string 2"}, nil, validargs.ErrValidation},
		scenario{"wrong type for boolean", []any{0, 1, 2, 3}, map[string]any{"string_1": "a", "string_2": "b"}, nil, validargs.ErrValidation},
		scenario{"named-only missing without validator default", []any{false, 1, 2, 3}, map[string]any{"string_2": "string 2"}, nil, validargs.ErrMissingRequired},
		scenario{"positional-or-named missing without validator default", []any{false, 1, 2}, map[string]any{"string_1": "string 1", "string_2": "string 2"}, nil, validargs.ErrMissingRequired},
	)
	runScenarios(t, f, sc)
}

func TestMixed_ValidatorsDefaults(t *testing.T) {
	f := dsl.Signature("arguments_with_validators_with_defaults").
		PositionalOnly("boolean").ValidateOr(validators.Boolean, false).
		PositionalOnly("number_1").ValidateOr(validators.PositiveNumber, 1).
		Param("number_2").ValidateOr(validators.PositiveNumber, 2).
		Param("number_3").ValidateOr(validators.PositiveNumber, 3).
		NamedOnly("string_1").ValidateOr(validators.ShortStr, "default string 1").
		NamedOnly("string_2").ValidateOr(validators.ShortStr, "default string 2").
		MustWrap(echo)

	sc := append(suppliedScenarios(),
		scenario{"positional-only invalid", []any{false, -1, 2, 3}, map[string]any{"string_1": "string 1", "string_2": "string 2"}, nil, validargs.ErrValidation},
		scenario{"all omitted take validator defaults", nil, nil, all(false, 1, 2, 3, "default string 1", "default string 2"), nil},
		scenario{"named-only omitted takes validator default", []any{true, 5}, map[string]any{"string_2": "x"}, all(true, 5, 2, 3, "default string 1", "x"), nil},
	)
	runScenarios(t, f, sc)
}

func TestMixed_ValidatorsNilDefaults(t *testing.T) {
	f := dsl.Signature("arguments_with_validators_with_none_defaults").
		PositionalOnly("boolean").ValidateOr(validators.Boolean, nil).
		PositionalOnly("number_1").ValidateOr(validators.PositiveNumber, nil).
		Param("number_2").ValidateOr(validators.PositiveNumber, nil).
		Param("number_3").ValidateOr(validators.PositiveNumber, nil).
		NamedOnly("string_1").ValidateOr(validators.ShortStr, nil).
		NamedOnly("string_2").ValidateOr(validators.ShortStr, nil).
		MustWrap(echo)

	runScenarios(t, f, []scenario{
		{"nothing supplied resolves every nil default", nil, nil, allNil(), nil},
		{"some supplied", []any{true}, map[string]any{"string_2": "x"}, map[string]any{"boolean": true, "number_1": nil, "number_2": nil, "number_3": nil, "string_1": nil, "string_2": "x"}, nil},
	})
}

func TestMixed_InvalidDefaultsFailOnlyWhenUsed(t *testing.T) {
	f := dsl.Signature("arguments_with_invalid_defaults").
		PositionalOnly("boolean").ValidateOr(validators.Boolean, "not a bool").
		PositionalOnly("number_1").ValidateOr(validators.PositiveNumber, -1).
		Param("number_2").ValidateOr(validators.PositiveNumber, -2).
		Param("number_3").ValidateOr(validators.PositiveNumber, -3).
		NamedOnly("string_1").ValidateOr(validators.ShortStr, strings.Repeat("x", 21)).
		NamedOnly("string_2").ValidateOr(validators.ShortStr, strings.Repeat("y", 21)).
		MustWrap(echo)

	runScenarios(t, f, []scenario{
		{"all supplied never touches defaults", []any{false, 1, 2, 3}, map[string]any{"string_1": "a", "string_2": "b"}, all(false, 1, 2, 3, "a", "b"), nil},
		{"positional-only default used", []any{false}, map[string]any{"number_2": 2, "number_3": 3, "string_1": "a", "string_2": "b"}, nil, validargs.ErrValidation},
		{"positional-or-named default used", []any{false, 1, 2}, map[string]any{"string_1": "a", "string_2": "b"}, nil, validargs.ErrValidation},
		{"named-only default used", []any{false, 1, 2, 3}, map[string]any{"string_2": "b"}, nil, validargs.ErrValidation},
	})
}
