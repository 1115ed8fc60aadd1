// Package manifest loads validargs parameter declarations from JSON or YAML
// documents:
//
//	name: transfer
//	params:
//	  - {name: amount, kind: positional_only, validator: positive_number}
//	  - {name: note, validator: short_str, default: null}
//	  - {name: dry_run, kind: named_only, default: false}
//
// kind defaults to positional_or_named. An absent default key declares no
// default; "default: null" declares a nil default. A validator named here is
// looked up in a validators.Registry; when the entry also has a default, the
// default belongs to the validator and goes through it on calls that use it.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/validargs"
	"github.com/reoring/validargs/validators"
)

var (
	ErrInvalidManifest  = errors.New("manifest: invalid document")
	ErrUnknownValidator = errors.New("manifest: unknown validator")
	ErrUnknownFormat    = errors.New("manifest: unknown file format")
)

// Document is a loaded declaration.
type Document struct {
	Name   string
	Params []validargs.Param
}

// Signature extracts the declared Signature.
func (d *Document) Signature() (*validargs.Signature, error) {
	return validargs.NewSignature(d.Name, d.Params...)
}

// Wrap wraps target with the declared parameters, named after the document
// unless an option overrides it.
func (d *Document) Wrap(target validargs.Callable, opts ...validargs.WrapOpt) (*validargs.Func, error) {
	opts = append([]validargs.WrapOpt{{Name: d.Name}}, opts...)
	return validargs.Wrap(target, d.Params, opts...)
}

// Load reads path and dispatches on its extension (.json, .yaml, .yml).
func Load(path string, reg *validators.Registry) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(data, reg)
	case ".yaml", ".yml":
		return LoadYAML(data, reg)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// rawParam is one decoded params entry before validator lookup. hasDefault
// keeps an absent default apart from an explicit null.
type rawParam struct {
	name       string
	kind       string
	validator  string
	def        any
	hasDefault bool
	where      string // location for error messages
}

func fromMap(m map[string]any, where string) (rawParam, error) {
	rp := rawParam{where: where}
	for k, v := range m {
		switch k {
		case "name", "kind", "validator":
			s, ok := v.(string)
			if !ok {
				return rp, fmt.Errorf("%w: %s: %q must be a string", ErrInvalidManifest, where, k)
			}
			switch k {
			case "name":
				rp.name = s
			case "kind":
				rp.kind = s
			case "validator":
				rp.validator = s
			}
		case "default":
			rp.def, rp.hasDefault = v, true
		default:
			return rp, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidManifest, where, k)
		}
	}
	return rp, nil
}

func build(name string, raws []rawParam, reg *validators.Registry) (*Document, error) {
	if reg == nil {
		reg = validators.Default()
	}
	doc := &Document{Name: name, Params: make([]validargs.Param, 0, len(raws))}
	for _, rp := range raws {
		kind, err := validargs.ParseKind(rp.kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, rp.where, err)
		}
		p := validargs.Param{Name: rp.name, Kind: kind}
		if rp.hasDefault {
			p.Default = validargs.DefaultOf(rp.def)
		}
		if rp.validator != "" {
			fn, ok := reg.Lookup(rp.validator)
			if !ok {
				return nil, fmt.Errorf("%w: %s: %q", ErrUnknownValidator, rp.where, rp.validator)
			}
			var opts []validargs.ValidatorOption
			if rp.hasDefault {
				opts = append(opts, validargs.WithDefault(rp.def))
			}
			p.Default = validargs.DefaultOf(validargs.NewValidator(fn, opts...))
		}
		doc.Params = append(doc.Params, p)
	}
	return doc, nil
}
