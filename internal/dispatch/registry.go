package dispatch

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/born-ml/extension/internal/logutil"
	"github.com/born-ml/extension/internal/tensor"
)

// Impl is a backend-specific operator implementation. It receives the call
// arguments already checked against the operator's schema.
type Impl func(args []any) (any, error)

// EntryState is the registration state of an operator name.
type EntryState int

// Operator states. Transitions only move forward.
const (
	StateUndefined EntryState = iota
	StateSchemaOnly
	StateBound
)

// String returns the state name.
func (s EntryState) String() string {
	switch s {
	case StateSchemaOnly:
		return "schema-only"
	case StateBound:
		return "bound"
	default:
		return "undefined"
	}
}

type entry struct {
	schema Schema
	impls  map[BackendKey]Impl
}

// Registry maps operator names to schemas and backend implementations.
type Registry struct {
	ops    map[string]*entry
	sealed bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops: make(map[string]*entry),
	}
}

// DefineSchema records the calling contract of an operator.
// Defining the same schema again is a no-op; a different one is an error.
func (r *Registry) DefineSchema(name string, params []Param, ret Type) error {
	if r.sealed {
		return fmt.Errorf("define %s: %w", name, ErrSealed)
	}
	if !validName(name) {
		return fmt.Errorf("define %s: invalid operator name", name)
	}

	schema := Schema{Name: name, Params: slices.Clone(params), Return: ret}
	if e, ok := r.ops[name]; ok {
		if e.schema.Equal(schema) {
			return nil
		}
		return fmt.Errorf("define %s: %w: have %q, got %q", name, ErrSchemaConflict, e.schema, schema)
	}

	r.ops[name] = &entry{schema: schema, impls: make(map[BackendKey]Impl)}
	slog.Debug("defined operator", "name", name, "schema", schema.String())
	return nil
}

// Def parses schema text and defines the operator it names.
func (r *Registry) Def(text string) error {
	s, err := ParseSchema(text)
	if err != nil {
		return err
	}
	return r.DefineSchema(s.Name, s.Params, s.Return)
}

// RegisterImpl attaches fn as the implementation of name for key, replacing
// any implementation previously registered for that pair.
func (r *Registry) RegisterImpl(name string, key BackendKey, fn Impl) error {
	if r.sealed {
		return fmt.Errorf("register %s for %s: %w", name, key, ErrSealed)
	}
	if fn == nil {
		return fmt.Errorf("register %s for %s: nil implementation", name, key)
	}
	e, ok := r.ops[name]
	if !ok {
		return fmt.Errorf("register %s for %s: %w", name, key, ErrNoSchema)
	}

	if _, exists := e.impls[key]; exists {
		slog.Warn("replacing operator implementation", "name", name, "backend", key)
	}
	e.impls[key] = fn
	slog.Debug("registered operator implementation", "name", name, "backend", key)
	return nil
}

// Seal ends the registration phase. Later definitions and registrations fail
// with ErrSealed.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Lookup returns the implementation of name for key.
func (r *Registry) Lookup(name string, key BackendKey) (Impl, error) {
	e, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	fn, ok := e.impls[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s implementation", ErrUnsupportedBackend, name, key)
	}
	return fn, nil
}

// Call dispatches an operator call. Arguments are checked against the
// schema, the backend key is taken from the tensor arguments, and exactly one
// implementation is invoked. There is no fallback to other backends.
// A result that does not match the schema's return type fails with ErrBadResult.
func (r *Registry) Call(name string, args ...any) (any, error) {
	e, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}

	bound, key, err := bind(e.schema, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	fn, ok := e.impls[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s implementation", ErrUnsupportedBackend, name, key)
	}

	logutil.Trace("dispatch", "op", name, "backend", key)
	out, err := fn(bound)
	if err != nil {
		return nil, err
	}

	// The result is normalised like an argument of the return type.
	checked, err := convert(e.schema.Return, out)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w: %w", name, key, ErrBadResult, err)
	}
	return checked, nil
}

// Schema returns the schema defined for name.
func (r *Registry) Schema(name string) (Schema, bool) {
	e, ok := r.ops[name]
	if !ok {
		return Schema{}, false
	}
	return e.schema, true
}

// State returns the registration state of name.
func (r *Registry) State(name string) EntryState {
	e, ok := r.ops[name]
	switch {
	case !ok:
		return StateUndefined
	case len(e.impls) == 0:
		return StateSchemaOnly
	default:
		return StateBound
	}
}

// Backends returns the keys name has implementations for, in key order.
func (r *Registry) Backends(name string) []BackendKey {
	e, ok := r.ops[name]
	if !ok {
		return nil
	}
	keys := make([]BackendKey, 0, len(e.impls))
	for k := range e.impls {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Ops returns all defined operator names, sorted.
func (r *Registry) Ops() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// bind checks args against s and returns them with scalars normalised,
// together with the backend key of the tensor arguments.
func bind(s Schema, args []any) ([]any, BackendKey, error) {
	if len(args) != len(s.Params) {
		return nil, 0, fmt.Errorf("%w: expected %d arguments, got %d", ErrBadArgument, len(s.Params), len(args))
	}

	bound := make([]any, len(args))
	var device tensor.Device
	seenTensor := false
	for i, p := range s.Params {
		v, err := convert(p.Type, args[i])
		if err != nil {
			return nil, 0, fmt.Errorf("%w: argument %d (%s): %w", ErrBadArgument, i, paramLabel(p), err)
		}
		bound[i] = v

		t, ok := v.(*tensor.RawTensor)
		if !ok {
			continue
		}
		if !seenTensor {
			device, seenTensor = t.Device(), true
		} else if t.Device() != device {
			return nil, 0, fmt.Errorf("%w: %s and %s", ErrDeviceMismatch, device, t.Device())
		}
	}

	// Operators without tensor arguments run on the host.
	if !seenTensor {
		return bound, CPU, nil
	}
	key, err := KeyForDevice(device)
	if err != nil {
		return nil, 0, err
	}
	return bound, key, nil
}

func convert(typ Type, v any) (any, error) {
	switch typ {
	case TypeTensor:
		t, ok := v.(*tensor.RawTensor)
		if !ok || t == nil {
			return nil, fmt.Errorf("want Tensor, got %T", v)
		}
		return t, nil
	case TypeFloat:
		switch x := v.(type) {
		case float64:
			return x, nil
		case float32:
			return float64(x), nil
		case int:
			return float64(x), nil
		case int64:
			return float64(x), nil
		}
		return nil, fmt.Errorf("want float, got %T", v)
	case TypeInt:
		switch x := v.(type) {
		case int64:
			return x, nil
		case int:
			return int64(x), nil
		case int32:
			return int64(x), nil
		}
		return nil, fmt.Errorf("want int, got %T", v)
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("want bool, got %T", v)
	default:
		return nil, fmt.Errorf("unsupported schema type %s", typ)
	}
}

func paramLabel(p Param) string {
	if p.Name == "" {
		return p.Type.String()
	}
	return p.Name
}
