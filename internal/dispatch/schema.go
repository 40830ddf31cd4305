package dispatch

import (
	"fmt"
	"strings"
)

// Type is the declared type of a schema parameter or return value.
type Type int

// Schema types.
const (
	TypeTensor Type = iota
	TypeFloat
	TypeInt
	TypeBool
)

// String returns the type as written in schema text.
func (t Type) String() string {
	switch t {
	case TypeTensor:
		return "Tensor"
	case TypeFloat:
		return "float"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses a type name as written in schema text.
func ParseType(s string) (Type, error) {
	switch s {
	case "Tensor":
		return TypeTensor, nil
	case "float":
		return TypeFloat, nil
	case "int":
		return TypeInt, nil
	case "bool":
		return TypeBool, nil
	default:
		return 0, fmt.Errorf("unknown schema type %q", s)
	}
}

// Param is one formal parameter of an operator.
type Param struct {
	Name string
	Type Type
}

// Schema is the calling contract of an operator: its name, ordered
// parameters and single return type.
type Schema struct {
	Name   string
	Params []Param
	Return Type
}

// String renders the schema in the form accepted by ParseSchema.
func (s Schema) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.String())
		if p.Name != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.Name)
		}
	}
	sb.WriteString(") -> ")
	sb.WriteString(s.Return.String())
	return sb.String()
}

// Equal reports whether two schemas describe the same contract.
func (s Schema) Equal(other Schema) bool {
	if s.Name != other.Name || s.Return != other.Return || len(s.Params) != len(other.Params) {
		return false
	}
	for i := range s.Params {
		if s.Params[i] != other.Params[i] {
			return false
		}
	}
	return true
}

// ParseSchema parses schema text such as
//
//	muladd_cpp(Tensor a, Tensor b, float c) -> Tensor
//
// Parameter names are optional.
func ParseSchema(text string) (Schema, error) {
	head, ret, ok := strings.Cut(text, "->")
	if !ok {
		return Schema{}, fmt.Errorf("schema %q: missing return type", text)
	}

	var s Schema
	var err error
	if s.Return, err = ParseType(strings.TrimSpace(ret)); err != nil {
		return Schema{}, fmt.Errorf("schema %q: %w", text, err)
	}

	head = strings.TrimSpace(head)
	open := strings.IndexByte(head, '(')
	if open < 0 || !strings.HasSuffix(head, ")") {
		return Schema{}, fmt.Errorf("schema %q: malformed parameter list", text)
	}
	s.Name = strings.TrimSpace(head[:open])
	if !validName(s.Name) {
		return Schema{}, fmt.Errorf("schema %q: invalid operator name %q", text, s.Name)
	}

	args := strings.TrimSpace(head[open+1 : len(head)-1])
	if args == "" {
		return s, nil
	}
	for _, field := range strings.Split(args, ",") {
		parts := strings.Fields(field)
		if len(parts) == 0 || len(parts) > 2 {
			return Schema{}, fmt.Errorf("schema %q: malformed parameter %q", text, strings.TrimSpace(field))
		}
		typ, err := ParseType(parts[0])
		if err != nil {
			return Schema{}, fmt.Errorf("schema %q: %w", text, err)
		}
		p := Param{Type: typ}
		if len(parts) == 2 {
			p.Name = parts[1]
		}
		s.Params = append(s.Params, p)
	}
	return s, nil
}

// validName accepts identifiers, optionally qualified as ns::name.
func validName(name string) bool {
	ns, op, qualified := strings.Cut(name, "::")
	if !qualified {
		return isIdent(name)
	}
	return isIdent(ns) && isIdent(op)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
