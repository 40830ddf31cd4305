package dispatch

import "fmt"

// Impl1 adapts a typed one-argument function to an Impl.
func Impl1[A, R any](fn func(A) (R, error)) Impl {
	return func(args []any) (any, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		return result(fn(a))
	}
}

// Impl2 adapts a typed two-argument function to an Impl.
func Impl2[A, B, R any](fn func(A, B) (R, error)) Impl {
	return func(args []any) (any, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := arg[B](args, 1)
		if err != nil {
			return nil, err
		}
		return result(fn(a, b))
	}
}

// Impl3 adapts a typed three-argument function to an Impl. The argument
// types must be the ones Call produces for the schema: *tensor.RawTensor for
// Tensor, float64 for float, int64 for int and bool for bool. Any other
// type fails every call with ErrBadArgument.
func Impl3[A, B, C, R any](fn func(A, B, C) (R, error)) Impl {
	return func(args []any) (any, error) {
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := arg[B](args, 1)
		if err != nil {
			return nil, err
		}
		c, err := arg[C](args, 2)
		if err != nil {
			return nil, err
		}
		return result(fn(a, b, c))
	}
}

func arity(args []any, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: implementation takes %d arguments, got %d", ErrBadArgument, n, len(args))
	}
	return nil
}

func arg[T any](args []any, i int) (T, error) {
	v, ok := args[i].(T)
	if !ok {
		return v, fmt.Errorf("%w: implementation wants %T for argument %d, got %T", ErrBadArgument, v, i, args[i])
	}
	return v, nil
}

// result drops the value of a failed call, so callers never see a typed nil.
func result[R any](v R, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
