// Package extension registers the extension's operators with a dispatch registry.
package extension

import (
	"fmt"
	"sync"

	"github.com/born-ml/extension/internal/backend/cpu"
	"github.com/born-ml/extension/internal/dispatch"
	"github.com/born-ml/extension/internal/tensor"
)

// Library is the namespace the extension's operators live in.
const Library = "extension_cpp"

// MulAddSchema is the calling contract of the fused multiply-add operator.
const MulAddSchema = "muladd_cpp(Tensor a, Tensor b, float c) -> Tensor"

// MulAddOp is the qualified name MulAdd is dispatched under.
const MulAddOp = Library + "::muladd_cpp"

// Register defines the extension's schemas on r and attaches their CPU
// implementations. It must run before r is shared between goroutines.
func Register(r *dispatch.Registry) error {
	lib := r.Library(Library)
	if err := lib.Def(MulAddSchema); err != nil {
		return fmt.Errorf("extension: %w", err)
	}

	backend := cpu.New()
	if err := lib.Impl("muladd_cpp", dispatch.CPU, dispatch.Impl3(backend.MulAdd)); err != nil {
		return fmt.Errorf("extension: %w", err)
	}
	return nil
}

// Load returns a sealed registry holding the extension's operators.
func Load() (*dispatch.Registry, error) {
	r := dispatch.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}
	r.Seal()
	return r, nil
}

// MustLoad is like Load but panics if registration fails: an extension that
// cannot register its operators must not finish loading.
func MustLoad() *dispatch.Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// Init is the host's import hook. It loads the extension once per process
// and returns the same registry on every call.
var Init = sync.OnceValue(MustLoad)

// MulAdd dispatches a*b + c through r.
func MulAdd(r *dispatch.Registry, a, b *tensor.RawTensor, c float64) (*tensor.RawTensor, error) {
	out, err := r.Call(MulAddOp, a, b, c)
	if err != nil {
		return nil, err
	}
	t, ok := out.(*tensor.RawTensor)
	if !ok {
		return nil, fmt.Errorf("%s: %w: got %T", MulAddOp, dispatch.ErrBadResult, out)
	}
	return t, nil
}
