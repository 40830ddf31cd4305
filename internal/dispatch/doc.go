// Package dispatch maps operator names to backend-specific implementations.
//
// An operator is first given a Schema, its fixed calling contract, and then
// one implementation per BackendKey. At call time the Registry derives the
// key from the tensor arguments and invokes exactly one implementation:
//
//	r := dispatch.NewRegistry()
//	lib := r.Library("extension_cpp")
//	_ = lib.Def("muladd_cpp(Tensor a, Tensor b, float c) -> Tensor")
//	_ = lib.Impl("muladd_cpp", dispatch.CPU, dispatch.Impl3(backend.MulAdd))
//	r.Seal()
//
//	out, err := r.Call("extension_cpp::muladd_cpp", a, b, 2.0)
//
// Registration happens once, single-threaded, while the host initialises.
// The Registry does no locking; after Seal it is read-only and Call is safe
// for concurrent use.
package dispatch
