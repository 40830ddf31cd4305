package dispatch

// Library registers operators under a namespace, so that op "muladd" in
// library "ext" is called as "ext::muladd".
type Library struct {
	r  *Registry
	ns string
}

// Library returns a namespace helper bound to r.
func (r *Registry) Library(ns string) *Library {
	return &Library{r: r, ns: ns}
}

// Name returns the qualified name of op.
func (l *Library) Name(op string) string {
	return l.ns + "::" + op
}

// Def parses schema text and defines it under the library namespace.
func (l *Library) Def(text string) error {
	s, err := ParseSchema(text)
	if err != nil {
		return err
	}
	return l.r.DefineSchema(l.Name(s.Name), s.Params, s.Return)
}

// Impl registers fn for op under the library namespace.
func (l *Library) Impl(op string, key BackendKey, fn Impl) error {
	return l.r.RegisterImpl(l.Name(op), key, fn)
}
