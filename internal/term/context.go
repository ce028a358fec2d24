package term

// Entry is one context binding. Domain is the declared type of the bound
// variable and may be nil when the binder came in through a let whose type
// was never stated; Value is the bound value for let-like entries, nil for
// plain binders. At least one of the two is set.
type Entry struct {
	Name   string
	Domain Expr
	Value  Expr
}

// Context is a persistent, singly-extensible sequence of bindings addressed
// by de Bruijn index: index 0 is the most recently added entry. The nil
// pointer is the empty context. Extending shares the old context as a tail,
// so extension is O(1) and existing references are never invalidated.
//
// The checker compares contexts by pointer identity, never structurally:
// two structurally equal but distinct contexts are different contexts.
type Context struct {
	entry Entry
	tail  *Context
	depth int
}

// Extend returns a new context with a plain binder of the given domain on
// top of ctx.
func Extend(ctx *Context, name string, domain Expr) *Context {
	return push(ctx, Entry{Name: name, Domain: domain})
}

// ExtendLet returns a new context with a let-style entry on top of ctx. The
// declared type may be nil; the checker then chases the value's type on
// demand.
func ExtendLet(ctx *Context, name string, typ, value Expr) *Context {
	return push(ctx, Entry{Name: name, Domain: typ, Value: value})
}

func push(ctx *Context, e Entry) *Context {
	return &Context{entry: e, tail: ctx, depth: ctx.Len() + 1}
}

// Len returns the number of entries.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// Lookup returns the entry at de Bruijn index i.
func (c *Context) Lookup(i int) (Entry, error) {
	e, _, err := c.LookupExt(i)
	return e, err
}

// LookupExt returns the entry at de Bruijn index i together with the context
// the entry was introduced in (the tail below it). The defining context is
// what a caller needs to infer the type of the entry's bound value: that
// value is expressed relative to the shorter context, and the result must be
// lifted by the depth difference before use at the lookup point.
func (c *Context) LookupExt(i int) (Entry, *Context, error) {
	if i < 0 || i >= c.Len() {
		return Entry{}, nil, &UnboundVarError{Idx: i, Depth: c.Len()}
	}
	cur := c
	for ; i > 0; i-- {
		cur = cur.tail
	}
	return cur.entry, cur.tail, nil
}
