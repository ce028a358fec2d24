package checker

import "github.com/lumenlang/lumen/internal/term"

// scopedCache memoizes inferred types keyed by node identity, organized as a
// stack of layers. Entering a binder pushes a layer; leaving it pops the
// layer, discarding every entry computed under the extended context. Entries
// from outer layers stay visible inside inner scopes, since the inner context
// only adds bindings on top of the outer one.
//
// Validity is coarse: the checker clears the whole cache whenever the
// context identity or the substitution identity/version changes.
type scopedCache struct {
	layers []map[term.Expr]term.Expr
}

func newScopedCache() *scopedCache {
	return &scopedCache{layers: []map[term.Expr]term.Expr{make(map[term.Expr]term.Expr)}}
}

func (c *scopedCache) lookup(e term.Expr) (term.Expr, bool) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if t, ok := c.layers[i][e]; ok {
			return t, true
		}
	}
	return nil, false
}

func (c *scopedCache) insert(e, t term.Expr) {
	c.layers[len(c.layers)-1][e] = t
}

func (c *scopedCache) push() {
	c.layers = append(c.layers, make(map[term.Expr]term.Expr))
}

func (c *scopedCache) pop() {
	if len(c.layers) == 1 {
		panic("scopedCache: pop on base layer")
	}
	c.layers = c.layers[:len(c.layers)-1]
}

func (c *scopedCache) clear() {
	c.layers = c.layers[:0]
	c.layers = append(c.layers, make(map[term.Expr]term.Expr))
}

func (c *scopedCache) size() int {
	n := 0
	for _, layer := range c.layers {
		n += len(layer)
	}
	return n
}
