package term

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// String forms use raw de Bruijn indices (#0, #1, ...) rather than
// reconstructed names, since scope information lives in the context.

func (e *Var) String() string   { return fmt.Sprintf("#%d", e.Idx) }
func (e *Const) String() string { return e.Name }
func (e *Lit) String() string   { return e.Name }
func (e *Sort) String() string  { return fmt.Sprintf("Type(%s)", e.Level) }
func (e *Meta) String() string  { return fmt.Sprintf("?m%d", e.ID) }

func (e *App) String() string {
	parts := lo.Map(e.Args, func(a Expr, _ int) string { return a.String() })
	return "(" + strings.Join(parts, " ") + ")"
}

func (e *Lambda) String() string {
	return fmt.Sprintf("(fun %s : %s, %s)", e.Name, e.Domain, e.Body)
}

func (e *Pi) String() string {
	return fmt.Sprintf("(Pi %s : %s, %s)", e.Name, e.Domain, e.Body)
}

func (e *Let) String() string {
	if e.Type != nil {
		return fmt.Sprintf("(let %s : %s := %s in %s)", e.Name, e.Type, e.Value, e.Body)
	}
	return fmt.Sprintf("(let %s := %s in %s)", e.Name, e.Value, e.Body)
}

func (e *Eq) String() string {
	return fmt.Sprintf("(%s == %s)", e.LHS, e.RHS)
}
