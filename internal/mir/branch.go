package mir

import (
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// counter hands out strictly increasing Branch indices across an entire
// tree. It is never reset, including after reconcile() folds children back
// into a parent — a later subscope() must never reuse an index that named
// a branch whose variables might still be referenced by an earlier Var's
// Scope path.
type counter struct{ next int }

func (c *counter) take() int {
	idx := c.next
	c.next++
	return idx
}

// Branch is one node of the tree that roots a function body or the module's
// top-level statements. The root has Condition == nil; an if/else opens one
// child per arm, the child's Condition holding the (possibly negated) test.
type Branch struct {
	idx       int
	parent    *Branch
	children  []*Branch
	condition *Expr
	counter   *counter

	vars  map[source.StringID][]Var
	order []source.StringID // identifiers in first-store order, this branch only

	// reconciledUpTo is how many of b.children reconcile() has already
	// folded back. A branch can open several unrelated if/else pairs in
	// sequence; each must reconcile only the pair it just opened, never
	// re-fold a sibling if/else's already-reconciled children.
	reconciledUpTo int
}

// newRoot creates the root Branch of a fresh tree (one per FuncDef, plus
// one for the module's top-level statements).
func newRoot() *Branch {
	return &Branch{
		idx:     0,
		counter: &counter{next: 1},
		vars:    make(map[source.StringID][]Var),
	}
}

// subscope opens a new child branch. condition is nil for a plain nested
// scope (a loop body, for instance, where the test is handled separately);
// it holds the arm's test (already negated for an else arm) for an if/else
// child.
func (b *Branch) subscope(condition *Expr) *Branch {
	child := &Branch{
		idx:       b.counter.take(),
		parent:    b,
		condition: condition,
		counter:   b.counter,
		vars:      make(map[source.StringID][]Var),
	}
	b.children = append(b.children, child)
	return child
}

// path returns the branch indices from the root to b, inclusive.
func (b *Branch) path() []int {
	var rev []int
	for n := b; n != nil; n = n.parent {
		rev = append(rev, n.idx)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// PathCondition returns the list of branch conditions from the root to b,
// omitting the root's nil condition and any intermediate nil (a bare
// subscope contributes nothing to the path condition).
func (b *Branch) PathCondition() []Expr {
	var rev []Expr
	for n := b; n != nil; n = n.parent {
		if n.condition != nil {
			rev = append(rev, *n.condition)
		}
	}
	cond := make([]Expr, len(rev))
	for i, v := range rev {
		cond[len(rev)-1-i] = v
	}
	return cond
}

// resolveVar walks from b up to the root, returning the latest version of
// ident found. Returns false if ident has never been stored on this path.
func (b *Branch) resolveVar(ident source.StringID) (Var, bool) {
	for n := b; n != nil; n = n.parent {
		if vs, ok := n.vars[ident]; ok && len(vs) > 0 {
			return vs[len(vs)-1], true
		}
	}
	return Var{}, false
}

// storeVar creates and records a fresh version of ident local to b. version
// is the number of versions of ident already recorded in b specifically
// (not counting ancestors) — shadowing a parent's binding is intentional;
// resolveVar always prefers the nearest branch's own version.
func (b *Branch) storeVar(ident source.StringID, kind types.Kind) Var {
	if _, ok := b.vars[ident]; !ok {
		b.order = append(b.order, ident)
	}
	v := Var{Ident: ident, Version: len(b.vars[ident]), Scope: b.path(), Type: kind}
	b.vars[ident] = append(b.vars[ident], v)
	return v
}

// reconcile merges b's direct children back into b after an if/else (or any
// set of mutually exclusive subscopes) has been fully lowered. For every
// identifier written in at least one child it allocates one fresh merged
// Var in b, emits one mutually-exclusive conditional Assign per child that
// wrote it, then folds each child's versions of that identifier (and
// finally the merged Var itself) into b's own version list — so later
// resolveVar calls against b see the merged value.
func (b *Branch) reconcile() []Stmt {
	pending := b.children[b.reconciledUpTo:]
	b.reconciledUpTo = len(b.children)

	var idents []source.StringID
	seen := make(map[source.StringID]bool)
	for _, c := range pending {
		for _, id := range c.order {
			if !seen[id] {
				seen[id] = true
				idents = append(idents, id)
			}
		}
	}

	var assigns []Stmt
	for _, ident := range idents {
		existing := len(b.vars[ident])
		var kind types.Kind
		for _, c := range pending {
			if v, ok := c.resolveVar(ident); ok {
				kind = v.Type
				break
			}
		}
		merged := Var{Ident: ident, Version: existing, Scope: b.path(), Type: kind}

		for _, c := range pending {
			v, ok := c.resolveVar(ident)
			if !ok {
				continue
			}
			assigns = append(assigns, newAssign(source.Span{}, c.PathCondition(), merged, NewVarExpr(source.Span{}, v)))
		}

		if _, ok := b.vars[ident]; !ok {
			b.order = append(b.order, ident)
		}
		for _, c := range pending {
			if vs, ok := c.vars[ident]; ok {
				b.vars[ident] = append(b.vars[ident], vs...)
			}
		}
		b.vars[ident] = append(b.vars[ident], merged)
	}
	return assigns
}

// AllVars returns every Var created in b or in any branch below it, loop
// bodies included, each listed once: b's own Vars in first-store order,
// then each child's, depth first. Called on a tree's root once lowering
// finishes, this is the tree's full declaration list.
func (b *Branch) AllVars() []Var {
	var out []Var
	for _, ident := range b.order {
		for _, v := range b.vars[ident] {
			if v.Scope[len(v.Scope)-1] == b.idx {
				out = append(out, v)
			}
		}
	}
	for _, c := range b.children {
		out = append(out, c.AllVars()...)
	}
	return out
}
