package hir

import (
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// scope is a flat name -> type binding table covering one function body (or
// the module's top-level statements). A Name is well-formed in Load context
// only once it carries a binding here, either as a parameter or from a prior
// Store.
//
// Branches do not get their own persistent scope object. lowerIf and
// lowerWhile clone
// the enclosing scope, lowers the arm against the clone, and the caller
// merges the clone's new/changed bindings back — the same shape MIR
// reconciliation later gives the SSA versions of those identifiers, so a
// variable first assigned inside only one arm of an if is still visible
// (and typed) afterward; whether every control-flow path actually produced
// a value for it is left to MIR's resolve_var, not re-checked here.
type scope map[source.StringID]types.Kind

func newScope() scope {
	return make(scope)
}

func (s scope) clone() scope {
	cp := make(scope, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

func (s scope) lookup(name source.StringID) (types.Kind, bool) {
	k, ok := s[name]
	return k, ok
}

func (s scope) bind(name source.StringID, k types.Kind) {
	s[name] = k
}

// mergeBranch folds a branch scope's bindings back into s once the branch
// has been lowered. A name bound in both branch and original unifies their
// two types (ok is false if they don't unify, e.g. one arm assigns Bool and
// the other Real with no common promotion target — unreachable today since
// Unify always succeeds on two non-Invalid kinds, but kept as a guard). A
// name introduced fresh inside the branch is bound as-is.
func (s scope) mergeBranch(branch scope) {
	for name, k := range branch {
		if prior, ok := s[name]; ok {
			if unified, ok := types.Unify(prior, k); ok {
				s[name] = unified
				continue
			}
		}
		s[name] = k
	}
}
