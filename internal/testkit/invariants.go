// Package testkit provides reusable invariant checkers shared between a
// lowering pass's own unit tests and any higher-level integration test, so
// the traversal logic for each universal law is written once rather than
// duplicated per call site — mirrors the teacher's own
// CheckSpanInvariants, one assertion helper per structural law a lowering
// pass must uphold.
package testkit

import (
	"fmt"

	"github.com/verislang/veris/internal/lir"
	"github.com/verislang/veris/internal/mir"
)

// CheckTypeSoundness verifies that every MIR assignment's left- and
// right-hand sides agree in type — the closed {Bool, Int, Real} lattice
// gives mir.Lower no implicit-conversion cases to get wrong, so any
// mismatch here is a lowering bug, not a legitimate promotion.
func CheckTypeSoundness(mod *mir.Module) error {
	if err := checkAssignTypes(mod.Body); err != nil {
		return err
	}
	for _, fn := range mod.Funcs {
		if err := checkAssignTypes(fn.Body); err != nil {
			return fmt.Errorf("func %d: %w", fn.Name, err)
		}
	}
	return nil
}

func checkAssignTypes(stmts []mir.Stmt) error {
	for _, st := range stmts {
		if st.Kind != mir.StmtAssign {
			continue
		}
		data := st.Data.(mir.AssignData)
		if data.Lhs.Type != data.Rhs.Type {
			return fmt.Errorf("assign at %v: lhs type %v != rhs type %v", st.Span, data.Lhs.Type, data.Rhs.Type)
		}
	}
	return nil
}

// CheckSSAUniqueness verifies that no two Vars recorded anywhere in mod
// share an (Ident, Scope, Version) identity — the SSA property mir.Branch's
// reconcile/storeVar machinery exists to guarantee.
func CheckSSAUniqueness(mod *mir.Module) error {
	if err := checkUnique(mod.Vars); err != nil {
		return err
	}
	for _, fn := range mod.Funcs {
		if err := checkUnique(fn.Vars); err != nil {
			return fmt.Errorf("func %d: %w", fn.Name, err)
		}
	}
	return nil
}

func checkUnique(vars []mir.Var) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		key := fmt.Sprintf("%d/%v/%d", v.Ident, v.Scope, v.Version)
		if seen[key] {
			return fmt.Errorf("duplicate SSA identity ident=%d scope=%v version=%d", v.Ident, v.Scope, v.Version)
		}
		seen[key] = true
	}
	return nil
}

// CheckSymbolsAreDeclared verifies that every symbol reference reachable
// from model's Items resolves to an entry in model.Decls — every flattened
// name a lowering pass ever emits a reference to must have been declared,
// since the SMT emitter has no forward-declaration mechanism.
func CheckSymbolsAreDeclared(model *lir.Model) error {
	declared := make(map[string]bool, len(model.Decls))
	for _, d := range model.Decls {
		declared[d.Name] = true
	}
	var walk func(e lir.Expr) error
	walk = func(e lir.Expr) error {
		switch e.Kind {
		case lir.ExprSymbol:
			name := e.Data.(lir.SymbolData).Name
			if !declared[name] {
				return fmt.Errorf("referenced symbol %q has no matching declaration", name)
			}
		case lir.ExprCall:
			for _, a := range e.Data.(lir.CallData).Args {
				if err := walk(a); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, item := range model.Items {
		switch item.Kind {
		case lir.ItemAssume:
			if err := walk(item.Data.(lir.AssumeData).Test); err != nil {
				return err
			}
		case lir.ItemValidityScope:
			data := item.Data.(lir.ValidityScopeData)
			if err := walk(data.Test); err != nil {
				return err
			}
			for _, pc := range data.PathCondition {
				if err := walk(pc); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CheckValidityScopesAreWellNested verifies the push/pop discipline the SMT
// emitter and solver driver both rely on: every ValidityScope item is
// self-contained (its push and pop are adjacent in the items it produces),
// so scopes can never interleave — a violation here would mean a
// validity scope's obligation leaked standing assertions into a sibling
// scope, invalidating both verdicts.
func CheckValidityScopesAreWellNested(model *lir.Model) error {
	depth := 0
	for _, item := range model.Items {
		if item.Kind != lir.ItemValidityScope {
			continue
		}
		depth++
		if depth != 1 {
			return fmt.Errorf("validity scope opened while another was still open (depth %d) — scopes must be emitted strictly sequentially, never nested", depth)
		}
		depth--
	}
	return nil
}
