package lir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verislang/veris/internal/mir"
	"github.com/verislang/veris/internal/source"
)

// Lower flattens a MIR module into an emission-ready Model: the module's
// top-level statements first, then each function's body — independently,
// against its own prefix-stack push, so its parameters and locals never
// collide with the module's or a sibling function's names of the same
// source identifier.
func Lower(mod *mir.Module, interner *source.Interner) *Model {
	l := &lowerer{interner: interner, callReturnPrefix: make(map[string]string)}

	m := &Model{}

	// lowerStmts must run before declareAll: it is what assigns each
	// modular call its "!call_<n>!" fragment (via callReturnPrefix), and a
	// declaration's flattened name must match every later reference to it.
	moduleItems := l.lowerStmts(mod.Body)
	l.declareAll(mod.Vars, m)
	m.Items = append(m.Items, moduleItems...)

	for _, fn := range mod.Funcs {
		l.pushPrefix(interner.MustLookup(fn.Name) + "!")
		fnItems := l.lowerStmts(fn.Body)
		l.declareAll(fn.Vars, m)
		m.Items = append(m.Items, fnItems...)
		l.popPrefix()
	}

	return m
}

// lowerer holds the state threaded through one model's LIR lowering:
// the prefix stack (pushed entering a FuncDef) and the call counter
// (incremented per modular call encoding), per the specification — both
// are fields here, not process-global.
type lowerer struct {
	interner    *source.Interner
	prefixStack []string
	callCounter int

	// callReturnPrefix maps a havoc'd call-site return Var (keyed by its
	// identity) to the "!call_<n>!" fragment assigned when its FuncCall
	// was lowered, so every later reference to that same Var (e.g. the
	// Assign that binds the call's result to the caller's own variable)
	// names it identically.
	callReturnPrefix map[string]string
}

func (l *lowerer) pushPrefix(p string) { l.prefixStack = append(l.prefixStack, p) }
func (l *lowerer) popPrefix()          { l.prefixStack = l.prefixStack[:len(l.prefixStack)-1] }

func varKey(v mir.Var) string {
	return fmt.Sprintf("%d/%v/%d", v.Ident, v.Scope, v.Version)
}

// name flattens v into its final SMT-LIB identifier: the current prefix
// stack, a `!call_<n>!` fragment if v is a call-site havoc'd return value,
// the source identifier, then `$`-joined scope path and version.
func (l *lowerer) name(v mir.Var) string {
	var b strings.Builder
	for _, p := range l.prefixStack {
		b.WriteString(p)
	}
	if callPrefix, ok := l.callReturnPrefix[varKey(v)]; ok {
		b.WriteString(callPrefix)
	}
	b.WriteString(l.interner.MustLookup(v.Ident))
	b.WriteByte('$')
	for i, idx := range v.Scope {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteByte('$')
	b.WriteString(strconv.Itoa(v.Version))
	return b.String()
}

func (l *lowerer) declareAll(vars []mir.Var, m *Model) {
	for _, v := range vars {
		m.Decls = append(m.Decls, Decl{
			Name:       l.name(v),
			SourceName: l.interner.MustLookup(v.Ident),
			Sort:       sortOf(v.Type),
		})
	}
}
