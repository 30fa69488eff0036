package mir

// Module is the complete lowered program: the flat declaration list LIR
// needs for declare-fun output (Vars), the module-level statements (body,
// under the root branch's path condition, which is always empty), and the
// independently-verified functions.
//
// Vars is collected by the root Branch's AllVars once lowering finishes: a
// walk of the whole tree, loop bodies included, that lists every Var once,
// in the branch that created it.
type Module struct {
	Vars  []Var
	Body  []Stmt
	Funcs []*FuncDef
}
