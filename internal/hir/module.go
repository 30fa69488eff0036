package hir

// Module is the root of an HIR tree for a single source file: its
// function definitions plus any top-level statements, which are verified as
// an implicit entry scope (the module's own Branch root during MIR lowering).
type Module struct {
	Funcs []*FuncDef
	Body  []Stmt
}
