package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/hir"
	"github.com/verislang/veris/internal/mir"
)

func indent(w io.Writer, depth int, format string, args ...any) {
	fmt.Fprint(w, strings.Repeat("  ", depth))
	fmt.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

// dumpModule walks the parsed AST's arenas and prints a flat indented tree —
// there is no separate astdump package since the arena-indexed shape only
// ever needs to be walked from this one debug entry point.
func dumpModule(w io.Writer, b *ast.Builder, mod *ast.Module) {
	for _, fid := range mod.Funcs {
		fn := b.Funcs.Get(fid)
		if fn == nil {
			continue
		}
		indent(w, 0, "func %s", b.StringsInterner.MustLookup(fn.Name))
		for _, p := range fn.Params {
			indent(w, 1, "param %s: %s", b.StringsInterner.MustLookup(p.Name), b.StringsInterner.MustLookup(p.TypeName))
		}
		for _, d := range fn.Decorators {
			indent(w, 1, "@%s", b.StringsInterner.MustLookup(d.Name))
		}
		dumpStmt(w, b, fn.Body, 1)
	}
	if len(mod.Stmts) > 0 {
		indent(w, 0, "top-level")
		for _, sid := range mod.Stmts {
			dumpStmt(w, b, sid, 1)
		}
	}
}

func dumpStmt(w io.Writer, b *ast.Builder, id ast.StmtID, depth int) {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		data, _ := b.Stmts.Block(id)
		for _, s := range data.Stmts {
			dumpStmt(w, b, s, depth)
		}
	case ast.StmtAssign:
		data, _ := b.Stmts.Assign(id)
		names := make([]string, len(data.Targets))
		for i, t := range data.Targets {
			names[i] = b.StringsInterner.MustLookup(t)
		}
		indent(w, depth, "assign %s", strings.Join(names, ", "))
		dumpExpr(w, b, data.Value, depth+1)
	case ast.StmtAssert:
		data, _ := b.Stmts.Assert(id)
		indent(w, depth, "assert")
		dumpExpr(w, b, data.Cond, depth+1)
	case ast.StmtExpr:
		data, _ := b.Stmts.ExprStmt(id)
		indent(w, depth, "expr")
		dumpExpr(w, b, data.Value, depth+1)
	case ast.StmtReturn:
		data, _ := b.Stmts.Return(id)
		indent(w, depth, "return")
		if data.Value != ast.NoExprID {
			dumpExpr(w, b, data.Value, depth+1)
		}
	case ast.StmtIf:
		data, _ := b.Stmts.If(id)
		indent(w, depth, "if")
		dumpExpr(w, b, data.Cond, depth+1)
		indent(w, depth, "then")
		dumpStmt(w, b, data.Then, depth+1)
		if data.Else != ast.NoStmtID {
			indent(w, depth, "else")
			dumpStmt(w, b, data.Else, depth+1)
		}
	case ast.StmtWhile:
		data, _ := b.Stmts.While(id)
		indent(w, depth, "while")
		dumpExpr(w, b, data.Cond, depth+1)
		dumpStmt(w, b, data.Body, depth+1)
	case ast.StmtPass:
		indent(w, depth, "pass")
	}
}

func dumpExpr(w io.Writer, b *ast.Builder, id ast.ExprID, depth int) {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprName:
		data, _ := b.Exprs.Name(id)
		indent(w, depth, "name %s", b.StringsInterner.MustLookup(data.Name))
	case ast.ExprConst:
		data, _ := b.Exprs.Const(id)
		switch data.Kind {
		case ast.ConstBool:
			indent(w, depth, "const bool %v", data.Bool)
		default:
			indent(w, depth, "const %s", b.StringsInterner.MustLookup(data.Text))
		}
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		indent(w, depth, "binary op=%d", data.Op)
		dumpExpr(w, b, data.Left, depth+1)
		dumpExpr(w, b, data.Right, depth+1)
	case ast.ExprUnary:
		data, _ := b.Exprs.Unary(id)
		indent(w, depth, "unary op=%d", data.Op)
		dumpExpr(w, b, data.Operand, depth+1)
	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		indent(w, depth, "call %s", b.StringsInterner.MustLookup(data.Callee))
		for _, a := range data.Args {
			dumpExpr(w, b, a, depth+1)
		}
	case ast.ExprMember:
		data, _ := b.Exprs.Member(id)
		indent(w, depth, "member .%s", b.StringsInterner.MustLookup(data.Field))
		dumpExpr(w, b, data.Target, depth+1)
	case ast.ExprGroup:
		data, _ := b.Exprs.Group(id)
		indent(w, depth, "group")
		dumpExpr(w, b, data.Inner, depth+1)
	}
}

func dumpHIR(w io.Writer, mod *hir.Module) {
	for _, fn := range mod.Funcs {
		indent(w, 0, "func type=%d", fn.RetType)
		for _, p := range fn.Params {
			indent(w, 1, "param type=%d", p.Type)
		}
		for _, pre := range fn.Preconds {
			indent(w, 1, "precond")
			dumpHIRExpr(w, pre, 2)
		}
		for _, post := range fn.Postconds {
			indent(w, 1, "postcond")
			dumpHIRExpr(w, post, 2)
		}
		dumpHIRStmts(w, fn.Body, 1)
	}
	if len(mod.Body) > 0 {
		indent(w, 0, "top-level")
		dumpHIRStmts(w, mod.Body, 1)
	}
}

func dumpHIRStmts(w io.Writer, stmts []hir.Stmt, depth int) {
	for _, st := range stmts {
		dumpHIRStmt(w, st, depth)
	}
}

func dumpHIRStmt(w io.Writer, st hir.Stmt, depth int) {
	switch data := st.Data.(type) {
	case hir.AssignData:
		indent(w, depth, "assign")
		dumpHIRExpr(w, data.Lhs, depth+1)
		dumpHIRExpr(w, data.Rhs, depth+1)
	case hir.AssertData:
		indent(w, depth, "assert")
		dumpHIRExpr(w, data.Test, depth+1)
	case hir.IfData:
		indent(w, depth, "if")
		dumpHIRExpr(w, data.Test, depth+1)
		indent(w, depth, "then")
		dumpHIRStmts(w, data.Body, depth+1)
		if len(data.Orelse) > 0 {
			indent(w, depth, "else")
			dumpHIRStmts(w, data.Orelse, depth+1)
		}
	case hir.LoopData:
		indent(w, depth, "loop")
		dumpHIRExpr(w, data.Test, depth+1)
		for _, inv := range data.Invariants {
			indent(w, depth+1, "invariant")
			dumpHIRExpr(w, inv, depth+2)
		}
		dumpHIRStmts(w, data.Body, depth+1)
	case hir.PassData:
		indent(w, depth, "pass")
	}
}

func dumpHIRExpr(w io.Writer, e *hir.Expr, depth int) {
	if e == nil {
		return
	}
	switch data := e.Data.(type) {
	case hir.ConstantData:
		indent(w, depth, "const type=%d int=%d real=%g bool=%v", e.Type, data.Int, data.Real, data.Bool)
	case hir.NameData:
		indent(w, depth, "name type=%d ctx=%d", e.Type, data.Ctx)
	case hir.BinaryData:
		indent(w, depth, "binary type=%d op=%d", e.Type, data.Op)
		dumpHIRExpr(w, data.Left, depth+1)
		dumpHIRExpr(w, data.Right, depth+1)
	case hir.UnaryData:
		indent(w, depth, "unary type=%d op=%d", e.Type, data.Op)
		dumpHIRExpr(w, data.Operand, depth+1)
	case hir.CallData:
		indent(w, depth, "call type=%d", e.Type)
		for _, a := range data.Args {
			dumpHIRExpr(w, a, depth+1)
		}
	}
}

func dumpMIR(w io.Writer, mod *mir.Module) {
	indent(w, 0, "vars=%d", len(mod.Vars))
	for _, fn := range mod.Funcs {
		indent(w, 0, "func type=%d vars=%d", fn.RetType, len(fn.Vars))
		dumpMIRStmts(w, fn.Body, 1)
	}
	if len(mod.Body) > 0 {
		indent(w, 0, "top-level")
		dumpMIRStmts(w, mod.Body, 1)
	}
}

func dumpMIRStmts(w io.Writer, stmts []mir.Stmt, depth int) {
	for _, st := range stmts {
		switch data := st.Data.(type) {
		case mir.AssignData:
			indent(w, depth, "assign pc=%d %s:=...", len(data.PathCondition), varName(data.Lhs))
			dumpMIRExpr(w, data.Rhs, depth+1)
		case mir.AssertData:
			indent(w, depth, "assert pc=%d", len(data.PathCondition))
			dumpMIRExpr(w, data.Test, depth+1)
		case mir.AssumptionData:
			indent(w, depth, "assume pc=%d", len(data.PathCondition))
			dumpMIRExpr(w, data.Test, depth+1)
		case mir.FuncCallData:
			indent(w, depth, "funccall pc=%d return=%s", len(data.PathCondition), varName(data.ReturnValue))
		}
	}
}

func dumpMIRExpr(w io.Writer, e mir.Expr, depth int) {
	switch data := e.Data.(type) {
	case mir.VarData:
		indent(w, depth, "var %s", varName(data.Var))
	case mir.ConstantData:
		indent(w, depth, "const type=%d int=%d real=%g bool=%v", e.Type, data.Int, data.Real, data.Bool)
	case mir.CallData:
		indent(w, depth, "call fn=%d", data.Func)
		for _, a := range data.Args {
			dumpMIRExpr(w, a, depth+1)
		}
	}
}

func varName(v mir.Var) string {
	return fmt.Sprintf("ident$%d$%d", v.Ident, v.Version)
}
