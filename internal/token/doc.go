// Package token defines lexical token kinds and trivia for the veris
// verifier's front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Decorators are lexed as '@' (Kind: At) + Ident; no per-decorator token kinds.
//     assumes/ensures/loop_invariant/param/__return__ are plain identifiers,
//     recognized by the HIR lowerer, not the lexer.
//   - Line comments ('#'...) are leading Trivia and never appear in the main
//     token stream.
package token
