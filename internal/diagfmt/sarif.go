package diagfmt

import (
	"io"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
)

// Sarif ничего не пишет в w: SARIF-вывод не формируется, диагностики не выводятся.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) {
	// TODO: реализовать SARIF форматирование
	_ = w
	_ = bag
	_ = fs
	_ = meta
}
