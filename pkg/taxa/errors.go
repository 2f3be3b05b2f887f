package taxa

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/pkg/errcode"
)

func cyclicMergeError(chain []int) error {
	msg := "Merged-ID dump contains a redirect cycle: <em>%v</em>"
	vars := []any{chain}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CyclicMergeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cyclic merge chain %v",
			fn, chain),
	}
}

func cyclicLineageError(chain []int) error {
	msg := "Taxdump contains a parent cycle: <em>%v</em>"
	vars := []any{chain}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CyclicLineageError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cyclic parent chain %v",
			fn, chain),
	}
}

func unknownTaxaError(ids []int) error {
	msg := "Taxon IDs are absent from the taxdump: <em>%v</em>"
	vars := []any{ids}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownTaxonIDError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown taxon IDs %v",
			fn, ids),
	}
}

func notFoundError(id int) error {
	msg := "Taxon ID <em>%d</em> is not in the cache"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownTaxonIDError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: taxon ID %d not found",
			fn, id),
	}
}

func invalidBioClassError(name string) error {
	msg := "Cannot map taxon <em>%s</em> to a biosynthetic class"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InvalidBioClassError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no biosynthetic class for %q",
			fn, name),
	}
}
