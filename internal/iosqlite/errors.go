package iosqlite

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/pkg/errcode"
)

func ExportError(path string, err error) error {
	msg := "Cannot export cache to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot export to %s: %w",
			fn, path, err),
	}
}
