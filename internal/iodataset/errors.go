package iodataset

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/pkg/errcode"
)

func ScanError(path string, err error) error {
	msg := "Cannot scan dataset entry <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetScanError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot scan %s: %w",
			fn, path, err),
	}
}
