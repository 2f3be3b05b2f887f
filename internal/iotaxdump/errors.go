package iotaxdump

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/pkg/errcode"
)

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn, path, err),
	}
}

func MalformedRecordError(path string, lineNum int, line string) error {
	msg := "Malformed record in <em>%s</em> at line %d"
	vars := []any{path, lineNum}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedRecordError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: malformed record %s:%d: %q",
			fn, path, lineNum, line),
	}
}
