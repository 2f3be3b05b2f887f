package iocache

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/mibig-secmet/mibigtaxa/pkg/errcode"
)

func ReadFileError(path string, err error) error {
	msg := "Cannot read cache file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read cache %s: %w",
			fn, path, err),
	}
}

func WriteFileError(path string, err error) error {
	msg := "Cannot write cache file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write cache %s: %w",
			fn, path, err),
	}
}

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

func CorruptCacheError(path string, err error) error {
	msg := "Cache file <em>%s</em> is corrupt"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CorruptCacheError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: corrupt cache %s: %w",
			fn, path, err),
	}
}
