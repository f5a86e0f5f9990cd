package jdiff

import (
	"fmt"

	"github.com/boostgo/errorx"
)

// errors are reported as "<code>: <cause>", the code is the errorx sentinel,
// which errors.Is matches. os errors already name the path, parse & encode
// errors get it prefixed to the cause
var (
	ErrArguments      = errorx.New("jdiff.arguments")
	ErrOpenInput      = errorx.New("jdiff.input.open")
	ErrParseInput     = errorx.New("jdiff.input.parse")
	ErrEncodeOutput   = errorx.New("jdiff.output.encode")
	ErrWriteOutput    = errorx.New("jdiff.output.write")
	ErrCopyProjection = errorx.New("jdiff.projection.copy")
)

type argumentsErrorContext struct {
	Got   int    `json:"got"`
	Usage string `json:"usage"`
}

func newArgumentsError(got int) error {
	return ErrArguments.
		SetError(fmt.Errorf("invalid number of arguments %d, usage: %s", got, Usage)).
		SetData(argumentsErrorContext{
			Got:   got,
			Usage: Usage,
		})
}

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

func newOpenInputError(path string, err error) error {
	return ErrOpenInput.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newParseInputError(path string, err error) error {
	return ErrParseInput.
		SetError(fmt.Errorf("%s: %w", path, err)).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newEncodeOutputError(path string, err error) error {
	return ErrEncodeOutput.
		SetError(fmt.Errorf("%s: %w", path, err)).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newWriteOutputError(path string, err error) error {
	return ErrWriteOutput.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

type copyErrorContext struct {
	Error error `json:"error"`
}

func newCopyProjectionError(err error) error {
	return ErrCopyProjection.
		SetError(err).
		SetData(copyErrorContext{Error: err})
}
