package emulator

import (
	"errors"
	"strconv"

	"github.com/ezrec/sap1/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
	ErrCheckType = errors.New(f("check is not a boolean"))
)

// ErrProgramUnknown is returned for a name that is not a bundled program.
type ErrProgramUnknown string

func (err ErrProgramUnknown) Error() string {
	return f("program '%v' unknown", string(err))
}

// ErrRuntime indicates the machine location of a runtime error.
type ErrRuntime struct {
	Pc    uint8
	Ticks int
	Err   error
}

func (err *ErrRuntime) Error() string {
	// Tick counts are never grouped by locale.
	return f("pc 0x%X tick %v %v", err.Pc, strconv.Itoa(err.Ticks), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCheck indicates a state check expression could not be evaluated.
type ErrCheck struct {
	Expr string
	Err  error
}

func (err *ErrCheck) Error() string {
	return f("check '%v' %v", err.Expr, err.Err)
}

func (err *ErrCheck) Unwrap() error {
	return err.Err
}
