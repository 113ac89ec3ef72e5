package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled, colored diagnostics for the devsecrets CLI.
// The zero value is silent except for warnings and errors.
type Logger struct {
	Verbose bool
	Debug   bool

	// Out and ErrOut default to stdout and stderr; tests substitute
	// buffers.
	Out    io.Writer
	ErrOut io.Writer
}

func (l Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l Logger) errOut() io.Writer {
	if l.ErrOut != nil {
		return l.ErrOut
	}
	return os.Stderr
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(l.errOut(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.errOut(), color.RedString("[error] ")+msg+"\n", args...)
}
