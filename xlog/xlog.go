// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides a Logger interface for optional debug output.

The collections and the codec of the clump module are silent by default.
Some packages keep a package level Logger that is nil unless a caller
switches debug output on. The helper functions of this package do nothing
for a nil Logger, so call sites don't need to check whether debugging is
enabled and no formatting cost is paid when it isn't.

The *log.Logger type of the standard library satisfies the interface.
*/
package xlog

import "fmt"

// Logger is the interface required for debug output. The log.Logger type
// supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Enabled reports whether output to l would be written.
func Enabled(l Logger) bool { return l != nil }
