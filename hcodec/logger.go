// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hcodec

import (
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/ulikunitz/clump/xlog"
)

// debug is the logger for the symbol dumps. It is nil unless switched on by
// SetDebugOutput.
var debug xlog.Logger

// SetDebugOutput directs a dump of all symbol codes computed by Encode and
// Decode to w. The dump uses the format of the Book table. A nil writer
// switches the output off. The function must not be called while a codec
// is in use.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		debug = nil
		return
	}
	debug = log.New(w, "", 0)
}

// codeBits returns the code as string of binary digits.
func codeBits(code uint32, nBits int) string {
	if nBits == 0 {
		return ""
	}
	s := strconv.FormatUint(uint64(code), 2)
	if len(s) < nBits {
		s = strings.Repeat("0", nBits-len(s)) + s
	}
	return s
}

// debugSymbol prints the code of the symbol.
func debugSymbol(s *Symbol) {
	if !xlog.Enabled(debug) {
		return
	}
	xlog.Printf(debug, "\t[%d] = { 0x%03x, %d },\t/* %s */",
		s.Value, s.Code, s.NBits, codeBits(s.Code, s.NBits))
}
