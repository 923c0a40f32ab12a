// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Command clump compresses and decompresses files using canonical Huffman
// codes and reports statistics about files.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetPrefix("clump: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
