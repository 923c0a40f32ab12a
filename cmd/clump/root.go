// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"io"
	"log"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/ulikunitz/clump/hcodec"
	"github.com/ulikunitz/clump/xlog"
)

// globalOptions holds the persistent flags shared by all commands.
type globalOptions struct {
	verbose bool
	debug   bool
	json    bool
}

// logger returns the logger for verbose messages. It is nil if verbose
// output has not been requested.
func (g *globalOptions) logger(cmd *cobra.Command) xlog.Logger {
	if !g.verbose {
		return nil
	}
	return log.New(cmd.ErrOrStderr(), "clump: ", 0)
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "clump",
		Short: "Compress files with canonical Huffman codes",
		Long: `clump compresses files block by block with canonical Huffman codes.
Compressed files get the extension .clp. Each block carries a CRC32 or
CRC64 checksum of its data.

Example:
  clump compress -k notes.txt
  clump decompress notes.txt.clp
  clump stat --json notes.txt`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.debug {
				hcodec.SetDebugOutput(cmd.ErrOrStderr())
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.debug {
				hcodec.SetDebugOutput(nil)
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false,
		"print additional information")
	pf.BoolVar(&g.debug, "debug", false,
		"print the codebook of every block")
	pf.BoolVar(&g.json, "json", false, "output in JSON format")

	cmd.AddCommand(
		newCompressCmd(g),
		newDecompressCmd(g),
		newStatCmd(g),
		newLsCmd(g),
	)
	return cmd
}

// printJSON writes v as a single JSON line.
func printJSON(w io.Writer, v any) error {
	stream := json.ConfigDefault.BorrowStream(w)
	defer json.ConfigDefault.ReturnStream(stream)
	stream.WriteVal(v)
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}
