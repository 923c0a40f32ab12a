// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"

	"github.com/ulikunitz/clump/frame"
)

func newCompressCmd(g *globalOptions) *cobra.Command {
	opts := &fileOptions{}
	var check string
	cmd := &cobra.Command{
		Use:     "compress [flags] [FILE...]",
		Aliases: []string{"z"},
		Short:   "Compress files",
		Long: `The compress command compresses each FILE into FILE.clp and removes
FILE unless --keep or --stdout is given. Without FILE or if FILE is -,
standard input is compressed to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := frame.ParseCheck(check)
			if err != nil {
				return err
			}
			opts.cfg.CheckSum = c
			opts.cfg.NoCheckSum = c == frame.None
			if err = opts.cfg.Verify(); err != nil {
				return err
			}
			return processFiles(cmd, args, opts, g)
		},
	}
	addFileFlags(cmd, opts)
	f := cmd.Flags()
	f.IntVarP(&opts.cfg.BlockSize, "block-size", "b",
		frame.DefaultBlockSize, "uncompressed size of a block")
	f.StringVarP(&check, "check", "C", "crc32",
		"checksum method: crc32, crc64 or none")
	return cmd
}

func newDecompressCmd(g *globalOptions) *cobra.Command {
	opts := &fileOptions{decompress: true}
	cmd := &cobra.Command{
		Use:     "decompress [flags] [FILE.clp...]",
		Aliases: []string{"d"},
		Short:   "Decompress files",
		Long: `The decompress command decompresses each FILE.clp into FILE and
removes FILE.clp unless --keep or --stdout is given. Without FILE or if
FILE is -, standard input is decompressed to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return processFiles(cmd, args, opts, g)
		},
	}
	addFileFlags(cmd, opts)
	return cmd
}
