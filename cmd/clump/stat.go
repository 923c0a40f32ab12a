// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/lz"

	"github.com/ulikunitz/clump/frame"
	"github.com/ulikunitz/clump/hcodec"
	"github.com/ulikunitz/clump/internal/corpus"
)

// lzWindowSize is the window size of the LZ parser used for statistics.
const lzWindowSize = 1 << 20

// fileStat describes how well a file can be compressed.
type fileStat struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	// size of the frame stream with default parameters
	Compressed int64   `json:"compressed"`
	Ratio      float64 `json:"ratio"`
	// result of the LZ parse
	Literals   int64 `json:"literals"`
	Matches    int64 `json:"matches"`
	MatchBytes int64 `json:"match_bytes"`
	// size of the literals after Huffman coding in blocks
	LiteralCost int64 `json:"literal_cost"`
}

func newStatCmd(g *globalOptions) *cobra.Command {
	var cfg frame.WriterConfig
	cmd := &cobra.Command{
		Use:   "stat [flags] FILE...",
		Short: "Show compression statistics",
		Long: `The stat command compresses each FILE in memory and reports the
compressed size. It also parses the file with an LZ77 sequencer and
reports the number of literals and the size of the Huffman coded literal
stream, which indicates what an LZ stage in front of the Huffman coder
would gain.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Verify(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				st, err := statFile(path, data, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				switch {
				case g.json:
					err = printJSON(out, st)
				case g.verbose:
					_, err = pretty.Fprintf(out, "%# v\n", st)
				default:
					err = printStat(out, st)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&cfg.BlockSize, "block-size", "b",
		frame.DefaultBlockSize, "uncompressed size of a block")
	return cmd
}

func printStat(w io.Writer, st *fileStat) error {
	_, err := fmt.Fprintf(w,
		"%s: %d bytes, compressed %d bytes (%.3f), "+
			"%d literals, %d matches covering %d bytes, "+
			"literals coded %d bytes\n",
		st.Name, st.Size, st.Compressed, st.Ratio,
		st.Literals, st.Matches, st.MatchBytes, st.LiteralCost)
	return err
}

// statFile computes the statistics for data.
func statFile(name string, data []byte, cfg frame.WriterConfig) (st *fileStat, err error) {
	st = &fileStat{Name: name, Size: int64(len(data))}
	files := []corpus.File{{Name: name, Data: data}}
	if st.Compressed, err = corpus.Compress(files, cfg); err != nil {
		return nil, err
	}
	if st.Size > 0 {
		st.Ratio = float64(st.Compressed) / float64(st.Size)
	}
	lits, err := parse(st, data)
	if err != nil {
		return nil, err
	}
	st.LiteralCost, err = huffmanCost(lits, cfg.BlockSize)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// parse runs the LZ sequencer over data, records the counts in st and
// returns all literals.
func parse(st *fileStat, data []byte) (lits []byte, err error) {
	var lzCfg lz.SeqConfig = &lz.DHSConfig{WindowSize: lzWindowSize}
	lzCfg.SetDefaults()
	if err = lzCfg.Verify(); err != nil {
		return nil, err
	}
	seq, err := lzCfg.NewSequencer()
	if err != nil {
		return nil, err
	}
	bufSize := lzCfg.BufConfig().BufferSize

	var blk lz.Block
	for len(data) > 0 {
		chunk := data[:min(bufSize, len(data))]
		data = data[len(chunk):]
		if err = seq.Reset(chunk); err != nil {
			return nil, err
		}
		for {
			blk.Sequences = blk.Sequences[:0]
			blk.Literals = blk.Literals[:0]
			n, err := seq.Sequence(&blk, 0)
			if err != nil {
				if errors.Is(err, lz.ErrEmptyBuffer) {
					break
				}
				return nil, err
			}
			for _, s := range blk.Sequences {
				st.Matches++
				st.MatchBytes += int64(s.MatchLen)
			}
			st.Literals += int64(len(blk.Literals))
			lits = append(lits, blk.Literals...)
			if n == 0 {
				break
			}
		}
	}
	return lits, nil
}

// huffmanCost returns the size of the data coded in blocks with hcodec.
// Blocks that don't shrink are counted with their original size.
func huffmanCost(data []byte, blockSize int) (cost int64, err error) {
	c := hcodec.New()
	buf := make([]byte, hcodec.MaxEncodedLen(blockSize))
	for len(data) > 0 {
		block := data[:min(blockSize, len(data))]
		data = data[len(block):]
		n, err := c.Encode(buf, block)
		if err != nil {
			return cost, err
		}
		cost += int64(min(n, len(block)))
	}
	return cost, nil
}
