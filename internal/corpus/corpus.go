// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package corpus provides access to test corpora and measures the
// compression achieved on them.
package corpus

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/ulikunitz/clump/frame"
)

// File is a file of a corpus held in memory.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus in lexical order.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// CountWriter counts the bytes written to it and discards them.
type CountWriter struct {
	N int64
}

func (w *CountWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.N += int64(n)
	return n, nil
}

// Compress compresses every file into a separate frame stream and returns
// the sum of the stream sizes.
func Compress(files []File, cfg frame.WriterConfig) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &CountWriter{}
		w, err := cfg.NewWriter(cw)
		if err != nil {
			return compressedSize, err
		}
		if _, err = io.Copy(w, bytes.NewReader(f.Data)); err != nil {
			return compressedSize + cw.N, err
		}
		err = w.Close()
		compressedSize += cw.N
		if err != nil {
			return compressedSize, err
		}
	}
	return compressedSize, nil
}
