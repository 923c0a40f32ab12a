// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ulikunitz/clump/frame"
	"github.com/ulikunitz/clump/internal/corpus"
	"github.com/ulikunitz/clump/xlog"
)

// ext is the file extension of compressed files.
const ext = ".clp"

// fileOptions are the options of the compress and decompress commands.
type fileOptions struct {
	keep       bool
	force      bool
	stdout     bool
	decompress bool
	cfg        frame.WriterConfig
}

func addFileFlags(cmd *cobra.Command, opts *fileOptions) {
	f := cmd.Flags()
	f.BoolVarP(&opts.keep, "keep", "k", false,
		"keep (don't delete) input files")
	f.BoolVarP(&opts.force, "force", "f", false,
		"overwrite existing output files")
	f.BoolVarP(&opts.stdout, "stdout", "c", false,
		"write to standard output and keep input files")
}

// targetName computes the name of the output file.
func targetName(path string, opts *fileOptions) (target string, err error) {
	if len(path) == 0 {
		return "", errors.New("empty file name not supported")
	}
	if !opts.decompress {
		if strings.HasSuffix(path, ext) {
			return "", fmt.Errorf("%s already has %s suffix", path, ext)
		}
		return path + ext, nil
	}
	if !strings.HasSuffix(path, ext) {
		return "", fmt.Errorf("%s: unknown suffix", path)
	}
	target = path[:len(path)-len(ext)]
	if len(target) == 0 || strings.HasSuffix(target, "/") {
		return "", fmt.Errorf("file name %s has no base part", path)
	}
	return target, nil
}

// errNoRegular indicates that a file is not regular.
var errNoRegular = errors.New("no regular file")

// openFile opens a regular file for reading.
func openFile(path string) (f *os.File, err error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, &fs.PathError{Op: "open", Path: path,
			Err: errNoRegular}
	}
	return os.Open(path)
}

// removeOnInterrupt removes the file name if the process receives an
// interrupt signal. The returned function stops the handler.
func removeOnInterrupt(name string) (stop func()) {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
		case <-sigch:
			os.Remove(name)
			os.Exit(7)
		}
	}()
	return func() {
		signal.Stop(sigch)
		close(quit)
	}
}

// transform compresses or decompresses r into w.
func transform(w io.Writer, r io.Reader, opts *fileOptions) error {
	if opts.decompress {
		zr, err := frame.NewReader(r)
		if err != nil {
			return err
		}
		_, err = io.Copy(w, zr)
		return err
	}
	zw, err := opts.cfg.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err = io.Copy(zw, r); err != nil {
		return err
	}
	return zw.Close()
}

// processFile compresses or decompresses a single file. The path "-"
// stands for standard input.
func processFile(cmd *cobra.Command, path string, opts *fileOptions,
	l xlog.Logger) (err error) {

	var r io.Reader
	var in *os.File
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		if in, err = openFile(path); err != nil {
			return err
		}
		defer in.Close()
		r = in
	}

	toStdout := opts.stdout || path == "-"
	var w io.Writer
	var out *os.File
	var target, tmp string
	if toStdout {
		w = cmd.OutOrStdout()
	} else {
		if target, err = targetName(path, opts); err != nil {
			return err
		}
		if _, err = os.Stat(target); err == nil && !opts.force {
			return &fs.PathError{Op: "create", Path: target,
				Err: fs.ErrExist}
		}
		var fi os.FileInfo
		if fi, err = in.Stat(); err != nil {
			return err
		}
		tmp = target + ".tmp"
		out, err = os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			fi.Mode().Perm())
		if err != nil {
			return err
		}
		stop := removeOnInterrupt(tmp)
		defer func() {
			stop()
			if out != nil {
				out.Close()
				os.Remove(tmp)
			}
		}()
		w = out
	}

	rc, wc := &corpus.CountWriter{}, &corpus.CountWriter{}
	bw := bufio.NewWriter(io.MultiWriter(w, wc))
	br := bufio.NewReader(io.TeeReader(r, rc))
	if err = transform(bw, br, opts); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}

	if out != nil {
		f := out
		out = nil
		if err = f.Close(); err != nil {
			os.Remove(tmp)
			return err
		}
		if err = os.Rename(tmp, target); err != nil {
			os.Remove(tmp)
			return err
		}
	}
	if in != nil && !toStdout && !opts.keep {
		in.Close()
		if err = os.Remove(path); err != nil {
			return err
		}
	}

	xlog.Printf(l, "%s: %d -> %d bytes", path, rc.N, wc.N)
	return nil
}

// processFiles handles all files given as arguments. No argument means
// standard input.
func processFiles(cmd *cobra.Command, args []string, opts *fileOptions,
	g *globalOptions) error {

	if len(args) == 0 {
		args = []string{"-"}
	}
	l := g.logger(cmd)
	var errs []error
	for _, path := range args {
		if err := processFile(cmd, path, opts, l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
