// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ulikunitz/clump/list"
)

// entry is a directory entry as printed by the ls command.
type entry struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Dir        bool   `json:"dir,omitempty"`
	Compressed bool   `json:"compressed,omitempty"`
}

// sortNames alphabetizes the names using the collation rules of the
// language.
func sortNames(names *list.List[string], tag language.Tag) {
	c := collate.New(tag, collate.IgnoreCase)
	names.Sort(func(a, b string) bool {
		return c.CompareString(a, b) < 0
	})
}

// readNames collects the names of the directory entries.
func readNames(dir string) (*list.List[string], error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := list.New[string]()
	for _, e := range entries {
		names.AddTail(e.Name())
	}
	return names, nil
}

func newLsCmd(g *globalOptions) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "ls [flags] [DIR]",
		Short: "List a directory in alphabetical order",
		Long: `The ls command lists the entries of DIR sorted by the collation rules
of the language given by --lang. Compressed files are marked with *.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			names, err := readNames(dir)
			if err != nil {
				return err
			}
			sortNames(names, tag)

			out := cmd.OutOrStdout()
			for name := range names.All() {
				fi, err := os.Lstat(filepath.Join(dir, name))
				if err != nil {
					return err
				}
				e := entry{
					Name:       name,
					Size:       fi.Size(),
					Dir:        fi.IsDir(),
					Compressed: strings.HasSuffix(name, ext),
				}
				switch {
				case g.json:
					err = printJSON(out, e)
				case g.verbose:
					_, err = fmt.Fprintf(out, "%12d %s%s\n",
						e.Size, e.Name, mark(e))
				default:
					_, err = fmt.Fprintf(out, "%s%s\n",
						e.Name, mark(e))
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en",
		"language tag for the collation order")
	return cmd
}

func mark(e entry) string {
	switch {
	case e.Dir:
		return "/"
	case e.Compressed:
		return "*"
	}
	return ""
}
