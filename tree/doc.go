// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package tree provides ordered sets and maps implemented as left-leaning
// red-black trees.
//
// Keys are ordered by a clump.CompareFunc. Adding a key equal to a stored
// key replaces the stored key. Iteration visits the keys in ascending
// order. Nodes are allocated from a pool owned by the tree.
package tree

import "errors"

// ErrInvalidIterator indicates that the tree has been modified after the
// iterator has been created.
var ErrInvalidIterator = errors.New("tree: iterator invalidated by modification")
