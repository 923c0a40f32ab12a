// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"errors"
	"fmt"
	"strings"
)

// Checksum methods.
const (
	None  byte = 0x0
	CRC32 byte = 0x1
	CRC64 byte = 0x4
)

// CheckName returns the name of the checksum method.
func CheckName(check byte) string {
	switch check {
	case None:
		return "None"
	case CRC32:
		return "CRC32"
	case CRC64:
		return "CRC64"
	}
	return fmt.Sprintf("Check(%#02x)", check)
}

// ParseCheck returns the checksum method for the names used by CheckName.
// Case is ignored.
func ParseCheck(s string) (check byte, err error) {
	for _, c := range []byte{None, CRC32, CRC64} {
		if strings.EqualFold(s, CheckName(c)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("frame: unknown checksum method %q", s)
}

// verifyCheck returns an error if the checksum method is not supported.
func verifyCheck(check byte) error {
	switch check {
	case None, CRC32, CRC64:
		return nil
	}
	return fmt.Errorf("frame: unsupported checksum method %#02x", check)
}

const (
	// DefaultBlockSize is the block size used by default. The codec has
	// been tuned for it.
	DefaultBlockSize = 4096
	// MaxBlockSize is the largest supported block size.
	MaxBlockSize = 1 << 20
)

// WriterConfig describes the parameters for a frame writer.
type WriterConfig struct {
	// BlockSize is the uncompressed size of a block. (default: 4096)
	BlockSize int

	// checksum method: CRC32, CRC64 or None (default: CRC32)
	CheckSum byte
	// Forces None as checksum method (default: false)
	NoCheckSum bool
}

// ApplyDefaults replaces zero values with default values.
func (c *WriterConfig) ApplyDefaults() {
	if c.BlockSize == 0 {
		c.BlockSize = DefaultBlockSize
	}
	if c.CheckSum == None {
		c.CheckSum = CRC32
	}
	if c.NoCheckSum {
		c.CheckSum = None
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("frame: writer configuration is nil")
	}
	c.ApplyDefaults()
	if !(1 <= c.BlockSize && c.BlockSize <= MaxBlockSize) {
		return errors.New("frame: block size out of range")
	}
	return verifyCheck(c.CheckSum)
}
