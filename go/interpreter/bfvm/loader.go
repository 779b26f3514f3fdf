// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package bfvm

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/Fantom-foundation/Funge/go/funge"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

const programCacheCapacity = 4096 // plenty for hosts embedding many programs

var programCache *lru.Cache[funge.Hash, *fungeSpace]

func init() {
	res, err := lru.New[funge.Hash, *fungeSpace](programCacheCapacity)
	if err != nil {
		panic(fmt.Errorf("failed to create program cache: %v", err))
	}
	programCache = res
}

func clearProgramCache() {
	programCache.Purge()
}

// convert turns program text into an executable funge-space. Conversion
// results are cached under the source hash; since programs are free to
// rewrite their own space, cache hits are handed out as deep copies.
func convert(source []byte, noProgramCache bool, sourceHash *funge.Hash) *fungeSpace {
	if sourceHash == nil || noProgramCache {
		return parseSource(source)
	}

	if res, exists := programCache.Get(*sourceHash); exists {
		return res.clone()
	}

	res := parseSource(source)
	programCache.Add(*sourceHash, res)
	return res.clone()
}

// parseSource splits the program text into lines and stores every remaining
// byte as one cell. Line terminator bytes are dropped; trailing spaces in a
// line are significant and kept. Rows are not padded to a common width.
func parseSource(source []byte) *fungeSpace {
	space := &fungeSpace{}
	lines := bytes.Split(source, []byte{'\n'})
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		row := make([]funge.Cell, 0, len(line))
		for _, b := range line {
			if b == '\n' || b == '\f' || b == '\r' {
				continue
			}
			row = append(row, funge.Cell(b))
		}
		if len(row) > space.maxCols {
			space.maxCols = len(row)
		}
		space.cells = append(space.cells, row)
	}
	return space
}

// DumpSource renders the funge-space of the given program text in the
// diagnostic gutter format, without executing anything.
func DumpSource(source []byte) string {
	return parseSource(source).String()
}

var sourceHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type sourceHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

// HashSource computes the program-cache key for the given program text.
func HashSource(source []byte) funge.Hash {
	hasher := sourceHasherPool.Get().(sourceHasher)
	hasher.Reset()
	_, _ = hasher.Write(source) // keccak256 never returns an error
	var res funge.Hash
	_, _ = hasher.Read(res[:]) // keccak256 never returns an error
	sourceHasherPool.Put(hasher)
	return res
}
