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
	"strings"
	"testing"

	"github.com/Fantom-foundation/Funge/go/funge"
)

func TestFungeSpace_UnwrittenCellsReadAsSpace(t *testing.T) {
	space := parseSource([]byte("ab\ncd"))

	positions := map[string][2]int{
		"right of row":   {5, 0},
		"below rows":     {0, 7},
		"negative x":     {-1, 0},
		"negative y":     {0, -1},
		"far off corner": {1000, 1000},
	}
	for name, pos := range positions {
		t.Run(name, func(t *testing.T) {
			if want, got := funge.Space, space.get(pos[0], pos[1]); want != got {
				t.Errorf("expected cell value %d, got %d", want, got)
			}
		})
	}
}

func TestFungeSpace_LoadedCellsCanBeRead(t *testing.T) {
	space := parseSource([]byte("ab\ncd"))

	if want, got := funge.Cell('a'), space.get(0, 0); want != got {
		t.Errorf("expected cell value %d, got %d", want, got)
	}
	if want, got := funge.Cell('d'), space.get(1, 1); want != got {
		t.Errorf("expected cell value %d, got %d", want, got)
	}
}

func TestFungeSpace_PutAndGetRoundTrip(t *testing.T) {
	space := &fungeSpace{}
	space.put(3, 2, 'x')
	if want, got := funge.Cell('x'), space.get(3, 2); want != got {
		t.Errorf("expected cell value %d, got %d", want, got)
	}
	if want, got := funge.Space, space.get(2, 2); want != got {
		t.Errorf("expected padding to read as space, got %d", got)
	}
}

func TestFungeSpace_NegativeCoordinatesGrowTheOffsets(t *testing.T) {
	space := parseSource([]byte("ab"))
	space.put(-2, -3, 'x')

	if want, got := funge.Cell('x'), space.get(-2, -3); want != got {
		t.Errorf("expected cell value %d, got %d", want, got)
	}
	if want, got := funge.Cell('a'), space.get(0, 0); want != got {
		t.Errorf("expected original content to stay addressable, got %d", got)
	}

	leastX, leastY := space.leastPoint()
	if leastX != -2 || leastY != -3 {
		t.Errorf("expected least point (-2,-3), got (%d,%d)", leastX, leastY)
	}
}

func TestFungeSpace_NegativeXGrowthSkipsEmptyRows(t *testing.T) {
	space := parseSource([]byte("ab\n\ncd"))
	space.put(-1, 0, 'x')

	if want, got := 0, len(space.cells[1+space.yOffset]); want != got {
		t.Errorf("expected empty row to stay empty, got %d cells", got)
	}
	if want, got := funge.Cell('x'), space.get(-1, 0); want != got {
		t.Errorf("expected cell value %d, got %d", want, got)
	}
	if want, got := funge.Cell('c'), space.get(0, 2); want != got {
		t.Errorf("expected shifted row content to stay addressable, got %d", got)
	}
}

func TestFungeSpace_MaxColsIsMonotonicallyNondecreasing(t *testing.T) {
	space := parseSource([]byte("abcde\nx"))
	if want, got := 5, space.maxCols; want != got {
		t.Fatalf("expected initial width %d, got %d", want, got)
	}

	space.put(2, 1, 'y')
	if want, got := 5, space.maxCols; want != got {
		t.Errorf("expected width to stay %d, got %d", want, got)
	}

	space.put(9, 1, 'z')
	if want, got := 10, space.maxCols; want != got {
		t.Errorf("expected width to grow to %d, got %d", want, got)
	}
}

func TestFungeSpace_GreatestPointUsesRowCountPlusOne(t *testing.T) {
	space := parseSource([]byte("abc\nde"))
	greatestX, greatestY := space.greatestPoint()
	if greatestX != 3 || greatestY != 3 {
		t.Errorf("expected greatest point (3,3), got (%d,%d)", greatestX, greatestY)
	}

	space.put(0, -2, 'x')
	greatestX, greatestY = space.greatestPoint()
	if greatestX != 3 || greatestY != 3 {
		t.Errorf("expected greatest point (3,3) after offset growth, got (%d,%d)", greatestX, greatestY)
	}
}

func TestFungeSpace_RectAndJaggedBoundsDiffer(t *testing.T) {
	space := parseSource([]byte("abc\nd"))

	// (2,1) is inside the 3x2 bounding rectangle but has no stored cell.
	if !space.inBoundsRect(2, 1) {
		t.Errorf("expected (2,1) to be within the bounding rectangle")
	}
	if space.inBounds(2, 1) {
		t.Errorf("expected (2,1) to have no stored cell")
	}
	if space.inBoundsRect(3, 0) {
		t.Errorf("expected (3,0) to be outside the bounding rectangle")
	}
}

func TestFungeSpace_CloneIsIndependent(t *testing.T) {
	space := parseSource([]byte("ab"))
	copied := space.clone()
	copied.put(0, 0, 'x')

	if want, got := funge.Cell('a'), space.get(0, 0); want != got {
		t.Errorf("expected original to be unchanged, got %d", got)
	}
	if want, got := funge.Cell('x'), copied.get(0, 0); want != got {
		t.Errorf("expected copy to hold the update, got %d", got)
	}
}

func TestFungeSpace_StringRendersRowsWithGutter(t *testing.T) {
	space := parseSource([]byte("ab\ncd"))
	dump := space.String()

	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if want, got := 2, len(lines); want != got {
		t.Fatalf("expected %d lines, got %d", want, got)
	}
	if !strings.Contains(lines[0], "0 | ab") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "1 | cd") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}
