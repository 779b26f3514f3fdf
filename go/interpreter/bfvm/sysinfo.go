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
	"math"
	"time"

	"github.com/Fantom-foundation/Funge/go/funge"
)

// sysInfo assembles the system-information vector for the current pointer.
// The first listed element ends up on top of the TOSS when the vector is
// pushed with pushAll.
func (c *context) sysInfo() []funge.Cell {
	ip := c.ip
	info := make([]funge.Cell, 0, 32)

	info = append(info, 0b00000) // flags: no concurrency, input, output, or execution

	info = append(info, math.MaxInt64) // bytes per cell: unbounded marker

	info = append(info, 0)  // handprint (N/A)
	info = append(info, 10) // version

	info = append(info, 0)   // operating paradigm: execution unavailable
	info = append(info, '/') // path separator

	info = append(info, 2) // scalars per vector

	info = append(info, 0) // id of this pointer
	info = append(info, 0) // team number (N/A)

	info = append(info, funge.Cell(ip.y))
	info = append(info, funge.Cell(ip.x))
	info = append(info, funge.Cell(ip.dy))
	info = append(info, funge.Cell(ip.dx))
	info = append(info, funge.Cell(ip.ySoffset))
	info = append(info, funge.Cell(ip.xSoffset))

	leastX, leastY := c.space.leastPoint()
	info = append(info, funge.Cell(leastY), funge.Cell(leastX))
	greatestX, greatestY := c.space.greatestPoint()
	info = append(info, funge.Cell(greatestY), funge.Cell(greatestX))

	now := time.Now()
	date := funge.Cell(now.Year()-1900)*256*256 +
		funge.Cell(now.Month())*256 +
		funge.Cell(now.Day())
	clock := funge.Cell(now.Hour())*256*256 +
		funge.Cell(now.Minute())*256 +
		funge.Cell(now.Second())
	info = append(info, date)
	info = append(info, clock)

	info = append(info, funge.Cell(ip.stack.depth()))
	info = append(info, ip.stack.stackSizes()...)

	info = append(info, 0, 0) // command line arguments (none advertised)
	info = append(info, 0, 0) // environment variables (none advertised)

	return info
}
