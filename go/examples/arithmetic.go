// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

// GetArithmeticExample returns a straight-line program exercising the
// arithmetic instructions, including the floor division.
func GetArithmeticExample() Example {
	return exampleSpec{
		Name:   "arithmetic",
		source: []byte("99+.52*.73-.94/.2a*.@"),
		want:   "18 10 4 2 20 ",
		ticks:  100,
	}.build()
}
