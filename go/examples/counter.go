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

// GetCounterExample returns a wrapping loop that counts from zero to nine.
// The first duplication picks up the soft-bottom zero as the initial value.
func GetCounterExample() Example {
	return exampleSpec{
		Name:   "counter",
		source: []byte(">:.1+:a-!#@_"),
		want:   "0 1 2 3 4 5 6 7 8 9 ",
		ticks:  500,
	}.build()
}
