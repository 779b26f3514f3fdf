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

// GetHelloExample returns the classic greeting: the string is pushed in
// reverse and printed by a loop that ends when the soft bottom is reached.
func GetHelloExample() Example {
	return exampleSpec{
		Name:   "hello",
		source: []byte(`"!dlroW ,olleH">:#,_@`),
		want:   "Hello, World!",
		ticks:  200,
	}.build()
}
