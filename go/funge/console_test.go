// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package funge

import (
	"bytes"
	"testing"
)

func TestConsole_WriteDecimalAppendsSingleSpace(t *testing.T) {
	tests := map[string]struct {
		value Cell
		want  string
	}{
		"zero":     {0, "0 "},
		"positive": {18, "18 "},
		"negative": {-7, "-7 "},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buffer bytes.Buffer
			console := NewConsole(&buffer)
			console.WriteDecimal(test.value)
			if want, got := test.want, buffer.String(); want != got {
				t.Errorf("expected output %q, got %q", want, got)
			}
		})
	}
}

func TestConsole_WriteCharacterEmitsLowByte(t *testing.T) {
	tests := map[string]struct {
		value Cell
		want  string
	}{
		"letter":    {65, "A"},
		"newline":   {10, "\n"},
		"truncated": {65 + 256, "A"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buffer bytes.Buffer
			console := NewConsole(&buffer)
			console.WriteCharacter(test.value)
			if want, got := test.want, buffer.String(); want != got {
				t.Errorf("expected output %q, got %q", want, got)
			}
		})
	}
}
