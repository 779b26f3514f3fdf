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
	"strings"
	"testing"
)

func TestLogger_WritesOneLinePerTick(t *testing.T) {
	var log bytes.Buffer
	runner := newLoggingRunner(&log)
	runner.run(newTestContext("12+@"))

	lines := strings.Split(strings.TrimRight(log.String(), "\n"), "\n")
	if want, got := 4, len(lines); want != got {
		t.Fatalf("expected %d log lines, got %d:\n%s", want, got, log.String())
	}
	if want, got := "(0,0), 1, -empty-", lines[0]; want != got {
		t.Errorf("unexpected first line: %q", got)
	}
	if want, got := "(2,0), +, 2", lines[2]; want != got {
		t.Errorf("unexpected third line: %q", got)
	}
	if want, got := "(3,0), @, 3", lines[3]; want != got {
		t.Errorf("unexpected last line: %q", got)
	}
}

func TestLogger_RendersUnprintableInstructionsNumerically(t *testing.T) {
	var log bytes.Buffer
	runner := newLoggingRunner(&log)
	ctxt := newTestContext("z@")
	ctxt.space.put(0, 0, 7)
	runner.run(ctxt)

	if !strings.Contains(log.String(), "<7>") {
		t.Errorf("expected the cell value to be rendered numerically, got %q", log.String())
	}
}
