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

func TestStatistics_CollectorCountsSinglesAndPairs(t *testing.T) {
	collector := statsCollector{stats: newStatistics()}
	for _, v := range []funge.Cell{'1', '2', '1', '2'} {
		collector.nextInstruction(v)
	}

	if want, got := uint64(4), collector.stats.count; want != got {
		t.Errorf("expected %d counted ticks, got %d", want, got)
	}
	if want, got := uint64(2), collector.stats.singleCount['1']; want != got {
		t.Errorf("expected %d occurrences of '1', got %d", want, got)
	}
	pairKey := uint64('1')<<16 | uint64('2')
	if want, got := uint64(2), collector.stats.pairCount[pairKey]; want != got {
		t.Errorf("expected %d occurrences of the pair, got %d", want, got)
	}
}

func TestStatistics_InsertAccumulates(t *testing.T) {
	a := newStatistics()
	a.count = 2
	a.singleCount['z'] = 2

	b := newStatistics()
	b.count = 3
	b.singleCount['z'] = 1
	b.singleCount['@'] = 2

	a.insert(b)
	if want, got := uint64(5), a.count; want != got {
		t.Errorf("expected total count %d, got %d", want, got)
	}
	if want, got := uint64(3), a.singleCount['z']; want != got {
		t.Errorf("expected %d occurrences of 'z', got %d", want, got)
	}
}

func TestStatistics_RunnerObservesEveryTick(t *testing.T) {
	runner := &statisticRunner{}
	ctxt := newTestContext("12+@")
	runner.run(ctxt)

	summary := runner.getSummary()
	if !strings.Contains(summary, "Ticks: 4") {
		t.Errorf("expected the summary to report 4 ticks, got %q", summary)
	}
	if !strings.Contains(summary, "+") {
		t.Errorf("expected the summary to mention the executed instructions, got %q", summary)
	}
}

func TestStatistics_ResetDiscardsCollectedData(t *testing.T) {
	runner := &statisticRunner{}
	runner.run(newTestContext("z@"))
	runner.reset()

	if !strings.Contains(runner.getSummary(), "Ticks: 0") {
		t.Errorf("expected an empty summary after reset")
	}
}
