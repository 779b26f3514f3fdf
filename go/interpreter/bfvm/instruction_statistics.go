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
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Fantom-foundation/Funge/go/funge"
)

// statisticRunner is a runner that collects statistics about the
// instruction sequence of the executed programs.
type statisticRunner struct {
	mutex sync.Mutex
	stats *statistics
}

var defaultStatistics = &statisticRunner{}

func printCollectedInstructionStatistics() {
	fmt.Print(defaultStatistics.getSummary())
}

func resetCollectedInstructionStatistics() {
	defaultStatistics.reset()
}

func (s *statisticRunner) run(c *context) {
	collector := statsCollector{stats: newStatistics()}
	runRounds(c, func(c *context) {
		collector.nextInstruction(c.space.get(c.ip.x, c.ip.y))
	})
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.stats == nil {
		s.stats = newStatistics()
	}
	s.stats.insert(collector.stats)
}

// getSummary returns a summary of the collected statistics in a
// human-readable format.
func (s *statisticRunner) getSummary() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.stats == nil {
		s.stats = newStatistics()
	}
	return s.stats.print()
}

// reset clears the collected statistics.
func (s *statisticRunner) reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.stats = newStatistics()
}

// statistics contains the instruction sequence statistics of program
// executions. It counts the number of times each instruction is executed,
// as well as the number of times each pair of instructions is executed.
type statistics struct {
	count       uint64
	singleCount map[uint64]uint64
	pairCount   map[uint64]uint64
}

func newStatistics() *statistics {
	return &statistics{
		singleCount: map[uint64]uint64{},
		pairCount:   map[uint64]uint64{},
	}
}

// insert adds the instruction counts of the given statistics to this
// instance.
func (s *statistics) insert(src *statistics) {
	s.count += src.count
	for k, v := range src.singleCount {
		s.singleCount[k] += v
	}
	for k, v := range src.pairCount {
		s.pairCount[k] += v
	}
}

// print returns a human-readable summary of the collected statistics.
func (s *statistics) print() string {

	type entry struct {
		value uint64
		count uint64
	}

	getTopN := func(data map[uint64]uint64, n int) []entry {
		list := make([]entry, 0, len(data))
		for k, c := range data {
			list = append(list, entry{k, c})
		}
		sort.Slice(list, func(i, j int) bool {
			return list[i].count > list[j].count
		})
		if len(list) < n {
			return list
		}
		return list[0:n]
	}

	builder := strings.Builder{}
	write := func(format string, args ...interface{}) {
		builder.WriteString(fmt.Sprintf(format, args...))
	}

	write("\n----- Statistics ------\n")
	write("\nTicks: %d\n", s.count)
	write("\nSingles:\n")
	for _, e := range getTopN(s.singleCount, 5) {
		write("\t%-10v: %d (%.2f%%)\n", instructionName(funge.Cell(e.value)), e.count, float32(e.count*100)/float32(s.count))
	}
	write("\nPairs:\n")
	for _, e := range getTopN(s.pairCount, 5) {
		write("\t%-10v%-10v: %d (%.2f%%)\n", instructionName(funge.Cell(e.value>>16)), instructionName(funge.Cell(e.value&0xffff)), e.count, float32(e.count*100)/float32(s.count))
	}
	write("\n")

	return builder.String()
}

// statsCollector keeps track of the recent history of instructions executed
// by the VM to collect instruction sequence statistics.
type statsCollector struct {
	stats *statistics

	last uint64
}

func (s *statsCollector) nextInstruction(v funge.Cell) {
	cur := uint64(v) & 0xffff
	s.stats.count++
	s.stats.singleCount[cur]++
	if s.stats.count > 1 {
		s.stats.pairCount[s.last<<16|cur]++
	}
	s.last = cur
}
