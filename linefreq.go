// Package linefreq counts duplicate lines.
//
// It reads a whole stream of text lines, tallies exact-match duplicates
// and renders a report of the form "<count>\t<line>", most frequent
// lines first. Blank lines (empty or whitespace-only) are skipped.
package linefreq

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Entry is one report record: a distinct input line and its count.
type Entry struct {
	Count int
	Line  string
}

// Tally accumulates occurrence counts of distinct lines.
type Tally struct {
	counts map[string]int
	seen   []string // distinct lines in first-occurrence order
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one occurrence of line. Blank lines are ignored.
func (t *Tally) Add(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if _, ok := t.counts[line]; !ok {
		t.seen = append(t.seen, line)
	}
	t.counts[line]++
}

// Len returns the number of distinct lines recorded so far.
func (t *Tally) Len() int {
	return len(t.seen)
}

// Entries returns report entries ordered by descending count.
// Lines with equal counts keep the order in which they first appeared;
// map iteration order is randomized, so the order is taken from the
// seen slice and the sort must be stable.
func (t *Tally) Entries() []Entry {
	entries := make([]Entry, 0, len(t.seen))
	for _, line := range t.seen {
		entries = append(entries, Entry{Count: t.counts[line], Line: line})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Count reads r until end-of-stream and tallies every non-blank line.
// On a read fault the partial tally is discarded and an error returned.
func Count(r io.Reader) (*Tally, error) {
	tally := NewTally()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			tally.Add(trimEOL(line))
		}
		if err == io.EOF {
			return tally, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// trimEOL strips exactly one trailing line terminator ("\n" or "\r\n").
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// WriteReport renders the entries to w, one "<count>\t<line>" per line.
func (t *Tally) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, entry := range t.Entries() {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", entry.Count, entry.Line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Run reads all lines from r and writes the frequency report to w.
func Run(r io.Reader, w io.Writer) error {
	tally, err := Count(r)
	if err != nil {
		return err
	}
	return tally.WriteReport(w)
}
