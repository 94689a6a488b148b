// Package obs collects lightweight per-run counters for the pipelines.
package obs

import "fmt"

// Counters tracks feed and journal activity for one run. The pipelines are
// single-threaded, so plain integers suffice.
type Counters struct {
	recordsRead    uint64
	recordsSkipped uint64
	journalLines   uint64
	journalErrors  uint64
}

// NewCounters allocates a counter set.
func NewCounters() *Counters {
	return &Counters{}
}

// RecordRead counts a successfully parsed feed record.
func (c *Counters) RecordRead() { c.recordsRead++ }

// RecordSkipped counts a malformed feed record that was skipped.
func (c *Counters) RecordSkipped() { c.recordsSkipped++ }

// JournalLine counts an appended journal line.
func (c *Counters) JournalLine() { c.journalLines++ }

// JournalError counts a dropped journal write.
func (c *Counters) JournalError() { c.journalErrors++ }

// Summary renders the counters for the end-of-run log line.
func (c *Counters) Summary() string {
	return fmt.Sprintf("records read %d, skipped %d, journal lines %d, journal errors %d",
		c.recordsRead, c.recordsSkipped, c.journalLines, c.journalErrors)
}
