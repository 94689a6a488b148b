// Package journal implements the historical data sinks at the tail of
// every pipeline. A journal keeps the latest record per key and appends
// one formatted line per received record to its output file.
package journal

import (
	"os"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/fabric"
	"main/internal/obs"
)

// lineWriter appends single lines to a file. The file is opened and
// closed per write, so every persisted record is on disk before the next
// pipeline step runs.
type lineWriter struct {
	path string
}

func (w *lineWriter) append(line string) error {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrap(err, "open journal")
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return errors.Wrap(err, "append journal line")
	}
	return nil
}

// Historical is the generic journal service. It acts as a listener on its
// upstream service: every ProcessAdd both stores and persists the record.
// A failed write drops the line with a warning; the record stays stored.
type Historical[T any] struct {
	store  *fabric.Store[string, T]
	sink   *lineWriter
	keyFn  func(T) string
	lineFn func(T) string
	stats  *obs.Counters
}

// NewHistorical creates a journal writing to path, keyed and formatted by
// the given functions.
func NewHistorical[T any](path string, keyFn func(T) string, lineFn func(T) string, stats *obs.Counters) *Historical[T] {
	return &Historical[T]{
		store:  fabric.NewStore[string, T](),
		sink:   &lineWriter{path: path},
		keyFn:  keyFn,
		lineFn: lineFn,
		stats:  stats,
	}
}

// GetData returns the latest persisted record for a key.
func (h *Historical[T]) GetData(key string) (T, error) {
	return h.store.Get(key)
}

// OnMessage stores a record without writing it out.
func (h *Historical[T]) OnMessage(v T) {
	h.store.Put(h.keyFn(v), v)
}

// PersistData stores the record under key and appends its line.
func (h *Historical[T]) PersistData(key string, v T) {
	h.store.Put(key, v)
	if err := h.sink.append(h.lineFn(v)); err != nil {
		h.stats.JournalError()
		logs.Warnf("drop journal line for %s, err: %+v", key, err)
		return
	}
	h.stats.JournalLine()
}

// ProcessAdd persists every record received from the upstream service.
func (h *Historical[T]) ProcessAdd(v T) { h.PersistData(h.keyFn(v), v) }

// ProcessRemove is unused; feeds only add.
func (h *Historical[T]) ProcessRemove(T) {}

// ProcessUpdate is unused; updates arrive as adds.
func (h *Historical[T]) ProcessUpdate(T) {}
