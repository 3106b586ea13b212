package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"fximport.magictradebot.com/models"
	"fximport.magictradebot.com/pkg/archive"
	"fximport.magictradebot.com/pkg/db"
)

// Loader turns text entries into rows of the destination store.
type Loader struct {
	store     *db.Store
	batchSize int
	log       *logrus.Logger
}

func New(store *db.Store, batchSize int, log *logrus.Logger) *Loader {
	return &Loader{
		store:     store,
		batchSize: batchSize,
		log:       log,
	}
}

// EntryStats summarizes one loaded entry.
type EntryStats struct {
	LinesParsed  int64
	LinesSkipped int64
	RowsInserted int64
}

// LoadEntry reads an entry line by line, parses each into a record and
// flushes batches of batchSize to the table. Malformed lines are logged
// with their context and skipped; only store write failures abort.
func (l *Loader) LoadEntry(table, entryName string, r io.Reader) (EntryStats, error) {
	var stats EntryStats
	batch := make([]models.PriceRecord, 0, l.batchSize)

	flush := func() error {
		inserted, err := l.store.InsertBatch(table, batch)
		if err != nil {
			return err
		}
		stats.RowsInserted += inserted
		batch = batch[:0]
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Split(scanner.Text(), ",")

		result := ParseLine(fields)
		switch result.Status {
		case StatusSkip:
			continue

		case StatusShortRow:
			l.log.WithFields(logrus.Fields{
				"line":     lineNo,
				"entry":    entryName,
				"columns":  result.Columns,
				"expected": expectedColumns,
			}).Warn("⚠️ Row has too few columns. Skipping.")
			stats.LinesSkipped++

		case StatusBad:
			l.log.WithFields(logrus.Fields{
				"line":  lineNo,
				"entry": entryName,
				"row":   fields,
			}).Warnf("❌ %s", result.Reason)
			stats.LinesSkipped++

		case StatusOK:
			stats.LinesParsed++
			batch = append(batch, result.Record)
			if len(batch) >= l.batchSize {
				if err := flush(); err != nil {
					return stats, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		// A read failure here means the entry's compressed payload is
		// damaged (bad deflate stream, CRC mismatch). That is archive
		// corruption, not a store failure: the caller skips the archive
		// and keeps going.
		return stats, fmt.Errorf("%w: entry %s: %v", archive.ErrCorrupted, entryName, err)
	}

	if len(batch) > 0 {
		if err := flush(); err != nil {
			return stats, err
		}
	}

	return stats, nil
}
