package loader

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"fximport.magictradebot.com/config"
	"fximport.magictradebot.com/pkg/archive"
	"fximport.magictradebot.com/pkg/db"
)

// RunStats summarizes a whole pipeline run.
type RunStats struct {
	Archives       int
	ArchivesFailed int
	EntriesLoaded  int64
	EntriesSkipped int64
	LinesParsed    int64
	LinesSkipped   int64
	RowsInserted   int64
}

// Run executes the full pipeline: enumerate archives in the input dir,
// walk each one and load every well-named text entry into its table.
// A corrupted archive or a badly named entry is reported and skipped;
// store write failures propagate and abort the run.
func (l *Loader) Run(settings *config.AppSettings) (RunStats, error) {
	var stats RunStats

	archives, err := archive.List(settings.InputDir)
	if err != nil {
		return stats, err
	}
	stats.Archives = len(archives)

	l.log.Infof("📦 Processing %d zip files...", len(archives))

	bar := progressbar.NewOptions(len(archives),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	for _, archivePath := range archives {
		l.log.Infof("🗜️ Processing %s...", filepath.Base(archivePath))

		if err := l.processArchive(archivePath, &stats); err != nil {
			if errors.Is(err, archive.ErrCorrupted) {
				l.log.Errorf("❌ %v", err)
				stats.ArchivesFailed++
				bar.Add(1)
				continue
			}
			return stats, err
		}
		bar.Add(1)
	}
	bar.Finish()

	return stats, nil
}

func (l *Loader) processArchive(path string, stats *RunStats) error {
	return archive.Walk(path, func(name string, r io.Reader) error {
		instrument, timeframe, err := archive.ParseEntryName(name)
		if err != nil {
			l.log.Warnf("⚠️ Skipping %s: unexpected name format", name)
			stats.EntriesSkipped++
			return nil
		}

		table := instrument + "_" + timeframe
		if !db.ValidIdentifier(table) {
			l.log.WithFields(logrus.Fields{
				"entry": name,
				"table": table,
			}).Warn("⚠️ Skipping entry: derived table name is not a safe identifier")
			stats.EntriesSkipped++
			return nil
		}

		if err := l.store.EnsureTable(table); err != nil {
			return err
		}

		entryStats, err := l.LoadEntry(table, name, r)
		stats.LinesParsed += entryStats.LinesParsed
		stats.LinesSkipped += entryStats.LinesSkipped
		stats.RowsInserted += entryStats.RowsInserted
		if err != nil {
			return err
		}
		stats.EntriesLoaded++

		l.log.WithFields(logrus.Fields{
			"entry":    name,
			"table":    table,
			"parsed":   entryStats.LinesParsed,
			"skipped":  entryStats.LinesSkipped,
			"inserted": entryStats.RowsInserted,
		}).Debug("📥 Entry loaded")

		return nil
	})
}
