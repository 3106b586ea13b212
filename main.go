package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"fximport.magictradebot.com/config"
	"fximport.magictradebot.com/pkg/db"
	"fximport.magictradebot.com/pkg/loader"
)

func main() {

	// 🔒 Panic protection
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("🔥 Panic recovered: %v\n", r)
		}
	}()

	// 🧾 Initialize logger
	log := config.InitLogger(false)

	log.Info("📈 Forex history import started")

	// ⚙️ Load configuration
	settings, err := config.LoadConfig("appsettings.yaml")
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	if settings.Debug {
		log.SetLevel(logrus.DebugLevel)
		log.Debug("🔍 Debug logging enabled")
	}
	log.WithFields(logrus.Fields{
		"inputDir":  settings.InputDir,
		"database":  settings.DatabasePath,
		"batchSize": settings.BatchSize,
	}).Info("⚙️ Configuration loaded")

	// 🗃️ Initialize DB (previous file is wiped, every run starts clean)
	store, err := db.Open(settings.DatabasePath, log)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer store.Close()

	// 📥 Run the import pipeline
	ldr := loader.New(store, settings.BatchSize, log)
	stats, err := ldr.Run(settings)
	if err != nil {
		log.Fatalf("❌ Import aborted: %v", err)
	}

	tables, err := store.TableNames()
	if err != nil {
		log.Warnf("⚠️ Failed to list tables: %v", err)
	}

	log.WithFields(logrus.Fields{
		"archives":       stats.Archives,
		"archivesFailed": stats.ArchivesFailed,
		"entriesLoaded":  stats.EntriesLoaded,
		"entriesSkipped": stats.EntriesSkipped,
		"linesParsed":    stats.LinesParsed,
		"linesSkipped":   stats.LinesSkipped,
		"rowsInserted":   stats.RowsInserted,
		"tables":         len(tables),
	}).Info("📊 Import summary")

	log.Infof("✅ Done! Database created at %s", settings.DatabasePath)
}
