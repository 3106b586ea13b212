package db

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"fximport.magictradebot.com/models"
)

// Store is the single shared handle to the destination SQLite file. It is
// opened once at startup and closed once at the end of the run.
type Store struct {
	gormDB *gorm.DB
	path   string
	log    *logrus.Logger
}

// Open wipes any previous database file at path and opens a fresh one.
// Every run starts from an empty store.
func Open(path string, log *logrus.Logger) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to remove existing database %s: %w", path, err)
		}
		log.Infof("🗑️ Removed existing %s", path)
	}

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite DB: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to extract sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("DB ping failed: %w", err)
	}

	log.Infof("✅ SQLite connected: %s", path)

	return &Store{gormDB: gormDB, path: path, log: log}, nil
}

func (s *Store) Path() string {
	return s.path
}

// EnsureTable creates the per-pair table if it does not exist yet. The name
// comes from parsed entry filenames, so it must pass the identifier
// allow-list before being spliced into DDL.
func (s *Store) EnsureTable(name string) error {
	if !ValidIdentifier(name) {
		return fmt.Errorf("unsafe table name %q", name)
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		open REAL,
		high REAL,
		low REAL,
		close REAL,
		volume INTEGER,
		UNIQUE(date, time)
	)`, name)

	if err := s.gormDB.Exec(ddl).Error; err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}
	return nil
}

// InsertBatch appends records with insert-or-ignore semantics: rows hitting
// the (date, time) uniqueness constraint are silently dropped, never
// overwritten. Returns the number of rows actually inserted.
func (s *Store) InsertBatch(table string, records []models.PriceRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	if !ValidIdentifier(table) {
		return 0, fmt.Errorf("unsafe table name %q", table)
	}

	result := s.gormDB.Table(table).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "date"},
			{Name: "time"},
		},
		DoNothing: true,
	}).CreateInBatches(records, 100)

	if result.Error != nil {
		return 0, fmt.Errorf("insert into %s failed: %w", table, result.Error)
	}
	return result.RowsAffected, nil
}

// Rows returns a table's records ordered by (date, time).
func (s *Store) Rows(table string) ([]models.PriceRecord, error) {
	if !ValidIdentifier(table) {
		return nil, fmt.Errorf("unsafe table name %q", table)
	}
	var records []models.PriceRecord
	err := s.gormDB.Table(table).Order("date, time").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountRows returns the number of rows in a table, for the run summary.
func (s *Store) CountRows(table string) (int64, error) {
	if !ValidIdentifier(table) {
		return 0, fmt.Errorf("unsafe table name %q", table)
	}
	var count int64
	if err := s.gormDB.Table(table).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TableNames lists the user tables created during this run, sorted by name.
func (s *Store) TableNames() ([]string, error) {
	var names []string
	err := s.gormDB.
		Raw(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`).
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
