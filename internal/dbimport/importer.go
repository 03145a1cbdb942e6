// Package dbimport loads exported books into a SQLite database.
package dbimport

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ammonelzinga/scripturelens-cli/internal/config"
	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
)

// batchSize bounds how many verse rows go into a single INSERT.
const batchSize = 500

// VerseRow is one verse flattened for querying.
type VerseRow struct {
	ID          uint   `gorm:"primaryKey"`
	Book        string `gorm:"index;not null"`
	Chapter     int    `gorm:"index;not null"`
	Verse       int    `gorm:"index;not null"`
	Text        string `gorm:"type:text;not null"`
	Translation string `gorm:"index;not null"`
}

// Importer writes verse rows in batches, tolerating individual batch failures.
type Importer struct {
	db  *gorm.DB
	log *logrus.Entry
}

// Open connects to the SQLite file at path and migrates the verse table.
func Open(opts *config.Options, path string) (*Importer, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&VerseRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database %s: %w", path, err)
	}
	return &Importer{db: db, log: opts.Logger().WithField("component", "dbimport")}, nil
}

// Rows flattens books into verse rows tagged with the translation label.
func Rows(books []*corpus.Book, translation string) []VerseRow {
	var rows []VerseRow
	for _, book := range books {
		for _, ch := range book.Chapters {
			for _, v := range ch.Verses {
				rows = append(rows, VerseRow{
					Book:        book.Name,
					Chapter:     ch.Number,
					Verse:       v.Number,
					Text:        v.Text,
					Translation: translation,
				})
			}
		}
	}
	return rows
}

// Import inserts rows in batches. A failed batch is logged and skipped so one
// bad stretch of data does not abort the whole run. Returns the number of rows
// inserted and the number of batches that failed.
func (im *Importer) Import(rows []VerseRow) (inserted int, failed int) {
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[i:end]
		if err := im.db.Create(&batch).Error; err != nil {
			im.log.WithFields(logrus.Fields{"from": i, "to": end}).WithError(err).Error("batch insert failed")
			failed++
			continue
		}
		inserted += len(batch)
	}
	return inserted, failed
}

// Count reports how many verse rows the database holds.
func (im *Importer) Count() (int64, error) {
	var count int64
	if err := im.db.Model(&VerseRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count verses: %w", err)
	}
	return count, nil
}

// Close releases the underlying connection.
func (im *Importer) Close() error {
	sqlDB, err := im.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
