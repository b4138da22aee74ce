package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dubhub/internal/shared/logger"
)

// collectionModel is the persistence model for one stored collection
// document. The JSON payload is kept opaque at this layer.
type collectionModel struct {
	Key       string         `gorm:"primarykey;size:64"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (collectionModel) TableName() string {
	return "collections"
}

// SQLiteDriver stores collection documents in a single-table sqlite
// database.
type SQLiteDriver struct {
	db *gorm.DB
}

// NewSQLiteDriver opens (creating if needed) the database at path and
// migrates the collections table.
func NewSQLiteDriver(path string) (*SQLiteDriver, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage database: %w", err)
	}

	if err := db.AutoMigrate(&collectionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate collections table: %w", err)
	}

	logger.Debug("storage database opened", "path", path)
	return &SQLiteDriver{db: db}, nil
}

func (d *SQLiteDriver) Load(key string) ([]byte, bool, error) {
	var m collectionModel
	err := d.db.First(&m, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	return []byte(m.Data), true, nil
}

func (d *SQLiteDriver) Save(key string, data []byte) error {
	m := collectionModel{Key: key, Data: datatypes.JSON(data), UpdatedAt: time.Now()}
	err := d.db.Save(&m).Error
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}

func (d *SQLiteDriver) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
