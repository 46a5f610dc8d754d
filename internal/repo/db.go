package repo

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"SkyVault/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const sqlitePrefix = "sqlite:"

// InitDB открывает подключение к хранилищу записей.
// DSN вида "sqlite:<path>" открывает SQLite (modernc), любой другой - Postgres.
func InitDB(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("database dsn is empty")
	}

	var (
		dial     gorm.Dialector
		isSQLite bool
	)
	if strings.HasPrefix(dsn, sqlitePrefix) {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: strings.TrimPrefix(dsn, sqlitePrefix)}
		isSQLite = true
	} else {
		dial = postgres.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if isSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite допускает только одного писателя
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate создаёт таблицы folders, files и shares, если их ещё нет.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Folder{}, &model.File{}, &model.Share{})
}

// updateOwned обновляет запись id, принадлежащую userID, и возвращает её новое состояние.
// Если ни одна строка не затронута - gorm.ErrRecordNotFound.
func updateOwned[T any](db *gorm.DB, userID, id string, updates map[string]any) (*T, error) {
	var row T
	tx := db.Model(&row).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern строит шаблон LIKE для поиска подстроки. Регистр складывает
// LOWER в базе на обеих сторонах: в SQLite он работает только для ASCII.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

const nameContains = `LOWER(name) LIKE LOWER(?) ESCAPE '\'`
