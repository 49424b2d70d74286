package orm

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pescuma/linestats/lib/consoles"
	"github.com/pescuma/linestats/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Each connection to an in memory sqlite database sees a different database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&sqlCommitLines{})
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func (s *gormStorage) LoadCommitLines(rootDir string, mode string) (map[string]int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var rows []*sqlCommitLines
	err := s.db.Where("repository = ? AND mode = ?", rootDir, mode).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	s.console.Debugf("Loaded %v cached commits\n", len(rows))

	return lo.Associate(rows, func(r *sqlCommitLines) (string, int) {
		return r.Hash, r.Lines
	}), nil
}

func (s *gormStorage) WriteCommitLines(rootDir string, mode string, lines map[string]int) error {
	if len(lines) == 0 {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	rows := lo.MapToSlice(lines, func(hash string, l int) *sqlCommitLines {
		return newSqlCommitLines(rootDir, mode, hash, l)
	})

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}
