package orm

import "time"

type sqlCommitLines struct {
	Repository string `gorm:"primaryKey"`
	Mode       string `gorm:"primaryKey"`
	Hash       string `gorm:"primaryKey"`
	Lines      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlCommitLines(repository, mode, hash string, lines int) *sqlCommitLines {
	return &sqlCommitLines{
		Repository: repository,
		Mode:       mode,
		Hash:       hash,
		Lines:      lines,
	}
}
