// Package database stores the grid action journal in PostgreSQL through GORM.
package database

import "time"

// Run groups the actions of one command invocation.
// Statuses: running, passed, failed.
type Run struct {
	ID        uint      `gorm:"primaryKey"`
	Command   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(16);not null;default:'running'"`
	Summary   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ActionRecord is one grid operation executed during a run.
type ActionRecord struct {
	ID         uint   `gorm:"primaryKey"`
	RunID      uint   `gorm:"index;not null"`
	Operation  string `gorm:"type:varchar(32);not null"`
	GridTable  string `gorm:"type:varchar(64);not null"`
	RowNo      int    // 0 when the operation is not about a row
	ColumnName string `gorm:"type:varchar(64)"`
	Detail     string `gorm:"type:text"`
	Error      string `gorm:"type:text"`
	DurationMs int64
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

const (
	RunRunning = "running"
	RunPassed  = "passed"
	RunFailed  = "failed"
)
