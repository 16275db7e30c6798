package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByIDs struct {
	IDs []int
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

type ByLocation struct {
	Location string
}

func (s ByLocation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("location = ?", s.Location)
}

// SubmittedBetween bounds created_at. Zero bounds are open ends.
type SubmittedBetween struct {
	Start time.Time
	End   time.Time
}

func (s SubmittedBetween) Apply(db *gorm.DB) *gorm.DB {
	if !s.Start.IsZero() {
		db = db.Where("created_at >= ?", s.Start)
	}
	if !s.End.IsZero() {
		db = db.Where("created_at <= ?", s.End)
	}
	return db
}

type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
