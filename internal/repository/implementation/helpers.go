package implementation

import (
	"fmt"

	"mightyops-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// groupCount tallies rows per value of column. Rows with an empty or
// NULL value are skipped. The column name always comes from a schema
// descriptor, never from request input.
func groupCount(db *gorm.DB, column string) (map[string]int64, error) {
	type row struct {
		K     string `gorm:"column:k"`
		Total int64  `gorm:"column:total"`
	}
	var rows []row
	err := db.
		Select(fmt.Sprintf("%s AS k, COUNT(*) AS total", column)).
		Where(fmt.Sprintf("%s IS NOT NULL AND %s <> ''", column, column)).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.K] = r.Total
	}
	return out, nil
}
