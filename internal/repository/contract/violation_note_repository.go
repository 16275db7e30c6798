package contract

import (
	"context"

	"mightyops-be/internal/entity"
	"mightyops-be/internal/repository/specification"
)

type ViolationNoteRepository interface {
	Create(ctx context.Context, note *entity.ViolationNote) error
	// FindAll never loads the pdf payload; HasImage marks records that
	// carry one.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ViolationNote, error)
	FindImageByID(ctx context.Context, id int) ([]byte, error)
	DeleteByIDs(ctx context.Context, ids []int) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountGrouped(ctx context.Context, column string) (map[string]int64, error)
}
