package contract

import (
	"context"

	"mightyops-be/internal/entity"
	"mightyops-be/internal/repository/specification"
)

type EvaluationRepository interface {
	Create(ctx context.Context, eval *entity.Evaluation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Evaluation, error)
	FindImageByID(ctx context.Context, id int) ([]byte, error)
	DeleteByIDs(ctx context.Context, ids []int) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountGrouped(ctx context.Context, column string) (map[string]int64, error)
}
