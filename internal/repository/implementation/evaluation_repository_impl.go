package implementation

import (
	"context"
	"errors"

	"mightyops-be/internal/entity"
	"mightyops-be/internal/mapper"
	"mightyops-be/internal/model"
	"mightyops-be/internal/repository/contract"
	"mightyops-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EvaluationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EvaluationMapper
}

func NewEvaluationRepository(db *gorm.DB) contract.EvaluationRepository {
	return &EvaluationRepositoryImpl{
		db:     db,
		mapper: mapper.NewEvaluationMapper(),
	}
}

func (r *EvaluationRepositoryImpl) Create(ctx context.Context, eval *entity.Evaluation) error {
	m := r.mapper.ToModel(eval)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*eval = *r.mapper.ToEntity(m)
	return nil
}

func (r *EvaluationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Evaluation, error) {
	var models []*model.Evaluation
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Evaluation{}), specs...)
	if err := query.Select(model.Evaluation{}.ListColumns()).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EvaluationRepositoryImpl) FindImageByID(ctx context.Context, id int) ([]byte, error) {
	var m model.Evaluation
	err := r.db.WithContext(ctx).Select("image_pdf").Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ImagePDF, nil
}

func (r *EvaluationRepositoryImpl) DeleteByIDs(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Evaluation{})
	return result.RowsAffected, result.Error
}

func (r *EvaluationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Evaluation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountGrouped tallies by a top-level json answer when the column is a
// question key, otherwise by the physical column.
func (r *EvaluationRepositoryImpl) CountGrouped(ctx context.Context, column string) (map[string]int64, error) {
	if len(column) > 1 && column[0] == 'q' {
		column = "answers->>'" + column + "'"
	}
	return groupCount(r.db.WithContext(ctx).Model(&model.Evaluation{}), column)
}
