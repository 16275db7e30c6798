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

type CapitalRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CapitalRequestMapper
}

func NewCapitalRequestRepository(db *gorm.DB) contract.CapitalRequestRepository {
	return &CapitalRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewCapitalRequestMapper(),
	}
}

func (r *CapitalRequestRepositoryImpl) Create(ctx context.Context, req *entity.CapitalRequest) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *CapitalRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CapitalRequest, error) {
	var models []*model.CapitalRequest
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.CapitalRequest{}), specs...)
	if err := query.Select(model.CapitalRequest{}.ListColumns()).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CapitalRequestRepositoryImpl) FindImageByID(ctx context.Context, id int) ([]byte, error) {
	var m model.CapitalRequest
	err := r.db.WithContext(ctx).Select("image_pdf").Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ImagePDF, nil
}

func (r *CapitalRequestRepositoryImpl) DeleteByIDs(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.CapitalRequest{})
	return result.RowsAffected, result.Error
}

func (r *CapitalRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.CapitalRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CapitalRequestRepositoryImpl) CountGrouped(ctx context.Context, column string) (map[string]int64, error) {
	return groupCount(r.db.WithContext(ctx).Model(&model.CapitalRequest{}), column)
}
