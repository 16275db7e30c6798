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

type MarketResearchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MarketResearchMapper
}

func NewMarketResearchRepository(db *gorm.DB) contract.MarketResearchRepository {
	return &MarketResearchRepositoryImpl{
		db:     db,
		mapper: mapper.NewMarketResearchMapper(),
	}
}

func (r *MarketResearchRepositoryImpl) Create(ctx context.Context, entry *entity.MarketResearch) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *MarketResearchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MarketResearch, error) {
	var models []*model.MarketResearch
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.MarketResearch{}), specs...)
	if err := query.Select(model.MarketResearch{}.ListColumns()).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MarketResearchRepositoryImpl) FindImageByID(ctx context.Context, id int) ([]byte, error) {
	var m model.MarketResearch
	err := r.db.WithContext(ctx).Select("image_pdf").Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ImagePDF, nil
}

func (r *MarketResearchRepositoryImpl) DeleteByIDs(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.MarketResearch{})
	return result.RowsAffected, result.Error
}

func (r *MarketResearchRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.MarketResearch{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MarketResearchRepositoryImpl) CountGrouped(ctx context.Context, column string) (map[string]int64, error) {
	return groupCount(r.db.WithContext(ctx).Model(&model.MarketResearch{}), column)
}
