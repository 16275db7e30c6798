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

type StaffingCultureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StaffingCultureMapper
}

func NewStaffingCultureRepository(db *gorm.DB) contract.StaffingCultureRepository {
	return &StaffingCultureRepositoryImpl{
		db:     db,
		mapper: mapper.NewStaffingCultureMapper(),
	}
}

func (r *StaffingCultureRepositoryImpl) Create(ctx context.Context, note *entity.StaffingCultureNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *StaffingCultureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StaffingCultureNote, error) {
	var models []*model.StaffingCultureNote
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.StaffingCultureNote{}), specs...)
	if err := query.Select(model.StaffingCultureNote{}.ListColumns()).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StaffingCultureRepositoryImpl) FindImageByID(ctx context.Context, id int) ([]byte, error) {
	var m model.StaffingCultureNote
	err := r.db.WithContext(ctx).Select("image_pdf").Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ImagePDF, nil
}

func (r *StaffingCultureRepositoryImpl) DeleteByIDs(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.StaffingCultureNote{})
	return result.RowsAffected, result.Error
}

func (r *StaffingCultureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.StaffingCultureNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StaffingCultureRepositoryImpl) CountGrouped(ctx context.Context, column string) (map[string]int64, error) {
	return groupCount(r.db.WithContext(ctx).Model(&model.StaffingCultureNote{}), column)
}
