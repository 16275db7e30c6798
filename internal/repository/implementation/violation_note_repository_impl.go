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

type ViolationNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ViolationNoteMapper
}

func NewViolationNoteRepository(db *gorm.DB) contract.ViolationNoteRepository {
	return &ViolationNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewViolationNoteMapper(),
	}
}

func (r *ViolationNoteRepositoryImpl) Create(ctx context.Context, note *entity.ViolationNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *ViolationNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ViolationNote, error) {
	var models []*model.ViolationNote
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ViolationNote{}), specs...)
	if err := query.Select(model.ViolationNote{}.ListColumns()).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ViolationNoteRepositoryImpl) FindImageByID(ctx context.Context, id int) ([]byte, error) {
	var m model.ViolationNote
	err := r.db.WithContext(ctx).Select("image_pdf").Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m.ImagePDF, nil
}

func (r *ViolationNoteRepositoryImpl) DeleteByIDs(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ViolationNote{})
	return result.RowsAffected, result.Error
}

func (r *ViolationNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ViolationNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ViolationNoteRepositoryImpl) CountGrouped(ctx context.Context, column string) (map[string]int64, error) {
	return groupCount(r.db.WithContext(ctx).Model(&model.ViolationNote{}), column)
}
