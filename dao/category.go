package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// FindChildren 查询直接子分类
func (d *CategoryDAO) FindChildren(ctx context.Context, parentID uint64) ([]*models.Category, error) {
	return d.FindAllByWhere(ctx, "parent_id = ?", parentID)
}

// FindRoots 查询顶级分类
func (d *CategoryDAO) FindRoots(ctx context.Context) ([]*models.Category, error) {
	var items []*models.Category
	err := d.Db.WithContext(ctx).Where("parent_id IS NULL").Order("id ASC").Find(&items).Error
	return items, err
}
