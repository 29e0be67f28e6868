package storage

import (
	"menu-backend/internal/models"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts the item; a dangling restaurant_id surfaces as ErrConflict
// through the foreign key.
func (r *ItemRepository) Create(item *models.Item) error {
	return classify(r.db.Create(item).Error)
}

func (r *ItemRepository) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &item, nil
}

// List returns items ordered by id. limit <= 0 means no limit.
func (r *ItemRepository) List(limit, offset int) ([]models.Item, error) {
	q := r.db.Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var items []models.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) Update(item *models.Item) error {
	return classify(r.db.Save(item).Error)
}

func (r *ItemRepository) Delete(item *models.Item) error {
	return classify(r.db.Delete(&models.Item{}, item.ID).Error)
}
