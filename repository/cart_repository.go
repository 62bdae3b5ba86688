package repository

import (
	"context"

	"storefront-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository defines data access for a user's cart entries. Every method
// is scoped to one owning user.
type CartRepository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartEntry, error)
	Upsert(ctx context.Context, entry *models.CartEntry) error
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartEntry, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartEntry, error) {
	var entries []models.CartEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert inserts the entry or, when the (user, product) pair already exists,
// adds the quantity onto the existing row.
func (r *GormCartRepository) Upsert(ctx context.Context, entry *models.CartEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("cart_entries.quantity + ?", entry.Quantity)}),
	}).Create(entry).Error
}

func (r *GormCartRepository) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartEntry, error) {
	var entry models.CartEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}

	entry.Quantity = quantity
	if err := r.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *GormCartRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
