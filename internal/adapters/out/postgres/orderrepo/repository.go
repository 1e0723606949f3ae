package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. The handle is
// either a transaction or the main connection; the repository does not care.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save upserts the order header and replaces its lines. Replacing instead
// of diffing keeps the projection trivially consistent with the aggregate.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	header := dto
	header.Items = nil
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Omit("Items").
		Create(&header).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Where("order_id = ?", dto.OrderID).
		Delete(&OrderItemDTO{}).Error
	if err != nil {
		return err
	}

	if len(dto.Items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Items).Error
}

// Get retrieves an order by id, lines included in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&dto, "order_id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and its lines.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("order_id = ?", id.String()).
		Delete(&OrderItemDTO{}).Error
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("order_id = ?", id.String()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Exists reports whether an order header with the id is persisted.
func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", id.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll retrieves every persisted order with its lines.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Order("order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
