// Package repository provides data access layer for the customer module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"docshelf/internal/customer/model"
)

// Repository defines the interface for customer data access operations.
type Repository interface {
	// List returns all customers.
	List(ctx context.Context) ([]model.Customer, error)

	// GetByID finds a customer by id.
	GetByID(ctx context.Context, id string) (*model.Customer, error)

	// GetByUserName finds a customer by username.
	GetByUserName(ctx context.Context, userName string) (*model.Customer, error)

	// Create persists a new customer and assigns its identifier.
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)

	// Update replaces the mutable fields of an existing customer,
	// including its invoice sequence.
	Update(ctx context.Context, customer *model.Customer) (*model.Customer, error)

	// Delete removes a customer by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Customer, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new customer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all customers.
func (r *repository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&customers).Error

	if err != nil {
		r.logger.Errorw("List customers database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	if customers == nil {
		customers = []model.Customer{}
	}

	return customers, nil
}

// GetByID finds a customer by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCustomerNotFound
		}
		r.logger.Errorw("GetByID database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return &customer, nil
}

// GetByUserName finds a customer by username. Usernames are unique by
// convention only; the first match in insertion order wins.
func (r *repository) GetByUserName(ctx context.Context, userName string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		Order("created_at ASC").
		First(&customer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCustomerNotFound
		}
		r.logger.Errorw("GetByUserName database error", "user_name", userName, "error", err)
		return nil, model.ErrStoreFailure
	}

	return &customer, nil
}

// Create persists a new customer and assigns its identifier.
func (r *repository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	err := r.db.WithContext(ctx).Create(customer).Error
	if err != nil {
		r.logger.Errorw("Create customer database error", "error", err)
		return nil, model.ErrStoreFailure
	}

	return customer, nil
}

// Update replaces the mutable fields of an existing customer.
func (r *repository) Update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	err := r.db.WithContext(ctx).Save(customer).Error
	if err != nil {
		r.logger.Errorw("Update customer database error", "id", customer.ID, "error", err)
		return nil, model.ErrStoreFailure
	}

	return customer, nil
}

// Delete removes a customer by id and returns the deleted document.
func (r *repository) Delete(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Customer{}).Error

	if err != nil {
		r.logger.Errorw("Delete customer database error", "id", id, "error", err)
		return nil, model.ErrStoreFailure
	}

	return customer, nil
}
