// Package service provides business logic layer for the customer module.
package service

import (
	"context"

	"go.uber.org/zap"

	"docshelf/internal/customer/model"
	"docshelf/internal/customer/repository"
)

// Service defines the interface for customer business logic operations.
type Service interface {
	// List returns all customers.
	List(ctx context.Context) ([]model.Customer, error)

	// Get returns a customer by id.
	Get(ctx context.Context, id string) (*model.Customer, error)

	// Create creates a new customer.
	Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)

	// Update applies a partial update to an existing customer.
	Update(ctx context.Context, id string, req *model.UpdateCustomerRequest) (*model.Customer, error)

	// Delete removes a customer by id and returns the deleted document.
	Delete(ctx context.Context, id string) (*model.Customer, error)

	// AddInvoice appends an invoice to the customer addressed by username.
	// The existing invoice sequence is preserved in order.
	AddInvoice(ctx context.Context, userName string, req *model.AddInvoiceRequest) (*model.Customer, error)

	// ListInvoices returns the invoice sequence of the customer addressed
	// by username.
	ListInvoices(ctx context.Context, userName string) ([]model.Invoice, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new customer service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns all customers.
func (s *service) List(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}

// Get returns a customer by id.
func (s *service) Get(ctx context.Context, id string) (*model.Customer, error) {
	if id == "" {
		return nil, model.ErrInvalidCustomerID
	}
	return s.repo.GetByID(ctx, id)
}

// Create creates a new customer.
func (s *service) Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	customer := &model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("customer created", "id", created.ID, "user_name", created.UserName)
	return created, nil
}

// Update applies a partial update to an existing customer.
func (s *service) Update(ctx context.Context, id string, req *model.UpdateCustomerRequest) (*model.Customer, error) {
	if id == "" {
		return nil, model.ErrInvalidCustomerID
	}

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.UserName != nil {
		customer.UserName = *req.UserName
	}
	if req.Invoices != nil {
		customer.Invoices = *req.Invoices
	}

	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("customer updated", "id", id)
	return updated, nil
}

// Delete removes a customer by id and returns the deleted document.
func (s *service) Delete(ctx context.Context, id string) (*model.Customer, error) {
	if id == "" {
		return nil, model.ErrInvalidCustomerID
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("customer deleted", "id", id)
	return deleted, nil
}

// AddInvoice appends an invoice to the customer addressed by username.
func (s *service) AddInvoice(ctx context.Context, userName string, req *model.AddInvoiceRequest) (*model.Customer, error) {
	if userName == "" {
		return nil, model.ErrInvalidUserName
	}

	customer, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	invoice := model.Invoice{
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		DateCreated: req.DateCreated,
		DateShipped: req.DateShipped,
		LineItems:   req.LineItems,
	}
	if invoice.LineItems == nil {
		invoice.LineItems = []model.LineItem{}
	}

	customer.Invoices = append(customer.Invoices, invoice)

	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("invoice added",
		"user_name", userName,
		"invoice_count", len(updated.Invoices),
	)
	return updated, nil
}

// ListInvoices returns the invoice sequence of the customer addressed by username.
func (s *service) ListInvoices(ctx context.Context, userName string) ([]model.Invoice, error) {
	if userName == "" {
		return nil, model.ErrInvalidUserName
	}

	customer, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	if customer.Invoices == nil {
		return []model.Invoice{}, nil
	}
	return customer.Invoices, nil
}
