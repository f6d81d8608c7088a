package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

// FileStore removes stored files referenced by document entries. Failures are
// logged, never surfaced: the database record is authoritative.
type FileStore interface {
	Delete(url string) error
}

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	files        FileStore
	log          zerolog.Logger
}

func NewCustomerService(customerRepo *repository.CustomerRepository, files FileStore, log zerolog.Logger) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, files: files, log: log}
}

type CustomerInput struct {
	FirstName     string
	LastName      string
	CIN           *string
	LicenseNumber *string
	PassportNo    *string
	BirthDate     *time.Time
	Nationality   string
	Address       string
	Phone         string
	Email         string
	Status        string
}

func (s *CustomerService) List(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, error) {
	return s.customerRepo.List(ctx, filter)
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, input CustomerInput, uploaded []model.Document) (*model.Customer, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, ErrInvalidInput
	}

	customer := &model.Customer{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		CIN:           input.CIN,
		LicenseNumber: input.LicenseNumber,
		PassportNo:    input.PassportNo,
		BirthDate:     input.BirthDate,
		Nationality:   input.Nationality,
		Address:       input.Address,
		Phone:         input.Phone,
		Email:         input.Email,
		Status:        customerStatus(input.Status),
		Documents:     model.DocumentList(uploaded),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, &PersistError{Op: "persist customer", Payload: customer, Err: err}
	}
	return s.Get(ctx, customer.ID)
}

// Update replaces the customer fields; documents follow the keep-list
// contract (a missing keep list drops every existing entry).
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput, keep []string, uploaded []model.Document) (*model.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.CIN = input.CIN
	customer.LicenseNumber = input.LicenseNumber
	customer.PassportNo = input.PassportNo
	customer.BirthDate = input.BirthDate
	customer.Nationality = input.Nationality
	customer.Address = input.Address
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Status = customerStatus(input.Status)
	customer.Documents = MergeDocuments(customer.Documents, keep, uploaded)

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, &PersistError{Op: "persist customer", Payload: customer, Err: err}
	}
	return s.Get(ctx, id)
}

// Delete removes the customer row and cleans up its uploaded files.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	for _, doc := range customer.Documents {
		if err := s.files.Delete(doc.URL); err != nil {
			s.log.Warn().Err(err).Str("url", doc.URL).Msg("customer file cleanup failed")
		}
	}
	return s.customerRepo.Delete(ctx, id)
}

// RemoveDocument drops one attachment, addressed by file name, and attempts a
// best-effort delete of the backing file.
func (s *CustomerService) RemoveDocument(ctx context.Context, id uuid.UUID, name string) (*model.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var removed model.Document
	for _, doc := range customer.Documents {
		if doc.Name == name {
			removed = doc
			break
		}
	}

	final, ok := RemoveDocumentByName(customer.Documents, name)
	if !ok {
		return nil, ErrNotFound
	}
	if err := s.files.Delete(removed.URL); err != nil {
		s.log.Warn().Err(err).Str("url", removed.URL).Msg("document file delete failed")
	}

	customer.Documents = final
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, &PersistError{Op: "persist customer", Payload: customer, Err: err}
	}
	return customer, nil
}

func customerStatus(raw string) model.CustomerStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inactif", "inactive":
		return model.CustomerStatusInactive
	}
	return model.CustomerStatusActive
}
