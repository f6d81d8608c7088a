package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

type ContractService struct {
	contractRepo *repository.ContractRepository
	customerRepo *repository.CustomerRepository
	vehicleRepo  *repository.VehicleRepository
	files        FileStore
	log          zerolog.Logger
}

func NewContractService(
	contractRepo *repository.ContractRepository,
	customerRepo *repository.CustomerRepository,
	vehicleRepo *repository.VehicleRepository,
	files FileStore,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		files:        files,
		log:          log,
	}
}

type ContractInput struct {
	CustomerID    uuid.UUID
	VehicleID     uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	DailyRate     float64
	TotalAmount   float64
	Guarantee     float64
	PaymentMethod string
	DeliveryPlace string
	ReturnPlace   string
	SecondDriver  *model.SecondDriver
	Equipment     model.VehicleEquipment
	Extension     *model.ContractExtension
}

func (s *ContractService) List(ctx context.Context, filter repository.ContractFilter) ([]model.Contract, error) {
	return s.contractRepo.List(ctx, filter)
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return contract, nil
}

func (s *ContractService) Create(ctx context.Context, input ContractInput, uploaded []model.Document) (*model.Contract, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	latest, err := s.contractRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	prev := ""
	if latest != nil {
		prev = latest.ContractNumber
	}

	contract := &model.Contract{
		ContractNumber: NextContractNumber(prev),
		CustomerID:     input.CustomerID,
		VehicleID:      input.VehicleID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		DailyRate:      input.DailyRate,
		TotalAmount:    input.TotalAmount,
		Guarantee:      input.Guarantee,
		PaymentMethod:  input.PaymentMethod,
		DeliveryPlace:  input.DeliveryPlace,
		ReturnPlace:    input.ReturnPlace,
		SecondDriver:   normalizeSecondDriver(input.SecondDriver),
		Equipment:      input.Equipment,
		Extension:      input.Extension,
		PiecesJointes:  model.DocumentList(uploaded),
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, &PersistError{Op: "persist contract", Payload: contract, Err: err}
	}
	return s.Get(ctx, contract.ID)
}

func (s *ContractService) Update(ctx context.Context, id uuid.UUID, input ContractInput, keep []string, uploaded []model.Document) (*model.Contract, error) {
	contract, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	contract.CustomerID = input.CustomerID
	contract.VehicleID = input.VehicleID
	contract.StartDate = input.StartDate
	contract.EndDate = input.EndDate
	contract.DailyRate = input.DailyRate
	contract.TotalAmount = input.TotalAmount
	contract.Guarantee = input.Guarantee
	contract.PaymentMethod = input.PaymentMethod
	contract.DeliveryPlace = input.DeliveryPlace
	contract.ReturnPlace = input.ReturnPlace
	contract.SecondDriver = normalizeSecondDriver(input.SecondDriver)
	contract.Equipment = input.Equipment
	contract.Extension = input.Extension
	contract.PiecesJointes = MergeDocuments(contract.PiecesJointes, keep, uploaded)
	contract.Customer = nil
	contract.Vehicle = nil

	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, &PersistError{Op: "persist contract", Payload: contract, Err: err}
	}
	return s.Get(ctx, id)
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.contractRepo.Delete(ctx, id)
}

func (s *ContractService) RemoveDocument(ctx context.Context, id uuid.UUID, url string) (*model.Contract, error) {
	contract, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	final, ok := RemoveDocumentByURL(contract.PiecesJointes, url)
	if !ok {
		return nil, ErrNotFound
	}
	if err := s.files.Delete(url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("document file delete failed")
	}

	contract.PiecesJointes = final
	contract.Customer = nil
	contract.Vehicle = nil
	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, &PersistError{Op: "persist contract", Payload: contract, Err: err}
	}
	return s.Get(ctx, id)
}

func (s *ContractService) checkReferences(ctx context.Context, input ContractInput) error {
	if input.CustomerID == uuid.Nil || input.VehicleID == uuid.Nil {
		return ErrInvalidInput
	}
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return mapNotFound(err)
	}
	if _, err := s.vehicleRepo.GetByID(ctx, input.VehicleID); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func normalizeSecondDriver(d *model.SecondDriver) *model.SecondDriver {
	if IsSecondDriverEmpty(d) {
		return nil
	}
	return d
}
