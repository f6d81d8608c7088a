package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

// FleetService handles infractions, accidents, charges, interventions,
// inspections and insurances. Their attachments are append-only on update;
// removal goes through the dedicated document-delete operations.
type FleetService struct {
	fleetRepo *repository.FleetRepository
	files     FileStore
	log       zerolog.Logger
}

func NewFleetService(fleetRepo *repository.FleetRepository, files FileStore, log zerolog.Logger) *FleetService {
	return &FleetService{fleetRepo: fleetRepo, files: files, log: log}
}

func (s *FleetService) removeFile(url string) {
	if err := s.files.Delete(url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("document file delete failed")
	}
}

type InfractionInput struct {
	VehicleID   *uuid.UUID
	CustomerID  *uuid.UUID
	Date        time.Time
	Place       string
	Amount      float64
	Status      string
	Description string
}

func (s *FleetService) ListInfractions(ctx context.Context, filter repository.FleetFilter) ([]model.Infraction, error) {
	return s.fleetRepo.ListInfractions(ctx, filter)
}

func (s *FleetService) GetInfraction(ctx context.Context, id uuid.UUID) (*model.Infraction, error) {
	record, err := s.fleetRepo.GetInfraction(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return record, nil
}

func (s *FleetService) CreateInfraction(ctx context.Context, input InfractionInput, uploaded []model.Document) (*model.Infraction, error) {
	latest, err := s.fleetRepo.LatestInfraction(ctx)
	if err != nil {
		return nil, err
	}
	prev := ""
	if latest != nil {
		prev = latest.InfractionNumber
	}

	record := &model.Infraction{
		InfractionNumber: NextInfractionNumber(prev),
		VehicleID:        input.VehicleID,
		CustomerID:       input.CustomerID,
		Date:             input.Date,
		Place:            input.Place,
		Amount:           input.Amount,
		Status:           defaultString(input.Status, "non_payee"),
		Description:      input.Description,
		Documents:        model.DocumentList(uploaded),
	}
	if err := s.fleetRepo.CreateInfraction(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist infraction", Payload: record, Err: err}
	}
	return s.GetInfraction(ctx, record.ID)
}

func (s *FleetService) UpdateInfraction(ctx context.Context, id uuid.UUID, input InfractionInput, uploaded []model.Document) (*model.Infraction, error) {
	record, err := s.GetInfraction(ctx, id)
	if err != nil {
		return nil, err
	}
	record.VehicleID = input.VehicleID
	record.CustomerID = input.CustomerID
	record.Date = input.Date
	record.Place = input.Place
	record.Amount = input.Amount
	record.Status = defaultString(input.Status, record.Status)
	record.Description = input.Description
	record.Documents = AppendDocuments(record.Documents, uploaded)
	record.Vehicle = nil
	record.Customer = nil
	if err := s.fleetRepo.SaveInfraction(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist infraction", Payload: record, Err: err}
	}
	return s.GetInfraction(ctx, id)
}

func (s *FleetService) DeleteInfraction(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetInfraction(ctx, id); err != nil {
		return err
	}
	return s.fleetRepo.DeleteInfraction(ctx, id)
}

func (s *FleetService) RemoveInfractionDocument(ctx context.Context, id uuid.UUID, url string) (*model.Infraction, error) {
	record, err := s.GetInfraction(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(record.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	s.removeFile(url)
	record.Documents = final
	record.Vehicle = nil
	record.Customer = nil
	if err := s.fleetRepo.SaveInfraction(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist infraction", Payload: record, Err: err}
	}
	return s.GetInfraction(ctx, id)
}

type AccidentInput struct {
	VehicleID   *uuid.UUID
	CustomerID  *uuid.UUID
	Date        time.Time
	Place       string
	Description string
	Status      string
	RepairCost  float64
}

func (s *FleetService) ListAccidents(ctx context.Context, filter repository.FleetFilter) ([]model.Accident, error) {
	return s.fleetRepo.ListAccidents(ctx, filter)
}

func (s *FleetService) GetAccident(ctx context.Context, id uuid.UUID) (*model.Accident, error) {
	record, err := s.fleetRepo.GetAccident(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return record, nil
}

func (s *FleetService) CreateAccident(ctx context.Context, input AccidentInput, uploaded []model.Document) (*model.Accident, error) {
	record := &model.Accident{
		VehicleID:   input.VehicleID,
		CustomerID:  input.CustomerID,
		Date:        input.Date,
		Place:       input.Place,
		Description: input.Description,
		Status:      defaultString(input.Status, "declare"),
		RepairCost:  input.RepairCost,
		Documents:   model.DocumentList(uploaded),
	}
	if err := s.fleetRepo.CreateAccident(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist accident", Payload: record, Err: err}
	}
	return s.GetAccident(ctx, record.ID)
}

func (s *FleetService) UpdateAccident(ctx context.Context, id uuid.UUID, input AccidentInput, uploaded []model.Document) (*model.Accident, error) {
	record, err := s.GetAccident(ctx, id)
	if err != nil {
		return nil, err
	}
	record.VehicleID = input.VehicleID
	record.CustomerID = input.CustomerID
	record.Date = input.Date
	record.Place = input.Place
	record.Description = input.Description
	record.Status = defaultString(input.Status, record.Status)
	record.RepairCost = input.RepairCost
	record.Documents = AppendDocuments(record.Documents, uploaded)
	record.Vehicle = nil
	record.Customer = nil
	if err := s.fleetRepo.SaveAccident(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist accident", Payload: record, Err: err}
	}
	return s.GetAccident(ctx, id)
}

func (s *FleetService) DeleteAccident(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAccident(ctx, id); err != nil {
		return err
	}
	return s.fleetRepo.DeleteAccident(ctx, id)
}

func (s *FleetService) RemoveAccidentDocument(ctx context.Context, id uuid.UUID, url string) (*model.Accident, error) {
	record, err := s.GetAccident(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(record.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	s.removeFile(url)
	record.Documents = final
	record.Vehicle = nil
	record.Customer = nil
	if err := s.fleetRepo.SaveAccident(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist accident", Payload: record, Err: err}
	}
	return s.GetAccident(ctx, id)
}

type ChargeInput struct {
	Label    string
	Montant  float64
	Date     *time.Time
	Category string
	Notes    string
}

func (s *FleetService) ListCharges(ctx context.Context, filter repository.FleetFilter) ([]model.Charge, error) {
	return s.fleetRepo.ListCharges(ctx, filter)
}

func (s *FleetService) GetCharge(ctx context.Context, id uuid.UUID) (*model.Charge, error) {
	record, err := s.fleetRepo.GetCharge(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return record, nil
}

func (s *FleetService) CreateCharge(ctx context.Context, input ChargeInput, uploaded []model.Document) (*model.Charge, error) {
	if input.Label == "" {
		return nil, ErrInvalidInput
	}
	record := &model.Charge{
		Label:     input.Label,
		Montant:   input.Montant,
		Date:      input.Date,
		Category:  input.Category,
		Notes:     input.Notes,
		Documents: model.DocumentList(uploaded),
	}
	if err := s.fleetRepo.CreateCharge(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist charge", Payload: record, Err: err}
	}
	return s.GetCharge(ctx, record.ID)
}

func (s *FleetService) UpdateCharge(ctx context.Context, id uuid.UUID, input ChargeInput, uploaded []model.Document) (*model.Charge, error) {
	record, err := s.GetCharge(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Label = input.Label
	record.Montant = input.Montant
	record.Date = input.Date
	record.Category = input.Category
	record.Notes = input.Notes
	record.Documents = AppendDocuments(record.Documents, uploaded)
	if err := s.fleetRepo.SaveCharge(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist charge", Payload: record, Err: err}
	}
	return s.GetCharge(ctx, id)
}

func (s *FleetService) DeleteCharge(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCharge(ctx, id); err != nil {
		return err
	}
	return s.fleetRepo.DeleteCharge(ctx, id)
}

func (s *FleetService) RemoveChargeDocument(ctx context.Context, id uuid.UUID, url string) (*model.Charge, error) {
	record, err := s.GetCharge(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(record.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	s.removeFile(url)
	record.Documents = final
	if err := s.fleetRepo.SaveCharge(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist charge", Payload: record, Err: err}
	}
	return s.GetCharge(ctx, id)
}

type InterventionInput struct {
	VehicleID   *uuid.UUID
	Type        string
	Date        time.Time
	Cost        float64
	Mileage     int
	NextMileage int
	Garage      string
	Notes       string
}

func (s *FleetService) ListInterventions(ctx context.Context, filter repository.FleetFilter) ([]model.Intervention, error) {
	return s.fleetRepo.ListInterventions(ctx, filter)
}

func (s *FleetService) GetIntervention(ctx context.Context, id uuid.UUID) (*model.Intervention, error) {
	record, err := s.fleetRepo.GetIntervention(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return record, nil
}

func (s *FleetService) CreateIntervention(ctx context.Context, input InterventionInput, uploaded []model.Document) (*model.Intervention, error) {
	record := &model.Intervention{
		VehicleID:   input.VehicleID,
		Type:        input.Type,
		Date:        input.Date,
		Cost:        input.Cost,
		Mileage:     input.Mileage,
		NextMileage: input.NextMileage,
		Garage:      input.Garage,
		Notes:       input.Notes,
		Documents:   model.DocumentList(uploaded),
	}
	if err := s.fleetRepo.CreateIntervention(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist intervention", Payload: record, Err: err}
	}
	return s.GetIntervention(ctx, record.ID)
}

func (s *FleetService) UpdateIntervention(ctx context.Context, id uuid.UUID, input InterventionInput, uploaded []model.Document) (*model.Intervention, error) {
	record, err := s.GetIntervention(ctx, id)
	if err != nil {
		return nil, err
	}
	record.VehicleID = input.VehicleID
	record.Type = input.Type
	record.Date = input.Date
	record.Cost = input.Cost
	record.Mileage = input.Mileage
	record.NextMileage = input.NextMileage
	record.Garage = input.Garage
	record.Notes = input.Notes
	record.Documents = AppendDocuments(record.Documents, uploaded)
	record.Vehicle = nil
	if err := s.fleetRepo.SaveIntervention(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist intervention", Payload: record, Err: err}
	}
	return s.GetIntervention(ctx, id)
}

func (s *FleetService) DeleteIntervention(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetIntervention(ctx, id); err != nil {
		return err
	}
	return s.fleetRepo.DeleteIntervention(ctx, id)
}

func (s *FleetService) RemoveInterventionDocument(ctx context.Context, id uuid.UUID, url string) (*model.Intervention, error) {
	record, err := s.GetIntervention(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(record.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	s.removeFile(url)
	record.Documents = final
	record.Vehicle = nil
	if err := s.fleetRepo.SaveIntervention(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist intervention", Payload: record, Err: err}
	}
	return s.GetIntervention(ctx, id)
}

type InspectionInput struct {
	VehicleID      *uuid.UUID
	Center         string
	InspectionDate time.Time
	StartDate      time.Time
	EndDate        time.Time
	Price          float64
	Result         string
}

func (s *FleetService) ListInspections(ctx context.Context, filter repository.FleetFilter) ([]model.VehicleInspection, error) {
	return s.fleetRepo.ListInspections(ctx, filter)
}

func (s *FleetService) GetInspection(ctx context.Context, id uuid.UUID) (*model.VehicleInspection, error) {
	record, err := s.fleetRepo.GetInspection(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return record, nil
}

func (s *FleetService) CreateInspection(ctx context.Context, input InspectionInput, uploaded []model.Document) (*model.VehicleInspection, error) {
	record := &model.VehicleInspection{
		VehicleID:      input.VehicleID,
		Center:         input.Center,
		InspectionDate: input.InspectionDate,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Price:          input.Price,
		Result:         input.Result,
		Documents:      model.DocumentList(uploaded),
	}
	if err := s.fleetRepo.CreateInspection(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist inspection", Payload: record, Err: err}
	}
	return s.GetInspection(ctx, record.ID)
}

func (s *FleetService) UpdateInspection(ctx context.Context, id uuid.UUID, input InspectionInput, uploaded []model.Document) (*model.VehicleInspection, error) {
	record, err := s.GetInspection(ctx, id)
	if err != nil {
		return nil, err
	}
	record.VehicleID = input.VehicleID
	record.Center = input.Center
	record.InspectionDate = input.InspectionDate
	record.StartDate = input.StartDate
	record.EndDate = input.EndDate
	record.Price = input.Price
	record.Result = input.Result
	record.Documents = AppendDocuments(record.Documents, uploaded)
	record.Vehicle = nil
	if err := s.fleetRepo.SaveInspection(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist inspection", Payload: record, Err: err}
	}
	return s.GetInspection(ctx, id)
}

func (s *FleetService) DeleteInspection(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetInspection(ctx, id); err != nil {
		return err
	}
	return s.fleetRepo.DeleteInspection(ctx, id)
}

func (s *FleetService) RemoveInspectionDocument(ctx context.Context, id uuid.UUID, url string) (*model.VehicleInspection, error) {
	record, err := s.GetInspection(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(record.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	s.removeFile(url)
	record.Documents = final
	record.Vehicle = nil
	if err := s.fleetRepo.SaveInspection(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist inspection", Payload: record, Err: err}
	}
	return s.GetInspection(ctx, id)
}

type InsuranceInput struct {
	VehicleID     *uuid.UUID
	Company       string
	PolicyNumber  string
	OperationDate time.Time
	StartDate     time.Time
	EndDate       time.Time
	Price         float64
}

func (s *FleetService) ListInsurances(ctx context.Context, filter repository.FleetFilter) ([]model.VehicleInsurance, error) {
	return s.fleetRepo.ListInsurances(ctx, filter)
}

func (s *FleetService) GetInsurance(ctx context.Context, id uuid.UUID) (*model.VehicleInsurance, error) {
	record, err := s.fleetRepo.GetInsurance(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return record, nil
}

func (s *FleetService) CreateInsurance(ctx context.Context, input InsuranceInput, uploaded []model.Document) (*model.VehicleInsurance, error) {
	record := &model.VehicleInsurance{
		VehicleID:     input.VehicleID,
		Company:       input.Company,
		PolicyNumber:  input.PolicyNumber,
		OperationDate: input.OperationDate,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Price:         input.Price,
		Documents:     model.DocumentList(uploaded),
	}
	if err := s.fleetRepo.CreateInsurance(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist insurance", Payload: record, Err: err}
	}
	return s.GetInsurance(ctx, record.ID)
}

func (s *FleetService) UpdateInsurance(ctx context.Context, id uuid.UUID, input InsuranceInput, uploaded []model.Document) (*model.VehicleInsurance, error) {
	record, err := s.GetInsurance(ctx, id)
	if err != nil {
		return nil, err
	}
	record.VehicleID = input.VehicleID
	record.Company = input.Company
	record.PolicyNumber = input.PolicyNumber
	record.OperationDate = input.OperationDate
	record.StartDate = input.StartDate
	record.EndDate = input.EndDate
	record.Price = input.Price
	record.Documents = AppendDocuments(record.Documents, uploaded)
	record.Vehicle = nil
	if err := s.fleetRepo.SaveInsurance(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist insurance", Payload: record, Err: err}
	}
	return s.GetInsurance(ctx, id)
}

func (s *FleetService) DeleteInsurance(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetInsurance(ctx, id); err != nil {
		return err
	}
	return s.fleetRepo.DeleteInsurance(ctx, id)
}

func (s *FleetService) RemoveInsuranceDocument(ctx context.Context, id uuid.UUID, url string) (*model.VehicleInsurance, error) {
	record, err := s.GetInsurance(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(record.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	s.removeFile(url)
	record.Documents = final
	record.Vehicle = nil
	if err := s.fleetRepo.SaveInsurance(ctx, record); err != nil {
		return nil, &PersistError{Op: "persist insurance", Payload: record, Err: err}
	}
	return s.GetInsurance(ctx, id)
}
