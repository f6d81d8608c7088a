package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

// BillingService handles factures, client payments and traites.
type BillingService struct {
	billingRepo  *repository.BillingRepository
	customerRepo *repository.CustomerRepository
	files        FileStore
	log          zerolog.Logger
}

func NewBillingService(
	billingRepo *repository.BillingRepository,
	customerRepo *repository.CustomerRepository,
	files FileStore,
	log zerolog.Logger,
) *BillingService {
	return &BillingService{
		billingRepo:  billingRepo,
		customerRepo: customerRepo,
		files:        files,
		log:          log,
	}
}

type FactureInput struct {
	CustomerID  uuid.UUID
	ContractID  *uuid.UUID
	InvoiceDate time.Time
	TotalHT     float64
	TVARate     float64
	TotalTTC    float64
	Status      string
	Lines       []model.FactureLine
}

func (s *BillingService) ListFactures(ctx context.Context, filter repository.FactureFilter) ([]model.Facture, error) {
	return s.billingRepo.ListFactures(ctx, filter)
}

func (s *BillingService) GetFacture(ctx context.Context, id uuid.UUID) (*model.Facture, error) {
	facture, err := s.billingRepo.GetFacture(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return facture, nil
}

func (s *BillingService) CreateFacture(ctx context.Context, input FactureInput, uploaded []model.Document) (*model.Facture, error) {
	if input.CustomerID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, mapNotFound(err)
	}

	totalHT, totalTTC := deriveFactureTotals(input)

	facture := &model.Facture{
		InvoiceNumber: NewInvoiceNumber(time.Now()),
		CustomerID:    input.CustomerID,
		ContractID:    input.ContractID,
		InvoiceDate:   input.InvoiceDate,
		TotalHT:       totalHT,
		TVARate:       input.TVARate,
		TotalTTC:      totalTTC,
		Status:        defaultString(input.Status, "emise"),
		Lines:         model.FactureLines(input.Lines),
		Documents:     model.DocumentList(uploaded),
	}

	if err := s.billingRepo.CreateFacture(ctx, facture); err != nil {
		return nil, &PersistError{Op: "persist facture", Payload: facture, Err: err}
	}
	return s.GetFacture(ctx, facture.ID)
}

func (s *BillingService) UpdateFacture(ctx context.Context, id uuid.UUID, input FactureInput, keep []string, uploaded []model.Document) (*model.Facture, error) {
	facture, err := s.GetFacture(ctx, id)
	if err != nil {
		return nil, err
	}

	totalHT, totalTTC := deriveFactureTotals(input)

	facture.CustomerID = input.CustomerID
	facture.ContractID = input.ContractID
	facture.InvoiceDate = input.InvoiceDate
	facture.TotalHT = totalHT
	facture.TVARate = input.TVARate
	facture.TotalTTC = totalTTC
	facture.Status = defaultString(input.Status, facture.Status)
	facture.Lines = model.FactureLines(input.Lines)
	facture.Documents = MergeDocuments(facture.Documents, keep, uploaded)
	facture.Customer = nil

	if err := s.billingRepo.SaveFacture(ctx, facture); err != nil {
		return nil, &PersistError{Op: "persist facture", Payload: facture, Err: err}
	}
	return s.GetFacture(ctx, id)
}

func (s *BillingService) DeleteFacture(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetFacture(ctx, id); err != nil {
		return err
	}
	return s.billingRepo.DeleteFacture(ctx, id)
}

func (s *BillingService) RemoveFactureDocument(ctx context.Context, id uuid.UUID, url string) (*model.Facture, error) {
	facture, err := s.GetFacture(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(facture.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	if err := s.files.Delete(url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("document file delete failed")
	}
	facture.Documents = final
	facture.Customer = nil
	if err := s.billingRepo.SaveFacture(ctx, facture); err != nil {
		return nil, &PersistError{Op: "persist facture", Payload: facture, Err: err}
	}
	return s.GetFacture(ctx, id)
}

type PaymentInput struct {
	CustomerID  uuid.UUID
	PaymentFor  model.PaymentTarget
	ContractID  *uuid.UUID
	FactureID   *uuid.UUID
	AccidentID  *uuid.UUID
	Amount      float64
	Method      string
	PaymentDate time.Time
	Notes       string
}

func (s *BillingService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]model.ClientPayment, error) {
	return s.billingRepo.ListPayments(ctx, filter)
}

func (s *BillingService) GetPayment(ctx context.Context, id uuid.UUID) (*model.ClientPayment, error) {
	payment, err := s.billingRepo.GetPayment(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return payment, nil
}

func (s *BillingService) CreatePayment(ctx context.Context, input PaymentInput, uploaded []model.Document) (*model.ClientPayment, error) {
	if err := validatePaymentTarget(input); err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, mapNotFound(err)
	}

	latest, err := s.billingRepo.LatestPayment(ctx)
	if err != nil {
		return nil, err
	}
	prev := ""
	if latest != nil {
		prev = latest.PaymentNumber
	}

	payment := &model.ClientPayment{
		PaymentNumber: NextPaymentNumber(prev, time.Now()),
		CustomerID:    input.CustomerID,
		PaymentFor:    input.PaymentFor,
		ContractID:    input.ContractID,
		FactureID:     input.FactureID,
		AccidentID:    input.AccidentID,
		Amount:        input.Amount,
		Method:        input.Method,
		PaymentDate:   input.PaymentDate,
		Notes:         input.Notes,
		Documents:     model.DocumentList(uploaded),
	}

	if err := s.billingRepo.CreatePayment(ctx, payment); err != nil {
		return nil, &PersistError{Op: "persist payment", Payload: payment, Err: err}
	}
	return s.GetPayment(ctx, payment.ID)
}

// UpdatePayment appends uploads to the existing attachments; payments have no
// keep-list semantics.
func (s *BillingService) UpdatePayment(ctx context.Context, id uuid.UUID, input PaymentInput, uploaded []model.Document) (*model.ClientPayment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validatePaymentTarget(input); err != nil {
		return nil, err
	}

	payment.CustomerID = input.CustomerID
	payment.PaymentFor = input.PaymentFor
	payment.ContractID = input.ContractID
	payment.FactureID = input.FactureID
	payment.AccidentID = input.AccidentID
	payment.Amount = input.Amount
	payment.Method = input.Method
	payment.PaymentDate = input.PaymentDate
	payment.Notes = input.Notes
	payment.Documents = AppendDocuments(payment.Documents, uploaded)
	payment.Customer = nil

	if err := s.billingRepo.SavePayment(ctx, payment); err != nil {
		return nil, &PersistError{Op: "persist payment", Payload: payment, Err: err}
	}
	return s.GetPayment(ctx, id)
}

func (s *BillingService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPayment(ctx, id); err != nil {
		return err
	}
	return s.billingRepo.DeletePayment(ctx, id)
}

func (s *BillingService) RemovePaymentDocument(ctx context.Context, id uuid.UUID, url string) (*model.ClientPayment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(payment.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	if err := s.files.Delete(url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("document file delete failed")
	}
	payment.Documents = final
	payment.Customer = nil
	if err := s.billingRepo.SavePayment(ctx, payment); err != nil {
		return nil, &PersistError{Op: "persist payment", Payload: payment, Err: err}
	}
	return s.GetPayment(ctx, id)
}

type TraiteInput struct {
	ContractID   *uuid.UUID
	Montant      float64
	DatePaiement *time.Time
	Status       string
	Notes        string
}

func (s *BillingService) ListTraites(ctx context.Context, filter repository.TraiteFilter) ([]model.Traite, error) {
	return s.billingRepo.ListTraites(ctx, filter)
}

func (s *BillingService) GetTraite(ctx context.Context, id uuid.UUID) (*model.Traite, error) {
	traite, err := s.billingRepo.GetTraite(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return traite, nil
}

func (s *BillingService) CreateTraite(ctx context.Context, input TraiteInput, uploaded []model.Document) (*model.Traite, error) {
	traite := &model.Traite{
		ContractID:   input.ContractID,
		Montant:      input.Montant,
		DatePaiement: input.DatePaiement,
		Status:       defaultString(input.Status, "en_attente"),
		Notes:        input.Notes,
		Documents:    model.DocumentList(uploaded),
	}
	if err := s.billingRepo.CreateTraite(ctx, traite); err != nil {
		return nil, &PersistError{Op: "persist traite", Payload: traite, Err: err}
	}
	return s.GetTraite(ctx, traite.ID)
}

func (s *BillingService) UpdateTraite(ctx context.Context, id uuid.UUID, input TraiteInput, uploaded []model.Document) (*model.Traite, error) {
	traite, err := s.GetTraite(ctx, id)
	if err != nil {
		return nil, err
	}

	traite.ContractID = input.ContractID
	traite.Montant = input.Montant
	traite.DatePaiement = input.DatePaiement
	traite.Status = defaultString(input.Status, traite.Status)
	traite.Notes = input.Notes
	traite.Documents = AppendDocuments(traite.Documents, uploaded)
	traite.Contract = nil

	if err := s.billingRepo.SaveTraite(ctx, traite); err != nil {
		return nil, &PersistError{Op: "persist traite", Payload: traite, Err: err}
	}
	return s.GetTraite(ctx, id)
}

func (s *BillingService) DeleteTraite(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTraite(ctx, id); err != nil {
		return err
	}
	return s.billingRepo.DeleteTraite(ctx, id)
}

func (s *BillingService) RemoveTraiteDocument(ctx context.Context, id uuid.UUID, url string) (*model.Traite, error) {
	traite, err := s.GetTraite(ctx, id)
	if err != nil {
		return nil, err
	}
	final, ok := RemoveDocumentByURL(traite.Documents, url)
	if !ok {
		return nil, ErrNotFound
	}
	if err := s.files.Delete(url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("document file delete failed")
	}
	traite.Documents = final
	traite.Contract = nil
	if err := s.billingRepo.SaveTraite(ctx, traite); err != nil {
		return nil, &PersistError{Op: "persist traite", Payload: traite, Err: err}
	}
	return s.GetTraite(ctx, id)
}

// deriveFactureTotals fills TotalHT from the line items and TotalTTC from the
// TVA rate whenever the caller left them at zero.
func deriveFactureTotals(input FactureInput) (totalHT, totalTTC float64) {
	totalHT = input.TotalHT
	if totalHT == 0 {
		for _, line := range input.Lines {
			totalHT += line.Total
		}
	}
	totalTTC = input.TotalTTC
	if totalTTC == 0 {
		totalTTC = totalHT * (1 + input.TVARate/100)
	}
	return totalHT, totalTTC
}

func validatePaymentTarget(input PaymentInput) error {
	if input.CustomerID == uuid.Nil {
		return ErrInvalidInput
	}
	switch input.PaymentFor {
	case model.PaymentTargetContract:
		if input.ContractID == nil {
			return ErrInvalidInput
		}
	case model.PaymentTargetFacture:
		if input.FactureID == nil {
			return ErrInvalidInput
		}
	case model.PaymentTargetAccident:
		if input.AccidentID == nil {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	return nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
