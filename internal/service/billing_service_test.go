package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

func newBillingService(t *testing.T) (*BillingService, *stubFiles, *testFixtures) {
	t.Helper()
	db := setupTestDB(t)
	files := &stubFiles{}
	svc := NewBillingService(
		repository.NewBillingRepository(db),
		repository.NewCustomerRepository(db),
		files,
		testLogger(),
	)
	return svc, files, &testFixtures{
		customer: createTestCustomer(t, db),
	}
}

func TestPaymentNumbersAreSequentialWithinYear(t *testing.T) {
	svc, _, fx := newBillingService(t)
	ctx := context.Background()
	year := time.Now().Year()

	input := PaymentInput{
		CustomerID:  fx.customer.ID,
		PaymentFor:  model.PaymentTargetContract,
		ContractID:  ptrUUID(uuid.New()),
		Amount:      250,
		Method:      "especes",
		PaymentDate: time.Now(),
	}

	first, err := svc.CreatePayment(ctx, input, nil)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REG-%d-001", year), first.PaymentNumber)

	second, err := svc.CreatePayment(ctx, input, nil)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REG-%d-002", year), second.PaymentNumber)
}

func TestPaymentTargetValidation(t *testing.T) {
	svc, _, fx := newBillingService(t)
	ctx := context.Background()

	input := PaymentInput{
		CustomerID: fx.customer.ID,
		PaymentFor: model.PaymentTargetFacture,
		Amount:     100,
	}
	_, err := svc.CreatePayment(ctx, input, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input.PaymentFor = "loyer"
	_, err = svc.CreatePayment(ctx, input, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input.PaymentFor = model.PaymentTargetAccident
	input.AccidentID = ptrUUID(uuid.New())
	_, err = svc.CreatePayment(ctx, input, nil)
	assert.NoError(t, err)
}

func TestPaymentUpdateAppendsDocuments(t *testing.T) {
	svc, _, fx := newBillingService(t)
	ctx := context.Background()

	input := PaymentInput{
		CustomerID: fx.customer.ID,
		PaymentFor: model.PaymentTargetContract,
		ContractID: ptrUUID(uuid.New()),
		Amount:     300,
	}
	payment, err := svc.CreatePayment(ctx, input, docList("/uploads/recu.pdf"))
	require.NoError(t, err)
	require.Len(t, payment.Documents, 1)

	updated, err := svc.UpdatePayment(ctx, payment.ID, input, docList("/uploads/cheque.pdf"))
	require.NoError(t, err)
	require.Len(t, updated.Documents, 2)
	assert.Equal(t, "/uploads/recu.pdf", updated.Documents[0].URL)
	assert.Equal(t, "/uploads/cheque.pdf", updated.Documents[1].URL)
}

func TestFactureTotalsDerivedFromLines(t *testing.T) {
	svc, _, fx := newBillingService(t)
	ctx := context.Background()

	facture, err := svc.CreateFacture(ctx, FactureInput{
		CustomerID:  fx.customer.ID,
		InvoiceDate: time.Now(),
		TVARate:     20,
		Lines: []model.FactureLine{
			{Label: "location", Quantity: 2, UnitPrice: 50, Total: 100},
			{Label: "carburant", Quantity: 1, UnitPrice: 50, Total: 50},
		},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 150.0, facture.TotalHT)
	assert.InDelta(t, 180.0, facture.TotalTTC, 0.001)
	assert.Equal(t, "emise", facture.Status)
	assert.True(t, len(facture.InvoiceNumber) > 4 && facture.InvoiceNumber[:4] == "INV-")
}

func TestFactureExplicitTotalsPreserved(t *testing.T) {
	svc, _, fx := newBillingService(t)
	ctx := context.Background()

	facture, err := svc.CreateFacture(ctx, FactureInput{
		CustomerID:  fx.customer.ID,
		InvoiceDate: time.Now(),
		TotalHT:     500,
		TVARate:     19,
		TotalTTC:    580,
		Status:      "payee",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 500.0, facture.TotalHT)
	assert.Equal(t, 580.0, facture.TotalTTC)
	assert.Equal(t, "payee", facture.Status)
}

func TestFactureRemoveDocumentDeletesFile(t *testing.T) {
	svc, files, fx := newBillingService(t)
	ctx := context.Background()

	facture, err := svc.CreateFacture(ctx, FactureInput{
		CustomerID:  fx.customer.ID,
		InvoiceDate: time.Now(),
		TotalHT:     100,
	}, docList("/uploads/scan.pdf"))
	require.NoError(t, err)

	updated, err := svc.RemoveFactureDocument(ctx, facture.ID, "/uploads/scan.pdf")
	require.NoError(t, err)
	assert.Empty(t, updated.Documents)
	assert.Equal(t, []string{"/uploads/scan.pdf"}, files.deleted)

	_, err = svc.RemoveFactureDocument(ctx, facture.ID, "/uploads/absent.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTraiteDefaultsAndAppend(t *testing.T) {
	svc, _, _ := newBillingService(t)
	ctx := context.Background()

	traite, err := svc.CreateTraite(ctx, TraiteInput{Montant: 1200}, nil)
	require.NoError(t, err)
	assert.Equal(t, "en_attente", traite.Status)
	assert.Nil(t, traite.DatePaiement)

	paid := time.Now()
	updated, err := svc.UpdateTraite(ctx, traite.ID, TraiteInput{
		Montant:      1200,
		DatePaiement: &paid,
		Status:       "payee",
	}, docList("/uploads/bordereau.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "payee", updated.Status)
	require.NotNil(t, updated.DatePaiement)
	require.Len(t, updated.Documents, 1)
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }
