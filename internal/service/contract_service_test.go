package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

func newContractService(t *testing.T) (*ContractService, *stubFiles, *testFixtures) {
	t.Helper()
	db := setupTestDB(t)
	files := &stubFiles{}
	svc := NewContractService(
		repository.NewContractRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewVehicleRepository(db),
		files,
		testLogger(),
	)
	return svc, files, &testFixtures{
		customer: createTestCustomer(t, db),
		vehicle:  createTestVehicle(t, db, "2001-A-11"),
	}
}

type testFixtures struct {
	customer *model.Customer
	vehicle  *model.Vehicle
}

func (f *testFixtures) contractInput() ContractInput {
	return ContractInput{
		CustomerID: f.customer.ID,
		VehicleID:  f.vehicle.ID,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, 7),
		DailyRate:  120,
	}
}

func TestContractNumbersAreSequential(t *testing.T) {
	svc, _, fx := newContractService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, fx.contractInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Noc-00001", first.ContractNumber)

	second, err := svc.Create(ctx, fx.contractInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Noc-00002", second.ContractNumber)
}

func TestContractCreateBlankSecondDriverStoredAsNull(t *testing.T) {
	svc, _, fx := newContractService(t)
	ctx := context.Background()

	input := fx.contractInput()
	input.SecondDriver = &model.SecondDriver{Name: "  ", Phone: "\t"}

	contract, err := svc.Create(ctx, input, nil)
	require.NoError(t, err)
	assert.Nil(t, contract.SecondDriver)

	input.SecondDriver = &model.SecondDriver{Name: "Karim"}
	contract, err = svc.Create(ctx, input, nil)
	require.NoError(t, err)
	require.NotNil(t, contract.SecondDriver)
	assert.Equal(t, "Karim", contract.SecondDriver.Name)
}

func TestContractCreateRejectsMissingReferences(t *testing.T) {
	svc, _, fx := newContractService(t)
	ctx := context.Background()

	input := fx.contractInput()
	input.CustomerID = uuid.Nil
	_, err := svc.Create(ctx, input, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	input = fx.contractInput()
	input.VehicleID = uuid.New()
	_, err = svc.Create(ctx, input, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContractUpdateMergesDocumentsWithKeepList(t *testing.T) {
	svc, _, fx := newContractService(t)
	ctx := context.Background()

	uploaded := []model.Document{
		{Name: "a.pdf", URL: "/uploads/contracts/a.pdf"},
		{Name: "b.pdf", URL: "/uploads/contracts/b.pdf"},
	}
	contract, err := svc.Create(ctx, fx.contractInput(), uploaded)
	require.NoError(t, err)
	require.Len(t, contract.PiecesJointes, 2)

	updated, err := svc.Update(ctx, contract.ID, fx.contractInput(),
		[]string{"/uploads/contracts/b.pdf"},
		[]model.Document{{Name: "c.pdf", URL: "/uploads/contracts/c.pdf"}},
	)
	require.NoError(t, err)
	require.Len(t, updated.PiecesJointes, 2)
	assert.Equal(t, "/uploads/contracts/b.pdf", updated.PiecesJointes[0].URL)
	assert.Equal(t, "/uploads/contracts/c.pdf", updated.PiecesJointes[1].URL)
}

func TestContractRemoveDocumentDeletesFile(t *testing.T) {
	svc, files, fx := newContractService(t)
	ctx := context.Background()

	contract, err := svc.Create(ctx, fx.contractInput(), []model.Document{
		{Name: "a.pdf", URL: "/uploads/contracts/a.pdf"},
	})
	require.NoError(t, err)

	updated, err := svc.RemoveDocument(ctx, contract.ID, "/uploads/contracts/a.pdf")
	require.NoError(t, err)
	assert.Empty(t, updated.PiecesJointes)
	assert.Equal(t, []string{"/uploads/contracts/a.pdf"}, files.deleted)

	_, err = svc.RemoveDocument(ctx, contract.ID, "/uploads/contracts/missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}
