package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

func newCustomerService(t *testing.T) (*CustomerService, *stubFiles) {
	t.Helper()
	db := setupTestDB(t)
	files := &stubFiles{}
	return NewCustomerService(repository.NewCustomerRepository(db), files, testLogger()), files
}

func TestCustomerCreateRequiresName(t *testing.T) {
	svc, _ := newCustomerService(t)
	_, err := svc.Create(context.Background(), CustomerInput{FirstName: "Sami"}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCustomerStatusNormalized(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	customer, err := svc.Create(ctx, CustomerInput{FirstName: "Sami", LastName: "Ben Ali", Status: "vip"}, nil)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerStatusActive, customer.Status)

	updated, err := svc.Update(ctx, customer.ID, CustomerInput{FirstName: "Sami", LastName: "Ben Ali", Status: "inactive"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerStatusInactive, updated.Status)

	updated, err = svc.Update(ctx, customer.ID, CustomerInput{FirstName: "Sami", LastName: "Ben Ali", Status: "Inactif"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.CustomerStatusInactive, updated.Status)
}

func TestCustomerCreatePersistFailureCarriesPayload(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	cin := "AB123456"
	_, err := svc.Create(ctx, CustomerInput{FirstName: "Sami", LastName: "Ben Ali", CIN: &cin}, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, CustomerInput{FirstName: "Rim", LastName: "Trabelsi", CIN: &cin}, nil)
	require.Error(t, err)

	var persistErr *PersistError
	require.ErrorAs(t, err, &persistErr)
	assert.NotNil(t, persistErr.Payload)
	assert.Contains(t, persistErr.Error(), "persist customer")
}

func TestCustomerUpdateMissingKeepListDropsDocuments(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	customer, err := svc.Create(ctx, CustomerInput{FirstName: "Sami", LastName: "Ben Ali"}, docList("/uploads/cin.pdf", "/uploads/permis.pdf"))
	require.NoError(t, err)
	require.Len(t, customer.Documents, 2)

	updated, err := svc.Update(ctx, customer.ID, CustomerInput{FirstName: "Sami", LastName: "Ben Ali"}, nil, docList("/uploads/passeport.pdf"))
	require.NoError(t, err)
	require.Len(t, updated.Documents, 1)
	assert.Equal(t, "/uploads/passeport.pdf", updated.Documents[0].URL)
}

func TestCustomerRemoveDocumentByName(t *testing.T) {
	svc, files := newCustomerService(t)
	ctx := context.Background()

	docs := docList("/uploads/cin.pdf")
	customer, err := svc.Create(ctx, CustomerInput{FirstName: "Sami", LastName: "Ben Ali"}, docs)
	require.NoError(t, err)

	updated, err := svc.RemoveDocument(ctx, customer.ID, docs[0].Name)
	require.NoError(t, err)
	assert.Empty(t, updated.Documents)
	assert.Equal(t, []string{"/uploads/cin.pdf"}, files.deleted)

	_, err = svc.RemoveDocument(ctx, customer.ID, "absent.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerDeleteCleansFiles(t *testing.T) {
	svc, files := newCustomerService(t)
	ctx := context.Background()

	customer, err := svc.Create(ctx, CustomerInput{FirstName: "Sami", LastName: "Ben Ali"}, docList("/uploads/cin.pdf", "/uploads/permis.pdf"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, customer.ID))
	assert.ElementsMatch(t, []string{"/uploads/cin.pdf", "/uploads/permis.pdf"}, files.deleted)

	_, err = svc.Get(ctx, customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
