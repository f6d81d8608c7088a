package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-service/internal/model"
)

func TestIsSecondDriverEmpty(t *testing.T) {
	assert.True(t, IsSecondDriverEmpty(nil))
	assert.True(t, IsSecondDriverEmpty(&model.SecondDriver{}))
	assert.True(t, IsSecondDriverEmpty(&model.SecondDriver{
		Name:    "   ",
		Phone:   "\t",
		Address: "\n",
	}))
}

func TestIsSecondDriverEmptyWithData(t *testing.T) {
	assert.False(t, IsSecondDriverEmpty(&model.SecondDriver{Name: "Karim"}))
	assert.False(t, IsSecondDriverEmpty(&model.SecondDriver{PassportIssueDate: "2020-01-01"}))
	assert.False(t, IsSecondDriverEmpty(&model.SecondDriver{
		Name:          "  ",
		LicenseNumber: "B123456",
	}))
}
