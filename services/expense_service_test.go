package services

import (
	"testing"

	"github.com/ajshan23/alghazal-b-p/apperrors"
	"github.com/ajshan23/alghazal-b-p/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExpenseItems(t *testing.T) {
	items, total, err := buildExpenseItems([]dto.ExpenseItemRequest{
		{Description: "Paint", Date: "2026-05-01", Amount: 120.50},
		{Description: "Brushes", Date: "2026-05-02", Amount: 30},
	})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Paint", items[0].Description)
	assert.Equal(t, 150.50, total)
}

func TestBuildExpenseItemsEmpty(t *testing.T) {
	items, total, err := buildExpenseItems(nil)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestBuildExpenseItemsRejectsBadDate(t *testing.T) {
	_, _, err := buildExpenseItems([]dto.ExpenseItemRequest{
		{Description: "Paint", Date: "01/05/2026", Amount: 10},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
