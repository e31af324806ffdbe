package validator

import (
	"testing"

	"github.com/cinex/cinema-ticket-service/api"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketCategoryRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		category string
		wantErr  bool
	}{
		{category: "ADULT"},
		{category: "CHILD"},
		{category: "INFANT"},
		{category: "SENIOR", wantErr: true},
		{category: "adult", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			line := api.TicketLine{Category: tt.category, Count: 1}

			err := v.Struct(line)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationMessage(t *testing.T) {
	v := NewValidator()

	req := api.PurchaseRequest{
		AccountID: 1,
		Tickets:   []api.TicketLine{{Category: "SENIOR", Count: 1}},
	}

	err := v.Struct(req)
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Len(t, validationErrors, 1)

	assert.Equal(t, "must be one of ADULT, CHILD, INFANT", ValidationMessage(validationErrors[0]))
}
