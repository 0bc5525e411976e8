package customer_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      customer.Input
		wantErr []error
	}{
		{name: "valid", in: customer.Input{Name: "Alice", Email: "alice@example.com"}},
		{name: "trimmed", in: customer.Input{Name: "  Bob ", Email: " bob@Example.com "}},
		{name: "missing name", in: customer.Input{Email: "x@example.com"}, wantErr: []error{customer.ErrNameRequired}},
		{name: "bad email", in: customer.Input{Name: "X", Email: "nope"}, wantErr: []error{customer.ErrInvalidEmail}},
		{
			name:    "both invalid",
			in:      customer.Input{Name: " ", Email: ""},
			wantErr: []error{customer.ErrNameRequired, customer.ErrInvalidEmail},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := customer.New(tc.in)
			if len(tc.wantErr) > 0 {
				for _, want := range tc.wantErr {
					assert.ErrorIs(t, err, want)
				}
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Equal(t, domain.OutcomeInvalidInput, domain.Classify(err))
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, c.ID)
			assert.NotEmpty(t, c.Name)
			assert.False(t, c.CreatedAt.IsZero())
		})
	}
}

func TestNew_NormalizesEmail(t *testing.T) {
	t.Parallel()
	c, err := customer.New(customer.Input{Name: " Bob ", Email: " bob@Example.COM"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, "bob@example.com", c.Email)
}
