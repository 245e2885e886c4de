package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"tie/shared/failure"
	"tie/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plan string

func (p plan) IsValid() bool {
	return p == "CP" || p == "EP"
}

type form struct {
	Guest    string `json:"guest_name" validate:"notblank"`
	Mobile   string `json:"mobile_no"  validate:"mobile"`
	Adults   int    `json:"adults"     validate:"gte=0"`
	Plan     plan   `json:"breakfast"  validate:"enum"`
	CheckIn  string `json:"check_in"   validate:"required,datetime=2006-01-02"`
	Internal string `json:"-"`
}

func validForm() form {
	return form{Guest: "Amit Sharma", Mobile: "9876543210", Adults: 2, Plan: "CP", CheckIn: "2025-10-24"}
}

func TestReasons(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *form)
		expected []string
	}{
		{
			name:   "valid",
			mutate: func(_ *form) {},
		},
		{
			name:     "blank guest",
			mutate:   func(f *form) { f.Guest = "   " },
			expected: []string{"guest_name is required"},
		},
		{
			name:     "short mobile",
			mutate:   func(f *form) { f.Mobile = "98765" },
			expected: []string{"mobile_no must be exactly 10 digits"},
		},
		{
			name:     "alphabetic mobile",
			mutate:   func(f *form) { f.Mobile = "98765abcde" },
			expected: []string{"mobile_no must be exactly 10 digits"},
		},
		{
			name:     "non-ascii digits",
			mutate:   func(f *form) { f.Mobile = "٠١٢٣٤" },
			expected: []string{"mobile_no must be exactly 10 digits"},
		},
		{
			name:     "full-width digits",
			mutate:   func(f *form) { f.Mobile = "９８７６５４３２１０" },
			expected: []string{"mobile_no must be exactly 10 digits"},
		},
		{
			name:     "unknown enum",
			mutate:   func(f *form) { f.Plan = "AP" },
			expected: []string{"breakfast has an unsupported value"},
		},
		{
			name:     "bad date",
			mutate:   func(f *form) { f.CheckIn = "24/10/2025" },
			expected: []string{"check_in must be a date in 2006-01-02 format"},
		},
		{
			name: "every failure reported",
			mutate: func(f *form) {
				f.Guest = ""
				f.Adults = -1
			},
			expected: []string{"guest_name is required", "adults must be greater than or equal to 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validForm()
			tt.mutate(&data)

			assert.Equal(t, tt.expected, validator.Reasons(&data))
		})
	}
}

func TestValidate_DecodeFailure(t *testing.T) {
	data := form{}

	err := validator.Validate(strings.NewReader("{not json"), &data)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidate_Body(t *testing.T) {
	data := form{}
	body := `{"guest_name":"Amit Sharma","mobile_no":"9876543210","adults":1,"breakfast":"EP","check_in":"2025-10-24"}`

	require.NoError(t, validator.Validate(strings.NewReader(body), &data))
	assert.Equal(t, plan("EP"), data.Plan)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("9876543210", "mobile"))
	assert.Error(t, validator.ValidateVar("12", "mobile"))
}

type payment struct {
	Amount decimal.Decimal `json:"amount" validate:"gte=0,cents"`
}

func TestReasons_Decimal(t *testing.T) {
	assert.Empty(t, validator.Reasons(&payment{Amount: decimal.RequireFromString("1500.50")}))
	assert.Equal(t, []string{"amount must be greater than or equal to 0"}, validator.Reasons(&payment{Amount: decimal.NewFromInt(-1)}))
}

func TestReasons_Cents(t *testing.T) {
	tests := []struct {
		amount   string
		expected []string
	}{
		{amount: "1000"},
		{amount: "1000.5"},
		{amount: "0.01"},
		{amount: "0.005", expected: []string{"amount must have at most 2 decimal places"}},
		{amount: "1500.505", expected: []string{"amount must have at most 2 decimal places"}},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.Reasons(&payment{Amount: decimal.RequireFromString(tt.amount)}))
		})
	}
}
