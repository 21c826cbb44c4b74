package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
)

type stayRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=3,max=10"`
	Email    string `json:"email"    validate:"required,email"`
	CheckIn  string `json:"checkIn"  validate:"required,isodate"`
	Guests   int    `json:"guests"   validate:"min=1"`
	Price    string `json:"price"    validate:"required,decimal"`
	Category string `json:"category" validate:"omitempty,oneof=deluxe suite premium family"`
}

func validStay() stayRequest {
	return stayRequest{
		Email:    "guest@example.com",
		CheckIn:  "2024-06-01",
		Guests:   2,
		Price:    "299.00",
		Category: "deluxe",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *stayRequest)
		wantErr string
	}{
		{name: "valid struct", mutate: func(_ *stayRequest) {}},
		{name: "rfc3339 check-in", mutate: func(r *stayRequest) { r.CheckIn = "2024-06-01T14:00:00Z" }},
		{name: "missing email", mutate: func(r *stayRequest) { r.Email = "" }, wantErr: "email is required"},
		{name: "invalid email", mutate: func(r *stayRequest) { r.Email = "nope" }, wantErr: "email must be a valid email address"},
		{name: "bad date", mutate: func(r *stayRequest) { r.CheckIn = "06/01/2024" }, wantErr: "checkIn must be a date in YYYY-MM-DD or RFC3339 format"},
		{name: "zero guests", mutate: func(r *stayRequest) { r.Guests = 0 }, wantErr: "guests must be greater than or equal to 1"},
		{name: "negative price", mutate: func(r *stayRequest) { r.Price = "-5" }, wantErr: "price must be a non-negative decimal amount"},
		{name: "short name", mutate: func(r *stayRequest) { r.Name = "ab" }, wantErr: "name must be at least 3 characters"},
		{name: "long name", mutate: func(r *stayRequest) { r.Name = "abcdefghijk" }, wantErr: "name must be at most 10 characters"},
		{name: "unknown category", mutate: func(r *stayRequest) { r.Category = "penthouse" }, wantErr: "category must be one of deluxe suite premium family"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"email":"guest@example.com","checkIn":"2024-06-01","guests":2,"price":"299.00"}`,
		},
		{
			name:     "invalid field",
			jsonBody: `{"email":"guest@example.com","checkIn":"2024-06-01","guests":0,"price":"299.00"}`,
			wantErr:  true,
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"email":}`,
			wantErr:  true,
		},
		{
			name:     "wrong type",
			jsonBody: `{"email":"guest@example.com","checkIn":"2024-06-01","guests":"two","price":"299.00"}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data stayRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 2, data.Guests)
		})
	}
}
