package models

import (
	"testing"
)

func TestAddItemRequest_Validate(t *testing.T) {
	tests := []struct {
		name         string
		req          AddItemRequest
		wantErr      bool
		wantQuantity int
		wantType     PackageKind
	}{
		{
			name:         "defaults applied",
			req:          AddItemRequest{PackageID: 1},
			wantQuantity: 1,
			wantType:     PackageRegular,
		},
		{
			name:         "explicit values kept",
			req:          AddItemRequest{PackageID: 1, Quantity: 3, Type: PackageRegional},
			wantQuantity: 3,
			wantType:     PackageRegional,
		},
		{
			name:    "missing package id",
			req:     AddItemRequest{Quantity: 1},
			wantErr: true,
		},
		{
			name:    "negative quantity",
			req:     AddItemRequest{PackageID: 1, Quantity: -2},
			wantErr: true,
		},
		{
			name:    "unknown type",
			req:     AddItemRequest{PackageID: 1, Type: "bundle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.req.Quantity != tt.wantQuantity {
				t.Errorf("Quantity = %d, want %d", tt.req.Quantity, tt.wantQuantity)
			}
			if tt.req.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", tt.req.Type, tt.wantType)
			}
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid request",
			req:  RegisterRequest{Email: "test@example.com", Password: "secret1", FirstName: "Jane", LastName: "Doe"},
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Password: "secret1"},
			wantErr: true,
			errMsg:  "email and password are required",
		},
		{
			name:    "bad email format",
			req:     RegisterRequest{Email: "nope", Password: "secret1"},
			wantErr: true,
			errMsg:  "email format is invalid",
		},
		{
			name:    "short password",
			req:     RegisterRequest{Email: "test@example.com", Password: "abc"},
			wantErr: true,
			errMsg:  "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %q, want %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestSupportTicketRequest_Validate(t *testing.T) {
	req := SupportTicketRequest{Email: "test@example.com", Category: "billing", Message: "help"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if req.Subject != "Support Request" {
		t.Errorf("Subject = %q, want default \"Support Request\"", req.Subject)
	}

	missing := SupportTicketRequest{Email: "test@example.com"}
	if err := missing.Validate(); err == nil {
		t.Error("Validate() should require category and message")
	}
}

func TestApplyPromoRequest_Validate(t *testing.T) {
	if err := (&ApplyPromoRequest{Code: "WELCOME10"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (&ApplyPromoRequest{Code: "   "}).Validate(); err == nil {
		t.Error("Validate() should reject blank codes")
	}
}

func TestCheckoutRequest_Validate(t *testing.T) {
	if err := (&CheckoutRequest{Email: "buyer@example.com"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (&CheckoutRequest{Email: ""}).Validate(); err == nil {
		t.Error("Validate() should require an email")
	}
}
