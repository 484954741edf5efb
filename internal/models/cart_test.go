package models

import (
	"testing"
)

func TestCart_Recalculate(t *testing.T) {
	tests := []struct {
		name         string
		cart         Cart
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
	}{
		{
			name:         "empty cart",
			cart:         Cart{Items: []CartItem{}},
			wantSubtotal: 0,
			wantDiscount: 0,
			wantTotal:    0,
		},
		{
			name: "single item with quantity",
			cart: Cart{
				Items: []CartItem{
					{UnitPrice: 4.99, Quantity: 2},
				},
			},
			wantSubtotal: 9.98,
			wantDiscount: 0,
			wantTotal:    9.98,
		},
		{
			name: "multiple items",
			cart: Cart{
				Items: []CartItem{
					{UnitPrice: 4.99, Quantity: 2},
					{UnitPrice: 12.99, Quantity: 1},
				},
			},
			wantSubtotal: 22.97,
			wantDiscount: 0,
			wantTotal:    22.97,
		},
		{
			name: "percent discount",
			cart: Cart{
				Items: []CartItem{
					{UnitPrice: 4.99, Quantity: 2},
				},
				PromoCode: &PromoSnapshot{Code: "WELCOME10", DiscountType: DiscountPercent, DiscountValue: 10},
			},
			wantSubtotal: 9.98,
			wantDiscount: 1.00,
			wantTotal:    8.98,
		},
		{
			name: "fixed discount",
			cart: Cart{
				Items: []CartItem{
					{UnitPrice: 19.99, Quantity: 2},
				},
				PromoCode: &PromoSnapshot{Code: "TRAVEL20", DiscountType: DiscountFixed, DiscountValue: 5},
			},
			wantSubtotal: 39.98,
			wantDiscount: 5.00,
			wantTotal:    34.98,
		},
		{
			name: "fixed discount larger than subtotal clamps total at zero",
			cart: Cart{
				Items: []CartItem{
					{UnitPrice: 3.99, Quantity: 1},
				},
				PromoCode: &PromoSnapshot{Code: "BIG", DiscountType: DiscountFixed, DiscountValue: 50},
			},
			wantSubtotal: 3.99,
			wantDiscount: 50.00,
			wantTotal:    0,
		},
		{
			name: "removing promo zeroes the discount",
			cart: Cart{
				Items: []CartItem{
					{UnitPrice: 4.99, Quantity: 2},
				},
				Discount: 1.00,
			},
			wantSubtotal: 9.98,
			wantDiscount: 0,
			wantTotal:    9.98,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cart.Recalculate()
			if tt.cart.Subtotal != tt.wantSubtotal {
				t.Errorf("Subtotal = %v, want %v", tt.cart.Subtotal, tt.wantSubtotal)
			}
			if tt.cart.Discount != tt.wantDiscount {
				t.Errorf("Discount = %v, want %v", tt.cart.Discount, tt.wantDiscount)
			}
			if tt.cart.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", tt.cart.Total, tt.wantTotal)
			}
		})
	}
}

func TestCart_Recalculate_ItemTotals(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{UnitPrice: 4.49, Quantity: 3},
			{UnitPrice: 24.99, Quantity: 2},
		},
	}
	cart.Recalculate()

	if cart.Items[0].TotalPrice != 13.47 {
		t.Errorf("Items[0].TotalPrice = %v, want 13.47", cart.Items[0].TotalPrice)
	}
	if cart.Items[1].TotalPrice != 49.98 {
		t.Errorf("Items[1].TotalPrice = %v, want 49.98", cart.Items[1].TotalPrice)
	}
	if cart.Subtotal != 63.45 {
		t.Errorf("Subtotal = %v, want 63.45", cart.Subtotal)
	}
}

func TestCart_FindLine(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: 1, PackageID: 7, IsRegional: false},
			{ID: 2, PackageID: 7, IsRegional: true},
		},
	}

	// Regular and regional packages can share a numeric id but must stay
	// separate lines.
	if got := cart.FindLine(7, false); got != 0 {
		t.Errorf("FindLine(7, false) = %d, want 0", got)
	}
	if got := cart.FindLine(7, true); got != 1 {
		t.Errorf("FindLine(7, true) = %d, want 1", got)
	}
	if got := cart.FindLine(99, false); got != -1 {
		t.Errorf("FindLine(99, false) = %d, want -1", got)
	}
}

func TestCart_FindItem(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: 1700000000001},
			{ID: 1700000000002},
		},
	}

	if got := cart.FindItem(1700000000002); got != 1 {
		t.Errorf("FindItem = %d, want 1", got)
	}
	if got := cart.FindItem(42); got != -1 {
		t.Errorf("FindItem = %d, want -1", got)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ID: 1},
			{ID: 2},
			{ID: 3},
		},
	}
	cart.RemoveItem(1)

	if len(cart.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(cart.Items))
	}
	if cart.Items[0].ID != 1 || cart.Items[1].ID != 3 {
		t.Errorf("remaining items = %v, want ids 1 and 3", cart.Items)
	}
}

func TestNewCart(t *testing.T) {
	cart := NewCart()
	if cart.Items == nil {
		t.Error("NewCart().Items should not be nil")
	}
	if !cart.IsEmpty() {
		t.Error("NewCart() should be empty")
	}
}
