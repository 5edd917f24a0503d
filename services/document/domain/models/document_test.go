package models

import (
	"errors"
	"testing"
	"time"

	documentdomain "github.com/ghuser/backoffice/services/document/domain"
)

func TestLine_Validate(t *testing.T) {
	tests := []struct {
		name             string
		qty, cost, price int64
		wantErr          bool
		wantMsg          string
	}{
		{"valid", 2, 100, 120, false, ""},
		{"zero qty", 0, 100, 120, true, "itemQty must be > 0"},
		{"negative qty", -1, 100, 120, true, "itemQty must be > 0"},
		{"negative cost", 2, -1, 120, true, "itemCost/itemPrice must be >= 0"},
		{"negative price", 2, 100, -1, true, "itemCost/itemPrice must be >= 0"},
		{"zero cost and price", 2, 0, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Line{ItemID: 1, Qty: tt.qty, Cost: tt.cost, Price: tt.price}
			err := line.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, documentdomain.ErrInvalidDocument) {
					t.Errorf("expected ErrInvalidDocument, got %v", err)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("unexpected message: %q, want %q", err.Error(), tt.wantMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewDocument_totals(t *testing.T) {
	lines := []Line{
		{ItemID: 1, Qty: 2, Cost: 100, Price: 120},
		{ItemID: 2, Qty: 3, Cost: 50, Price: 80},
	}
	doc := NewDocument("[GR] delivery", time.Now(), lines)

	// 2*100 + 3*50 = 350; 2*120 + 3*80 = 480
	if doc.TotalCost != 350 {
		t.Errorf("TotalCost = %d, want 350", doc.TotalCost)
	}
	if doc.TotalPrice != 480 {
		t.Errorf("TotalPrice = %d, want 480", doc.TotalPrice)
	}
	if doc.QtySum() != 5 {
		t.Errorf("QtySum = %d, want 5", doc.QtySum())
	}
	if doc.CreatedBy != SystemUser || doc.UpdatedBy != SystemUser {
		t.Errorf("audit fields not set: %q %q", doc.CreatedBy, doc.UpdatedBy)
	}
}

func TestNewDocument_singleLine(t *testing.T) {
	doc := NewDocument("[ADJ_OUT] damaged", time.Now(), []Line{{ItemID: 9, Qty: 4, Cost: 25, Price: 0}})
	if doc.TotalCost != 100 || doc.TotalPrice != 0 {
		t.Errorf("totals = %d/%d, want 100/0", doc.TotalCost, doc.TotalPrice)
	}
}

func TestDocument_DocType(t *testing.T) {
	doc := NewDocument("[ADJ_IN] stocktake", time.Now(), []Line{{ItemID: 1, Qty: 1}})
	typ, err := doc.DocType()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ != DocTypeAdjIn {
		t.Errorf("DocType = %q, want ADJ_IN", typ)
	}
}
