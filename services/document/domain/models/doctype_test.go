package models

import (
	"errors"
	"testing"

	documentdomain "github.com/ghuser/backoffice/services/document/domain"
)

func TestParseDocType(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        DocType
	}{
		{"purchase order", "[PO] restock blue widgets", DocTypePO},
		{"goods receipt", "[GR] delivery from supplier", DocTypeGR},
		{"inbound adjustment", "[ADJ_IN] found during stocktake", DocTypeAdjIn},
		{"outbound adjustment", "[ADJ_OUT] damaged goods", DocTypeAdjOut},
		{"lowercase tag", "[po] restock", DocTypePO},
		{"mixed case tag", "[Adj_Out] shrinkage", DocTypeAdjOut},
		{"leading whitespace", "   [GR] padded", DocTypeGR},
		{"tag only", "[PO]", DocTypePO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDocType(tt.description)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDocType(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestParseDocType_unknownTag(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"no tag", "restock blue widgets"},
		{"unrecognized tag", "[XX] mystery"},
		{"tag not at start", "urgent [PO] restock"},
		{"empty description", ""},
		{"adj without direction", "[ADJ] ambiguous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocType(tt.description)
			if err == nil {
				t.Fatalf("expected error for %q", tt.description)
			}
			if !errors.Is(err, documentdomain.ErrInvalidDocument) {
				t.Errorf("expected ErrInvalidDocument, got %v", err)
			}
			want := "Unknown document type tag. Use [PO], [GR], [ADJ_IN], or [ADJ_OUT]."
			if err.Error() != want {
				t.Errorf("unexpected message: %q", err.Error())
			}
		})
	}
}

// ADJ_IN must win over a hypothetical ADJ prefix and ADJ_OUT must not match ADJ_IN.
func TestParseDocType_adjVariantsDistinct(t *testing.T) {
	got, err := ParseDocType("[ADJ_IN] x")
	if err != nil || got != DocTypeAdjIn {
		t.Fatalf("got %q, %v", got, err)
	}
	got, err = ParseDocType("[ADJ_OUT] x")
	if err != nil || got != DocTypeAdjOut {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestStockImpact(t *testing.T) {
	tests := []struct {
		typ    DocType
		qtySum int64
		want   int64
	}{
		{DocTypePO, 10, 0},
		{DocTypeGR, 10, 10},
		{DocTypeAdjIn, 7, 7},
		{DocTypeAdjOut, 7, -7},
		{DocTypeGR, 0, 0},
	}

	for _, tt := range tests {
		if got := tt.typ.StockImpact(tt.qtySum); got != tt.want {
			t.Errorf("%s.StockImpact(%d) = %d, want %d", tt.typ, tt.qtySum, got, tt.want)
		}
	}
}
