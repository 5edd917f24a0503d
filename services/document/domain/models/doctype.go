package models

import (
	"strings"

	documentdomain "github.com/ghuser/backoffice/services/document/domain"
)

// DocType is the parsed document classification. It is derived from the
// bracketed tag leading the document description and never persisted; the raw
// description is stored verbatim and the variant recomputed on read.
type DocType string

const (
	DocTypePO     DocType = "PO"
	DocTypeGR     DocType = "GR"
	DocTypeAdjIn  DocType = "ADJ_IN"
	DocTypeAdjOut DocType = "ADJ_OUT"
)

// tagTable maps recognized leading tags to their DocType, checked in order
// against the uppercased trimmed description.
var tagTable = []struct {
	tag string
	typ DocType
}{
	{"[PO]", DocTypePO},
	{"[GR]", DocTypeGR},
	{"[ADJ_IN]", DocTypeAdjIn},
	{"[ADJ_OUT]", DocTypeAdjOut},
}

// ParseDocType classifies a document by the tag leading its description.
// The comparison is on the uppercased trimmed prefix; the description itself
// is left untouched by the caller.
func ParseDocType(description string) (DocType, error) {
	d := strings.ToUpper(strings.TrimSpace(description))
	for _, e := range tagTable {
		if strings.HasPrefix(d, e.tag) {
			return e.typ, nil
		}
	}
	return "", documentdomain.NewError(documentdomain.ErrInvalidDocument,
		"Unknown document type tag. Use [PO], [GR], [ADJ_IN], or [ADJ_OUT].")
}

// StockImpact derives the signed stock movement for a document of this type
// with the given total line quantity. Goods receipts and inbound adjustments
// add stock, outbound adjustments remove it, and purchase orders carry no
// stock movement of their own.
func (t DocType) StockImpact(qtySum int64) int64 {
	switch t {
	case DocTypeGR, DocTypeAdjIn:
		return qtySum
	case DocTypeAdjOut:
		return -qtySum
	default:
		return 0
	}
}
