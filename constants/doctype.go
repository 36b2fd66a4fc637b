package constants

// CoarseDocType labels a whole document on the single-document path.
type CoarseDocType string

const (
	// DocTypeCertificate covers pass certificates and qualification papers.
	DocTypeCertificate CoarseDocType = "A"
	// DocTypeReceipt covers receipts, sales slips and invoices.
	DocTypeReceipt CoarseDocType = "B"
	// DocTypeOther is everything the keyword scorer cannot place.
	DocTypeOther CoarseDocType = "OTHER"
)

// DetailedDocType labels individual pages on the multi-page aggregation path.
type DetailedDocType string

const (
	PageReceipt     DetailedDocType = "receipt"
	PageSales       DetailedDocType = "sales"
	PageCertificate DetailedDocType = "certificate"
	PageOther       DetailedDocType = "other"
)

// IsReceiptLike reports whether a page contributes to the receipts projection.
func (t DetailedDocType) IsReceiptLike() bool {
	return t == PageReceipt || t == PageSales
}
