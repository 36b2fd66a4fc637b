// Package classify assigns document-type labels to recognized text by keyword
// scoring. Two independent vocabularies coexist on purpose: the coarse one
// drives single-document field selection, the detailed one drives per-page
// aggregation across receipts, certificates and mixed sales slips. Merging
// them would drift downstream policy, so both are kept as-is.
package classify

import (
	"strings"

	"github.com/certhub/docscan/constants"
)

// typeAKeywords indicate pass certificates and qualification papers.
var typeAKeywords = []string{
	"합격증", "합격", "자격증명서", "자격증", "자격시험", "기사", "산업기사",
	"급수", "등급", "1급", "2급", "3급", "기능사",
	"CERTIFICATE", "PASS", "QUALIFICATION", "LICENSE",
}

// typeBKeywords indicate receipts, sales slips and invoices.
var typeBKeywords = []string{
	"매출전표", "영수증", "거래명세서", "세금계산서", "계산서",
	"결제금액", "합계금액", "총액", "최종금액", "청구금액",
	"RECEIPT", "INVOICE", "BILL", "PAYMENT", "TOTAL",
}

// Coarse scores text against the certificate and receipt keyword sets and
// returns whichever scores strictly higher and above zero; ties and all-zero
// both land on OTHER. Pure function; empty input is safe.
func Coarse(text string) constants.CoarseDocType {
	if text == "" {
		return constants.DocTypeOther
	}
	upper := strings.ToUpper(text)

	scoreA := score(upper, typeAKeywords)
	scoreB := score(upper, typeBKeywords)

	switch {
	case scoreA > scoreB && scoreA > 0:
		return constants.DocTypeCertificate
	case scoreB > scoreA && scoreB > 0:
		return constants.DocTypeReceipt
	default:
		return constants.DocTypeOther
	}
}

// receiptKeys/certKeys are the detailed-path vocabularies.
var (
	receiptKeys = []string{"영수증", "RECEIPT", "매출전표", "CREDIT", "승인", "결제", "거래"}
	certKeys    = []string{"자격증", "CERTIFICATE", "합격", "발급", "면허", "LICENSE"}
)

// Detailed labels a page for the multi-page aggregation path. A page showing
// both receipt and certificate indicators is a mixed sales slip.
func Detailed(text string) constants.DetailedDocType {
	if text == "" {
		return constants.PageOther
	}
	upper := strings.ToUpper(text)

	hasReceipt := score(upper, receiptKeys) > 0
	hasCert := score(upper, certKeys) > 0

	switch {
	case hasCert && !hasReceipt:
		return constants.PageCertificate
	case hasReceipt && !hasCert:
		return constants.PageReceipt
	case hasReceipt && hasCert:
		return constants.PageSales
	default:
		return constants.PageOther
	}
}

func score(upper string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(upper, k) {
			n++
		}
	}
	return n
}
