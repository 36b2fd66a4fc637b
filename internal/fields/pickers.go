package fields

import (
	"strings"

	"github.com/certhub/docscan/internal/entity"
)

// finalAmountLabels is the allow-list of labels that can mark a page's final
// payable total on the multi-page path.
var finalAmountLabels = []string{"합계", "총액", "승인금액", "결제금액"}

// PickFinalAmount selects the largest amount among allow-listed labeled
// candidates. Unlabeled amounts never qualify here; with no labeled match
// the result is nil. (The single-document path deliberately differs: it
// falls back to the largest amount on the page. See ExtractFinalPaymentAmount.)
func PickFinalAmount(cands []entity.FieldCandidate[int64]) *int64 {
	var best *int64
	for _, c := range cands {
		if c.Label == "" || !containsAnyOf(c.Label, finalAmountLabels) {
			continue
		}
		if best == nil || c.Value > *best {
			v := c.Value
			best = &v
		}
	}
	return best
}

// paymentDateLabels is the label priority for picking a payment date.
var paymentDateLabels = []string{"결제", "승인", "거래"}

// PickPaymentDate returns the first date candidate whose label matches,
// scanning labels in priority order. Empty when nothing matches.
func PickPaymentDate(cands []entity.FieldCandidate[string]) string {
	for _, key := range paymentDateLabels {
		for _, c := range cands {
			if c.Label != "" && strings.Contains(c.Label, key) {
				return c.Value
			}
		}
	}
	return ""
}
