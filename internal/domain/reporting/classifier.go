package reporting

import "strings"

// TransactionCategory is the bucket a transaction type classifies into
type TransactionCategory string

const (
	CategoryReceivable TransactionCategory = "receivable"
	CategoryPayable    TransactionCategory = "payable"
	CategoryOther      TransactionCategory = "other"
)

// Keyword rule lists, tested in order; receivable keywords take priority
// over payable keywords, so an ambiguous type like "refund_received" lands
// in receivable. Within a list the compound forms come before their bare
// stems so the match is still containment, not equality.
var (
	receivableKeywords = []string{
		"rent_received",
		"rent",
		"deposit_received",
		"deposit",
		"advance_received",
		"advance",
		"dues_received",
		"other_received",
	}

	payableKeywords = []string{
		"salary_paid",
		"vendor_paid",
		"maintenance_paid",
		"utility_paid",
		"refund_paid",
		"other_paid",
		"refund",
	}
)

// ClassifyTransactionType buckets a free-text transaction type into
// receivable, payable, or other. Matching is case-insensitive containment
// against the ordered keyword lists; the first hit wins; an empty or
// unrecognized type falls through to other.
func ClassifyTransactionType(transactionType string) TransactionCategory {
	t := strings.ToLower(strings.TrimSpace(transactionType))
	if t == "" {
		return CategoryOther
	}

	for _, kw := range receivableKeywords {
		if strings.Contains(t, kw) {
			return CategoryReceivable
		}
	}
	for _, kw := range payableKeywords {
		if strings.Contains(t, kw) {
			return CategoryPayable
		}
	}

	return CategoryOther
}

// PayableType selects which payables listing branch to serve
type PayableType string

const (
	PayableTypeBills   PayableType = "bills"
	PayableTypeVendor  PayableType = "vendor"
	PayableTypeLaundry PayableType = "laundry"
)

// ParsePayableType normalizes the payables listing type parameter,
// defaulting to bills for anything unrecognized
func ParsePayableType(raw string) PayableType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PayableTypeVendor):
		return PayableTypeVendor
	case string(PayableTypeLaundry):
		return PayableTypeLaundry
	default:
		return PayableTypeBills
	}
}
