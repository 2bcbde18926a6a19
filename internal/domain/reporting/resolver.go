package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/hostelops/backend/internal/domain/billing"
)

// DisplayDateLayout is the human-facing date format used in report rows
const DisplayDateLayout = "Jan 2, 2006"

// ReceivableStatus is the presentation status of a payment in the
// receivables listing
type ReceivableStatus string

const (
	ReceivableStatusOverdue ReceivableStatus = "Overdue"
	ReceivableStatusPartial ReceivableStatus = "Partial"
	ReceivableStatusPending ReceivableStatus = "Pending"
	ReceivableStatusPaid    ReceivableStatus = "Paid"
)

// ResolveReceivableStatus derives the presentation status of a payment.
// Rules apply first-match-wins:
//  1. a stored overdue status always presents as Overdue
//  2. a paid payment presents as Paid and is never overdue
//  3. a pending payment whose due date (payment date, falling back to
//     creation time) has passed presents as Overdue
//  4. a partial payment presents as Partial even past its due date
//  5. everything else presents as Pending
func ResolveReceivableStatus(p *billing.Payment, now time.Time) ReceivableStatus {
	switch {
	case p.Status == billing.PaymentStatusOverdue:
		return ReceivableStatusOverdue
	case p.Status == billing.PaymentStatusPaid:
		return ReceivableStatusPaid
	case p.Status == billing.PaymentStatusPending && p.DueDate().Before(now):
		return ReceivableStatusOverdue
	case p.Status == billing.PaymentStatusPartial:
		return ReceivableStatusPartial
	default:
		return ReceivableStatusPending
	}
}

// IsOverdue reports whether the payment presents as overdue
func IsOverdue(p *billing.Payment, now time.Time) bool {
	return ResolveReceivableStatus(p, now) == ReceivableStatusOverdue
}

// PaymentReference returns the human-facing reference for a payment: the
// receipt number when one exists, otherwise the upper-cased payment type
// (defaulting to RENT) joined with the zero-padded sequence number,
// e.g. RENT-0007
func PaymentReference(p *billing.Payment) string {
	if p.ReceiptNumber != nil && *p.ReceiptNumber != "" {
		return *p.ReceiptNumber
	}

	prefix := strings.TrimSpace(p.PaymentType)
	if prefix == "" {
		prefix = "rent"
	}
	return fmt.Sprintf("%s-%04d", strings.ToUpper(prefix), p.Sequence)
}

// FormatDisplayDate renders a timestamp in the report row date format
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}
