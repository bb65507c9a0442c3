package loan

import "errors"

// DefaultDailyRate is the fixed daily interest rate applied when the
// borrower does not negotiate one.
const DefaultDailyRate = 0.005

var ErrInvalidTerm = errors.New("loan term must be greater than 0")

// Loan is a fixed-schedule credit: simple daily interest over the full
// term, repaid in equal daily installments.
type Loan struct {
	ID             int     `json:"id"`
	Principal      float64 `json:"principal"`
	TermDays       int     `json:"term_days"`
	DailyRate      float64 `json:"daily_rate"`
	DailyRepayment float64 `json:"daily_repayment"`
	DaysLeft       int     `json:"days_left"`
}

// New derives the repayment schedule:
// dailyRepayment = (principal + principal*rate*term) / term.
func New(principal float64, termDays int, rate float64) (Loan, error) {
	if termDays <= 0 {
		return Loan{}, ErrInvalidTerm
	}
	total := principal + principal*rate*float64(termDays)
	return Loan{
		Principal:      principal,
		TermDays:       termDays,
		DailyRate:      rate,
		DailyRepayment: total / float64(termDays),
		DaysLeft:       termDays,
	}, nil
}

// RemainingDebt is what is still owed on the fixed schedule.
func (l Loan) RemainingDebt() float64 {
	return l.DailyRepayment * float64(l.DaysLeft)
}
