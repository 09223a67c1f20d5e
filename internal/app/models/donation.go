package models

import "time"

// DonationFund identifies which ministry fund a gift supports
type DonationFund string

const (
	FundGeneral     DonationFund = "general"
	FundStudentFund DonationFund = "student_fund"
	FundOutreach    DonationFund = "outreach"
)

// Donation records a giving intent. Amounts are kept in cents to avoid
// floating point rounding on money.
type Donation struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	AmountCents int64        `json:"amountCents" example:"2500"`
	Fund        DonationFund `json:"fund" example:"general"`
	Reference   string       `json:"reference" example:"LOC-3F2A9C"`
	CreatedAt   time.Time    `json:"createdAt"`
}
