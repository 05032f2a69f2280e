package form

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownQuickAmount = errors.New("unknown quick amount")

// QuickAmounts are the preset donation buttons, in VND.
var QuickAmounts = []int64{50000, 100000, 200000, 500000, 1000000, 2000000}

// DonationDraft is the amount state of a donation form between requests.
type DonationDraft struct {
	Amount              string `json:"amount"`
	SelectedQuickAmount *int64 `json:"selected_quick_amount,omitempty"`
}

// SelectQuickAmount sets the amount to exactly v and marks v selected.
func (d *DonationDraft) SelectQuickAmount(v int64) error {
	for _, q := range QuickAmounts {
		if q == v {
			d.Amount = decimal.NewFromInt(v).String()
			selected := v
			d.SelectedQuickAmount = &selected
			return nil
		}
	}
	return ErrUnknownQuickAmount
}

// EditAmount records a free-form amount and clears any quick selection.
func (d *DonationDraft) EditAmount(raw string) {
	d.Amount = raw
	d.SelectedQuickAmount = nil
}

func (d DonationDraft) IsSelected(v int64) bool {
	return d.SelectedQuickAmount != nil && *d.SelectedQuickAmount == v
}
