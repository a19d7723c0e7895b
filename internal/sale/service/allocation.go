package service

import "github.com/vinhnt21/smartmart/internal/domain"

type allocationStep struct {
	DisplayID int
	CounterID int
	Amount    int
	Remaining int
}

// planAllocation spreads a sold quantity across displays, fullest first.
// Largest-first keeps shelves visually stocked longer: it avoids draining
// one facing to zero while fuller ones sit untouched. The returned
// shortfall is whatever the displays could not cover.
func planAllocation(displays []domain.Display, quantity int) ([]allocationStep, int) {
	steps := make([]allocationStep, 0, len(displays))

	remaining := quantity
	for _, d := range displays {
		if remaining <= 0 {
			break
		}

		deduct := d.CurrentQuantity
		if deduct > remaining {
			deduct = remaining
		}
		if deduct == 0 {
			continue
		}

		steps = append(steps, allocationStep{
			DisplayID: d.ID,
			CounterID: d.CounterID,
			Amount:    deduct,
			Remaining: d.CurrentQuantity - deduct,
		})
		remaining -= deduct
	}

	return steps, remaining
}
