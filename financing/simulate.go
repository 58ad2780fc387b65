// Package financing computes fixed-rate loan simulations for the
// storefront's financing calculator.
package financing

import (
	"errors"
	"fmt"
	"math"
)

// MaxMonths is the longest term the dealership offers.
const MaxMonths = 120

// ErrInvalidTerm is returned for any request that cannot be simulated.
var ErrInvalidTerm = errors.New("invalid financing terms")

// Request describes a loan. AnnualRate is a percentage (e.g. 18.5).
type Request struct {
	Price       float64 `json:"price" binding:"required"`
	DownPayment float64 `json:"down_payment"`
	AnnualRate  float64 `json:"annual_rate"`
	Months      int     `json:"months" binding:"required"`
}

// Installment is one row of the amortization schedule.
type Installment struct {
	Number    int     `json:"number"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// Result is a complete simulation.
type Result struct {
	Request
	Principal      float64       `json:"principal"`
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalPaid      float64       `json:"total_paid"`
	TotalInterest  float64       `json:"total_interest"`
	Schedule       []Installment `json:"schedule"`
}

// Validate reports the first problem with r, wrapped around ErrInvalidTerm.
func (r Request) Validate() error {
	switch {
	case r.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidTerm)
	case r.DownPayment < 0:
		return fmt.Errorf("%w: down payment cannot be negative", ErrInvalidTerm)
	case r.DownPayment >= r.Price:
		return fmt.Errorf("%w: down payment must be below the price", ErrInvalidTerm)
	case r.Months < 1 || r.Months > MaxMonths:
		return fmt.Errorf("%w: months must be between 1 and %d", ErrInvalidTerm, MaxMonths)
	case r.AnnualRate < 0:
		return fmt.Errorf("%w: rate cannot be negative", ErrInvalidTerm)
	}
	return nil
}

// Simulate amortizes the financed amount over r.Months equal payments.
// Amounts are rounded to cents; the last installment absorbs the rounding
// so the balance always ends at exactly zero. No row pays more principal
// than is still owed.
func Simulate(r Request) (Result, error) {
	if err := r.Validate(); err != nil {
		return Result{}, err
	}

	principal := round2(r.Price - r.DownPayment)
	rate := r.AnnualRate / 12 / 100
	n := float64(r.Months)

	payment := principal / n
	if rate > 0 {
		payment = principal * rate / (1 - math.Pow(1+rate, -n))
	}
	payment = round2(payment)

	res := Result{
		Request:        r,
		Principal:      principal,
		MonthlyPayment: payment,
		Schedule:       make([]Installment, 0, r.Months),
	}

	balance := principal
	for i := 1; i <= r.Months; i++ {
		interest := round2(balance * rate)
		toPrincipal := min(round2(payment-interest), balance)
		if i == r.Months {
			toPrincipal = balance
		}
		pay := round2(toPrincipal + interest)
		balance = round2(balance - toPrincipal)

		res.Schedule = append(res.Schedule, Installment{
			Number:    i,
			Payment:   pay,
			Principal: toPrincipal,
			Interest:  interest,
			Balance:   balance,
		})
		res.TotalPaid += pay
		res.TotalInterest += interest
	}

	res.TotalPaid = round2(res.TotalPaid)
	res.TotalInterest = round2(res.TotalInterest)
	return res, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
