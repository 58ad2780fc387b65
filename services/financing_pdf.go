package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/jsabonet/milagre-car-site-sub000/financing"
)

// FinancingQuote is everything printed on a financing quote.
type FinancingQuote struct {
	Result       financing.Result
	CarTitle     string
	CustomerName string
	IssuedAt     time.Time
}

// GenerateFinancingQuotePDF renders a simulation with its full amortization
// schedule.
func GenerateFinancingQuotePDF(q FinancingQuote) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	heading := props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right}
	cell := props.Text{Size: 8, Color: darkGray, Align: consts.Right}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("FINANCING QUOTE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("MILAGRE CAR", props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			if q.CarTitle != "" {
				m.Text(q.CarTitle, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
			}
		})
		m.Col(6, func() {
			m.Text("Issued: "+q.IssuedAt.Format("Jan 02, 2006"), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})

	if q.CustomerName != "" {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text("Prepared for "+q.CustomerName, props.Text{Size: 9, Color: mediumGray})
			})
		})
	}

	m.Row(8, func() {})

	r := q.Result
	summary := []struct {
		label string
		value string
	}{
		{"Vehicle price", money(r.Price)},
		{"Down payment", money(r.DownPayment)},
		{"Amount financed", money(r.Principal)},
		{"Annual rate", fmt.Sprintf("%.2f%%", r.AnnualRate)},
		{"Term", fmt.Sprintf("%d months", r.Months)},
		{"Monthly payment", money(r.MonthlyPayment)},
		{"Total interest", money(r.TotalInterest)},
		{"Total paid", money(r.TotalPaid)},
	}
	for _, line := range summary {
		m.Row(5, func() {
			m.Col(8, func() {
				m.Text(line.label, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(4, func() {
				m.Text(line.value, props.Text{Size: 9, Style: consts.Bold, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	// Schedule
	m.Row(6, func() {
		m.Col(2, func() { m.Text("#", heading) })
		m.Col(2, func() { m.Text("Payment", heading) })
		m.Col(3, func() { m.Text("Principal", heading) })
		m.Col(2, func() { m.Text("Interest", heading) })
		m.Col(3, func() { m.Text("Balance", heading) })
	})
	for _, inst := range r.Schedule {
		m.Row(5, func() {
			m.Col(2, func() { m.Text(fmt.Sprintf("%d", inst.Number), cell) })
			m.Col(2, func() { m.Text(money(inst.Payment), cell) })
			m.Col(3, func() { m.Text(money(inst.Principal), cell) })
			m.Col(2, func() { m.Text(money(inst.Interest), cell) })
			m.Col(3, func() { m.Text(money(inst.Balance), cell) })
		})
	}

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Simulation only. Final terms depend on credit approval.", props.Text{Size: 8, Color: mediumGray})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render financing quote: %w", err)
	}
	return &buf, nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
