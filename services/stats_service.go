package services

import (
	"context"
	"fmt"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// CarStats counts cars by status straight from PostgreSQL.
func CarStats(ctx context.Context) (models.CarStatsResponse, error) {
	var s models.CarStatsResponse
	err := config.DB.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Available'),
			COUNT(*) FILTER (WHERE status = 'Reserved'),
			COUNT(*) FILTER (WHERE status = 'Sold'),
			COUNT(*) FILTER (WHERE status = 'Draft'),
			COUNT(*) FILTER (WHERE featured),
			COALESCE(AVG(price) FILTER (WHERE status = 'Available'), 0)::float8,
			COALESCE(SUM(views), 0)::bigint,
			COUNT(*) FILTER (WHERE jsonb_array_length(images) = 0)
		FROM cars
	`).Scan(
		&s.TotalCars,
		&s.AvailableCars,
		&s.ReservedCars,
		&s.SoldCars,
		&s.DraftCars,
		&s.FeaturedCars,
		&s.AveragePrice,
		&s.TotalViews,
		&s.CarsWithoutImages,
	)
	if err != nil {
		return s, fmt.Errorf("car stats: %w", err)
	}
	if s.TotalCars > 0 {
		s.PercentageSold = float64(s.SoldCars) / float64(s.TotalCars) * 100
	}
	return s, nil
}

// MessageStats counts leads by follow-up status.
func MessageStats(ctx context.Context) (models.MessageStatsResponse, error) {
	var s models.MessageStatsResponse
	err := config.DB.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'read'),
			COUNT(*) FILTER (WHERE status = 'replied'),
			COUNT(*) FILTER (WHERE status = 'archived'),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		FROM contact_messages
	`).Scan(&s.Total, &s.New, &s.Read, &s.Replied, &s.Archived, &s.LastSevenDays)
	if err != nil {
		return s, fmt.Errorf("message stats: %w", err)
	}
	return s, nil
}

// TopViewedCars returns the most viewed cars of any status.
func TopViewedCars(ctx context.Context, limit int) ([]models.TopViewedCar, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT id::text, brand || ' ' || model || ' ' || year::text, price::float8, views
		FROM cars
		ORDER BY views DESC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top viewed cars: %w", err)
	}
	defer rows.Close()

	out := make([]models.TopViewedCar, 0, limit)
	for rows.Next() {
		var t models.TopViewedCar
		if err := rows.Scan(&t.ID, &t.Title, &t.Price, &t.Views); err != nil {
			return nil, fmt.Errorf("scan top viewed car: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
