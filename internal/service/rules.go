package service

import (
	"context"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/retrier"
	"github.com/MKhiriev/sterling-client/models"
)

type rulesService struct {
	adapter adapter.ServerAdapter
	reads   retrier.Policy
	logger  *logger.Logger
}

func NewRulesService(serverAdapter adapter.ServerAdapter, reads retrier.Policy, log *logger.Logger) RulesService {
	return &rulesService{adapter: serverAdapter, reads: reads, logger: log}
}

func (r *rulesService) Rules(ctx context.Context) ([]models.Rule, error) {
	rules, err := retrier.Value(ctx, r.reads, r.adapter.Rules)
	if err != nil {
		r.logger.Err(err).Str("func", "*rulesService.Rules").Msg("error fetching rules")
		return []models.Rule{}, err
	}
	return nonNil(rules), nil
}

func (r *rulesService) ReservationFees(ctx context.Context, reservationID int64) ([]models.Fee, error) {
	if err := validateID(reservationID); err != nil {
		return []models.Fee{}, err
	}

	fees, err := retrier.Value(ctx, r.reads, func(ctx context.Context) ([]models.Fee, error) {
		return r.adapter.ReservationFees(ctx, reservationID)
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*rulesService.ReservationFees").Int64("reservation_id", reservationID).Msg("error fetching fees")
		return []models.Fee{}, err
	}
	return nonNil(fees), nil
}

func (r *rulesService) TotalFees(ctx context.Context, reservationID int64) (float64, error) {
	fees, err := r.ReservationFees(ctx, reservationID)
	if err != nil {
		return 0, err
	}
	return models.TotalFees(fees), nil
}
