package boosttier

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/pkg/boost"
	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

type BoostTierRepository interface {
	Upsert(ctx context.Context, tier boost.Tier) error
	GetTier(ctx context.Context, id string) (boost.Tier, error)
	ListTiers(ctx context.Context) ([]boost.Tier, error)
}

type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new boost tier repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Upsert(ctx context.Context, tier boost.Tier) error {
	ctx, span := tracing.StartSpan(ctx, "BoostTierRepository.Upsert")
	defer span.End()

	row := FromTier(tier)
	row.CreatedTS = now()

	ib := boostTierStruct.InsertInto(boostTierTable, row)
	ub := ib.OnConflict("id")
	ub.Set(
		ub.Assign("name", database.Excluded("name")),
		ub.Assign("payout_token_boost_multiplier", database.Excluded("payout_token_boost_multiplier")),
		ub.Assign("platform_token_boost_multiplier", database.Excluded("platform_token_boost_multiplier")),
		ub.Assign("payout_token_split_percentage", database.Excluded("payout_token_split_percentage")),
		ub.Assign("platform_token_split_percentage", database.Excluded("platform_token_split_percentage")),
		ub.Assign("updated_at", time.Now().UTC()),
	)

	sql, args := ib.Build()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":   tier.ID,
		"name": tier.Name,
	}).Info("Upserting boost tier")
	_, err = tx.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":   tier.ID,
			"name": tier.Name,
		}).Error("error upserting boost tier")
		return httperror.NewHTTPError(http.StatusInternalServerError, "error upserting boost tier")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTier(ctx context.Context, id string) (boost.Tier, error) {
	ctx, span := tracing.StartSpan(ctx, "BoostTierRepository.GetTier")
	defer span.End()

	sb := boostTierStruct.SelectFrom(boostTierTable)
	sb.Where(
		sb.Equal("id", id),
	)
	sb.Limit(1)

	sql, args := sb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id": id,
	}).Info("Getting boost tier")

	var row BoostTierRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			r.logger.WithContext(ctx).WithFields(map[string]any{
				"id": id,
			}).Warn("Boost tier not found")
			return boost.Tier{}, httperror.NewHTTPError(http.StatusNotFound, "boost tier not found")
		}

		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id": id,
		}).Error("error getting boost tier")
		return boost.Tier{}, httperror.NewHTTPError(http.StatusInternalServerError, "error getting boost tier")
	}

	return ToTier(&row), nil
}

func (r *Repository) ListTiers(ctx context.Context) ([]boost.Tier, error) {
	ctx, span := tracing.StartSpan(ctx, "BoostTierRepository.ListTiers")
	defer span.End()

	sb := boostTierStruct.SelectFrom(boostTierTable)
	sb.OrderBy("name").Asc()

	sql, args := sb.Build()

	r.logger.WithContext(ctx).Info("Listing boost tiers")

	var rows []BoostTierRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("error listing boost tiers")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "error listing boost tiers")
	}

	tiers := make([]boost.Tier, 0, len(rows))
	for i := range rows {
		tiers = append(tiers, ToTier(&rows[i]))
	}

	return tiers, nil
}
