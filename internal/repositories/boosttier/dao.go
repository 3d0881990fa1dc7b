package boosttier

import (
	"database/sql"
	"time"

	"github.com/Ramsey-B/fern/pkg/boost"
	"github.com/Ramsey-B/fern/pkg/database"
)

func FromTier(tier boost.Tier) *BoostTierRow {
	return &BoostTierRow{
		ID:                           sql.NullString{String: tier.ID, Valid: tier.ID != ""},
		Name:                         sql.NullString{String: tier.Name, Valid: tier.Name != ""},
		PayoutTokenBoostMultiplier:   sql.NullFloat64{Float64: tier.PayoutTokenBoostMultiplier, Valid: true},
		PlatformTokenBoostMultiplier: sql.NullFloat64{Float64: tier.PlatformTokenBoostMultiplier, Valid: true},
		PayoutTokenSplitPercentage:   sql.NullFloat64{Float64: tier.PayoutTokenSplitPercentage, Valid: true},
		PlatformTokenSplitPercentage: sql.NullFloat64{Float64: tier.PlatformTokenSplitPercentage, Valid: true},
	}
}

type BoostTierRow struct {
	ID                           sql.NullString  `db:"id"`
	Name                         sql.NullString  `db:"name"`
	PayoutTokenBoostMultiplier   sql.NullFloat64 `db:"payout_token_boost_multiplier"`
	PlatformTokenBoostMultiplier sql.NullFloat64 `db:"platform_token_boost_multiplier"`
	PayoutTokenSplitPercentage   sql.NullFloat64 `db:"payout_token_split_percentage"`
	PlatformTokenSplitPercentage sql.NullFloat64 `db:"platform_token_split_percentage"`
	CreatedTS                    sql.NullTime    `db:"created_at"`
	UpdatedTS                    sql.NullTime    `db:"updated_at"`
}

const (
	boostTierTable = "boost_tiers"
)

var boostTierStruct = database.NewStruct(new(BoostTierRow))

func ToTier(row *BoostTierRow) boost.Tier {
	return boost.Tier{
		ID:                           row.ID.String,
		Name:                         row.Name.String,
		PayoutTokenBoostMultiplier:   row.PayoutTokenBoostMultiplier.Float64,
		PlatformTokenBoostMultiplier: row.PlatformTokenBoostMultiplier.Float64,
		PayoutTokenSplitPercentage:   row.PayoutTokenSplitPercentage.Float64,
		PlatformTokenSplitPercentage: row.PlatformTokenSplitPercentage.Float64,
	}
}

func now() sql.NullTime {
	return sql.NullTime{Time: time.Now().UTC(), Valid: true}
}
