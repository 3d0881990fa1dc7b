package boosttiers

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/boost"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// BoostTierService is the snapshot-backed tier service the routes resolve
// from the container.
type BoostTierService interface {
	ListTiers() []boost.Tier
	GetTier(id string) *boost.Tier
	Upsert(ctx context.Context, tier boost.Tier) error
}

type UpsertTierRequest struct {
	Name                         string  `json:"name" validate:"required"`
	PayoutTokenBoostMultiplier   float64 `json:"payout_token_boost_multiplier" validate:"gte=1"`
	PlatformTokenBoostMultiplier float64 `json:"platform_token_boost_multiplier" validate:"gte=1"`
	PayoutTokenSplitPercentage   float64 `json:"payout_token_split_percentage" validate:"gt=0,lte=1"`
	PlatformTokenSplitPercentage float64 `json:"platform_token_split_percentage" validate:"gt=0,lte=1"`
}

func ListTiers(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "boosttiers.ListTiers")
	defer span.End()

	_, service, err := ectoinject.GetContext[BoostTierService](ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, service.ListTiers())
}

func GetTier(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "boosttiers.GetTier")
	defer span.End()

	id := c.Param("id")

	_, service, err := ectoinject.GetContext[BoostTierService](ctx)
	if err != nil {
		return err
	}

	tier := service.GetTier(id)
	if tier == nil {
		return httperror.NewHTTPError(http.StatusNotFound, "boost tier not found")
	}

	return c.JSON(http.StatusOK, tier)
}

func UpsertTier(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "boosttiers.UpsertTier")
	defer span.End()

	req, err := utils.BindRequest[UpsertTierRequest](c)
	if err != nil {
		return err
	}

	tier := boost.Tier{
		ID:                           c.Param("id"),
		Name:                         req.Name,
		PayoutTokenBoostMultiplier:   req.PayoutTokenBoostMultiplier,
		PlatformTokenBoostMultiplier: req.PlatformTokenBoostMultiplier,
		PayoutTokenSplitPercentage:   req.PayoutTokenSplitPercentage,
		PlatformTokenSplitPercentage: req.PlatformTokenSplitPercentage,
	}
	if tier.ID == "" {
		return httperror.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	ctx, service, err := ectoinject.GetContext[BoostTierService](ctx)
	if err != nil {
		return err
	}

	if err := service.Upsert(ctx, tier); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tier)
}
