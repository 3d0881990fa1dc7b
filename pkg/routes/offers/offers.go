package offers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/services/offer"
	"github.com/Ramsey-B/fern/pkg/boost"
	"github.com/Ramsey-B/fern/pkg/search"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

// OfferService is the service surface the offer routes resolve from the
// container.
type OfferService interface {
	List(ctx context.Context, query search.Query) (offer.Page, error)
	Breakdown(ctx context.Context, req offer.BreakdownRequest) (boost.Breakdown, error)
}

func ListOffers(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "offers.ListOffers")
	defer span.End()

	query := search.Query{
		Term:    c.QueryParam("query"),
		Filters: c.QueryParam("filters"),
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be a non-negative integer")
		}
		query.Page = page
	}
	if raw := c.QueryParam("hitsPerPage"); raw != "" {
		hits, err := strconv.Atoi(raw)
		if err != nil || hits < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "hitsPerPage must be a positive integer")
		}
		query.HitsPerPage = hits
	}

	ctx, service, err := ectoinject.GetContext[OfferService](ctx)
	if err != nil {
		return err
	}

	page, err := service.List(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

func BreakdownOffer(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "offers.BreakdownOffer")
	defer span.End()

	req, err := utils.BindRequest[offer.BreakdownRequest](c)
	if err != nil {
		return err
	}

	ctx, service, err := ectoinject.GetContext[OfferService](ctx)
	if err != nil {
		return err
	}

	breakdown, err := service.Breakdown(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, breakdown)
}
