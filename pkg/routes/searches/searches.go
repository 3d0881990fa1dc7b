package searches

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/internal/repositories/savedsearch"
	"github.com/Ramsey-B/fern/pkg/appcontext"
	"github.com/Ramsey-B/fern/pkg/search"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/utils"
)

type CreateSearchRequest struct {
	Name  string       `json:"name" validate:"required"`
	Query search.Query `json:"query" validate:"required"`
}

func CreateSearch(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "searches.CreateSearch")
	defer span.End()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user id is required")
	}

	req, err := utils.BindRequest[CreateSearchRequest](c)
	if err != nil {
		return err
	}

	saved := search.SavedSearch{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   req.Name,
		Query:  req.Query,
	}

	ctx, store, err := ectoinject.GetContext[savedsearch.Store](ctx)
	if err != nil {
		return err
	}

	if err := store.Create(ctx, saved); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, saved)
}

func ListSearches(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "searches.ListSearches")
	defer span.End()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user id is required")
	}

	ctx, store, err := ectoinject.GetContext[savedsearch.Store](ctx)
	if err != nil {
		return err
	}

	searches, err := store.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searches)
}

func GetSearch(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "searches.GetSearch")
	defer span.End()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user id is required")
	}

	ctx, store, err := ectoinject.GetContext[savedsearch.Store](ctx)
	if err != nil {
		return err
	}

	saved, err := store.Get(ctx, userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, saved)
}

func DeleteSearch(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "searches.DeleteSearch")
	defer span.End()

	userID := appcontext.GetUserID(ctx)
	if userID == "" {
		return httperror.NewHTTPError(http.StatusUnauthorized, "user id is required")
	}

	ctx, store, err := ectoinject.GetContext[savedsearch.Store](ctx)
	if err != nil {
		return err
	}

	if err := store.Delete(ctx, userID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
