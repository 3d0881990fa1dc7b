package savedsearch

import (
	"context"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/search"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Store persists user saved searches. The postgres implementation is the
// production store; Memory backs tests and local development.
type Store interface {
	Create(ctx context.Context, saved search.SavedSearch) error
	Get(ctx context.Context, userID, id string) (search.SavedSearch, error)
	ListByUser(ctx context.Context, userID string) ([]search.SavedSearch, error)
	Delete(ctx context.Context, userID, id string) error
}

type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new saved search repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, saved search.SavedSearch) error {
	ctx, span := tracing.StartSpan(ctx, "SavedSearchRepository.Create")
	defer span.End()

	saved.CreatedTS = time.Now().UTC()
	saved.UpdatedTS = saved.CreatedTS

	row := FromSavedSearch(saved)
	ib := savedSearchStruct.InsertInto(savedSearchTable, row)

	sql, args := ib.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      saved.ID,
		"user_id": saved.UserID,
		"name":    saved.Name,
	}).Info("Creating saved search")

	_, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      saved.ID,
			"user_id": saved.UserID,
		}).Error("error creating saved search")
		return httperror.NewHTTPError(http.StatusInternalServerError, "error creating saved search")
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, userID, id string) (search.SavedSearch, error) {
	ctx, span := tracing.StartSpan(ctx, "SavedSearchRepository.Get")
	defer span.End()

	sb := savedSearchStruct.SelectFrom(savedSearchTable)
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("user_id", userID),
	)
	sb.Limit(1)

	sql, args := sb.Build()

	var row SavedSearchRow
	err := r.db.GetContext(ctx, &row, sql, args...)
	if err != nil {
		if err.Error() == "sql: no rows in result set" {
			r.logger.WithContext(ctx).WithFields(map[string]any{
				"id":      id,
				"user_id": userID,
			}).Warn("Saved search not found")
			return search.SavedSearch{}, httperror.NewHTTPError(http.StatusNotFound, "saved search not found")
		}

		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      id,
			"user_id": userID,
		}).Error("error getting saved search")
		return search.SavedSearch{}, httperror.NewHTTPError(http.StatusInternalServerError, "error getting saved search")
	}

	return ToSavedSearch(&row), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]search.SavedSearch, error) {
	ctx, span := tracing.StartSpan(ctx, "SavedSearchRepository.ListByUser")
	defer span.End()

	sb := savedSearchStruct.SelectFrom(savedSearchTable)
	sb.Where(
		sb.Equal("user_id", userID),
	)
	sb.OrderBy("created_at").Desc()

	sql, args := sb.Build()

	var rows []SavedSearchRow
	err := r.db.SelectContext(ctx, &rows, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"user_id": userID,
		}).Error("error listing saved searches")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "error listing saved searches")
	}

	searches := make([]search.SavedSearch, 0, len(rows))
	for i := range rows {
		searches = append(searches, ToSavedSearch(&rows[i]))
	}

	return searches, nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "SavedSearchRepository.Delete")
	defer span.End()

	delb := savedSearchStruct.DeleteFrom(savedSearchTable)
	delb.Where(
		delb.Equal("id", id),
		delb.Equal("user_id", userID),
	)

	sql, args := delb.Build()

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":      id,
		"user_id": userID,
	}).Info("Deleting saved search")

	result, err := r.db.ExecContext(ctx, sql, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"id":      id,
			"user_id": userID,
		}).Error("error deleting saved search")
		return httperror.NewHTTPError(http.StatusInternalServerError, "error deleting saved search")
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, "saved search not found")
	}

	return nil
}
