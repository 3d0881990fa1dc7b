package savedsearch

import (
	"database/sql"
	"time"

	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/search"
)

func FromSavedSearch(saved search.SavedSearch) *SavedSearchRow {
	return &SavedSearchRow{
		ID:        sql.NullString{String: saved.ID, Valid: saved.ID != ""},
		UserID:    sql.NullString{String: saved.UserID, Valid: saved.UserID != ""},
		Name:      sql.NullString{String: saved.Name, Valid: saved.Name != ""},
		Query:     database.JSONB[search.Query]{Data: saved.Query},
		CreatedTS: sql.NullTime{Time: saved.CreatedTS, Valid: saved.CreatedTS != time.Time{}},
		UpdatedTS: sql.NullTime{Time: saved.UpdatedTS, Valid: saved.UpdatedTS != time.Time{}},
	}
}

type SavedSearchRow struct {
	ID        sql.NullString               `db:"id"`
	UserID    sql.NullString               `db:"user_id"`
	Name      sql.NullString               `db:"name"`
	Query     database.JSONB[search.Query] `db:"query"`
	CreatedTS sql.NullTime                 `db:"created_at"`
	UpdatedTS sql.NullTime                 `db:"updated_at"`
}

const (
	savedSearchTable = "saved_searches"
)

var savedSearchStruct = database.NewStruct(new(SavedSearchRow))

func ToSavedSearch(row *SavedSearchRow) search.SavedSearch {
	return search.SavedSearch{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Name:      row.Name.String,
		Query:     row.Query.Data,
		CreatedTS: row.CreatedTS.Time,
		UpdatedTS: row.UpdatedTS.Time,
	}
}
