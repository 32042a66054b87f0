package persistence

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mobiledger/backend/internal/domain/shared"
)

// forUpdateClause returns a SELECT ... FOR UPDATE locking clause
func forUpdateClause() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// applyPagination applies page/size and ordering from the filter. The
// order column is validated against the caller's allow list; anything
// else falls back to the default to keep user input out of the ORDER BY.
func applyPagination(query *gorm.DB, filter shared.Filter, defaultOrder string, sortable ...string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	order := defaultOrder
	if filter.OrderBy != "" && contains(sortable, filter.OrderBy) {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		order = filter.OrderBy + " " + dir
	}
	if order != "" {
		query = query.Order(order)
	}
	return query
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
