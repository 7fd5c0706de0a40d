package v1

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// nameFilters applies substring matching for the name parameter and a
// search over name and contact name. Setting name to the empty string
// filters for unnamed records.
func nameFilters(db, query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("contact_name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
