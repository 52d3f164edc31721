package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PostcodeRepository reads raw postcode strings from a configurable
// table and column. Both names are checked against identifierPattern before
// they reach SQL.
type PostcodeRepository struct {
	db     *gorm.DB
	table  string
	column string
}

func NewPostcodeRepository(db *gorm.DB, table, column string) (*PostcodeRepository, error) {
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if !identifierPattern.MatchString(column) {
		return nil, fmt.Errorf("invalid column name %q", column)
	}
	return &PostcodeRepository{db: db, table: table, column: column}, nil
}

func (r *PostcodeRepository) Name() string {
	return fmt.Sprintf("db:%s.%s", r.table, r.column)
}

// EachRaw streams the column in table order. NULL values are passed as nil.
func (r *PostcodeRepository) EachRaw(ctx context.Context, fn func(value *string) error) error {
	rows, err := r.db.WithContext(ctx).
		Table(r.table).
		Select(r.column).
		Rows()
	if err != nil {
		return fmt.Errorf("query %s: %w", r.Name(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return fmt.Errorf("scan %s: %w", r.Name(), err)
		}
		var ptr *string
		if value.Valid {
			ptr = &value.String
		}
		if err := fn(ptr); err != nil {
			return err
		}
	}
	return rows.Err()
}
