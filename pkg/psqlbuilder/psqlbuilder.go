package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами $1, $2, ... для PostgreSQL.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT builder с PostgreSQL плейсхолдерами.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT builder с PostgreSQL плейсхолдерами.
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update возвращает UPDATE builder с PostgreSQL плейсхолдерами.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE builder с PostgreSQL плейсхолдерами.
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
