package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder построитель запросов с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
