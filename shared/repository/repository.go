package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/shared/constant"
	"agenda/shared/dto"
	"agenda/shared/logger"
)

var errRequiredFilter = errors.New("refusing to run an unfiltered write")

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository provides the filter-driven query surface shared by every domain
// repository. Column metadata is read once from the entity's db tags, so the
// generated SQL always selects and inserts the same set of columns the struct
// can scan.
type Repository[T any] struct {
	db     *postgres.Connection
	otel   otel.Otel
	table  string
	entity string
	pk     string

	selectList string
	insertStmt string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	cols := columnsOf(reflect.TypeOf(zero))

	qualified := make([]string, 0, len(cols))
	placeholders := make([]string, 0, len(cols))

	for _, col := range cols {
		qualified = append(qualified, tableName+"."+col)
		placeholders = append(placeholders, ":"+col)
	}

	return Repository[T]{
		db:         dbConnection,
		otel:       otl,
		table:      tableName,
		entity:     entityName,
		pk:         primaryColumn,
		selectList: strings.Join(qualified, ", "),
		insertStmt: fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s)",
			tableName, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
		),
	}
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, "Insert", model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, "InsertTx", model)
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, op string, model T) error {
	ctx, scope := repo.scope(ctx, op, repo.insertStmt)
	defer scope.End()

	if _, err := exec.NamedExecContext(ctx, repo.insertStmt, model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", repo.entity, err)
	}

	return nil
}

// Get fetches a single row; a miss returns the zero value and a nil error so
// callers decide whether absence is a failure.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	var model T

	where, args := whereOf(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.project(columns), repo.table, where)

	ctx, scope := repo.scope(ctx, "Get", query)
	defer scope.End()

	err := repo.queryRow(ctx, query, args, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get %s: %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := whereOf(filter)

	var clauses strings.Builder

	clauses.WriteString(where)

	if params.SortBy != "" && params.SortDir != "" {
		fmt.Fprintf(&clauses, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		clauses.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			clauses.WriteString(" OFFSET :offset")
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.project(columns), repo.table, clauses.String())

	ctx, scope := repo.scope(ctx, "GetAll", query)
	defer scope.End()

	var models []T

	if err := repo.querySelect(ctx, query, args, &models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list %s: %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := whereOf(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.pk, repo.table, where)

	ctx, scope := repo.scope(ctx, "Count", query)
	defer scope.End()

	var count int

	if err := repo.queryRow(ctx, query, args, &count); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %s: %w", repo.entity, err)
	}

	return count, nil
}

func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	where, args := whereOf(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(fields))
	for col := range maps.Keys(fields) {
		assignments = append(assignments, col+" = :"+col)
	}

	maps.Copy(args, fields)

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)

	ctx, scope := repo.scope(ctx, "Update", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update %s: %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	where, args := whereOf(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)

	ctx, scope := repo.scope(ctx, "Delete", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) scope(ctx context.Context, op, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return ctx, scope
}

func (repo *Repository[T]) queryRow(ctx context.Context, query string, args map[string]any, dest any) error {
	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) querySelect(ctx context.Context, query string, args map[string]any, dest any) error {
	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	return stmt.SelectContext(ctx, dest, args) //nolint:wrapcheck
}

// project narrows the select list to the requested columns, or returns the
// full tagged column set when none are named.
func (repo *Repository[T]) project(requested []string) string {
	if len(requested) == 0 {
		return repo.selectList
	}

	kept := []string{}

	for _, col := range strings.Split(repo.selectList, ", ") {
		name := col[strings.IndexByte(col, '.')+1:]
		if slices.Contains(requested, name) {
			kept = append(kept, col)
		}
	}

	return strings.Join(kept, ", ")
}

func whereOf(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func columnsOf(reflectType reflect.Type) []string {
	columns := []string{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}
