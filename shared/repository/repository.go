package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
	errEmptyUpdate    = errors.New("nothing to update")
)

// Repository holds the statements every table shares. Columns come from the
// `db` tags of T; fields tagged `insert:"-"` (serial keys) are left out of
// inserts.
type Repository[T any] struct {
	exec          Executor
	otel          otel.Otel
	table         string
	entity        string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName string, exec Executor, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		exec:          exec,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		InsertColumns: getInsertColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) Executor() Executor {
	return repo.exec
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.InsertWith(ctx, repo.exec, model)
}

// InsertWith inserts model through exec, which may be bound to a transaction.
func (repo *Repository[T]) InsertWith(ctx context.Context, exec Executor, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	named, args, err := sqlx.Named(query, model)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to bind insert (%s): %w", repo.entity, err)
	}

	if err = exec.ExecuteUpdate(ctx, exec.Rebind(named), args...); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

// Exist runs an existence check: true when at least one row matches filter.
func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query, bound, err := repo.bind(fmt.Sprintf("SELECT 1 FROM %s%s", repo.table, where), args)
	if err != nil {
		scope.TraceError(err)

		return false, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	count, err := repo.exec.ExecuteQuery(ctx, query, bound...)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return count > 0, nil
}

// Find selects columns (all insert columns when none are given) of the rows
// matching filter; suffix is appended verbatim, e.g. "ORDER BY roomNumber".
func (repo *Repository[T]) Find(ctx context.Context, filter dto.FilterGroup, suffix string, columns ...string) (Result, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Find", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	if len(columns) == 0 {
		columns = repo.InsertColumns
	}

	where, args := repo.BuildWhereClause(filter)

	query, bound, err := repo.bind(strings.TrimSpace(fmt.Sprintf("SELECT %s FROM %s%s %s", strings.Join(columns, ", "), repo.table, where, suffix)), args)
	if err != nil {
		scope.TraceError(err)

		return Result{}, err
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res, err := repo.exec.ExecuteQueryAndReturnResult(ctx, query, bound...)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to find data (%s): %w", repo.entity, err)
	}

	return res, nil
}

// UpdateWith sets the columns of mod on the rows matching filter. Columns are
// written in sorted order so the statement text is stable.
func (repo *Repository[T]) UpdateWith(ctx context.Context, exec Executor, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	if len(mod) == 0 {
		return errEmptyUpdate
	}

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	updateField := []string{}
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, mod)

	named, bound, err := sqlx.Named(fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(updateField, ", "), where), args)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to bind update (%s): %w", repo.entity, err)
	}

	query := exec.Rebind(named)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = exec.ExecuteUpdate(ctx, query, bound...); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

func (repo *Repository[T]) bind(query string, args map[string]any) (string, []any, error) {
	named, bound, err := sqlx.Named(query, args)
	if err != nil {
		return "", nil, fmt.Errorf("failed to bind query (%s): %w", repo.entity, err)
	}

	return repo.exec.Rebind(named), bound, nil
}

func getInsertColumns(reflectType reflect.Type) (insertColumns []string) {
	if reflectType == nil || reflectType.Kind() != reflect.Struct {
		return nil
	}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			insertColumns = append(insertColumns, getInsertColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" || field.Tag.Get("insert") == "-" {
			continue
		}

		insertColumns = append(insertColumns, dbTag)
	}

	return insertColumns
}
