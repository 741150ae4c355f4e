package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const columnTypeDate = "DATE"

// Result is a materialized query result: column names plus every row as
// text, in the order the store returned them.
type Result struct {
	Columns []string
	Rows    [][]string
}

func (r Result) Len() int {
	return len(r.Rows)
}

func (r Result) Empty() bool {
	return len(r.Rows) == 0
}

// Value returns the cell at row, col or an empty string when out of range.
func (r Result) Value(row, col int) string {
	if row < 0 || row >= len(r.Rows) || col < 0 || col >= len(r.Rows[row]) {
		return constant.Empty
	}

	return r.Rows[row][col]
}

// Executor runs one statement at a time against the store. Every statement
// takes bound arguments; nothing is ever spliced into the SQL text.
type Executor interface {
	// ExecuteUpdate applies a mutation.
	ExecuteUpdate(ctx context.Context, query string, args ...any) error
	// ExecuteQuery returns only the number of rows the query produced.
	ExecuteQuery(ctx context.Context, query string, args ...any) (int, error)
	ExecuteQueryAndReturnResult(ctx context.Context, query string, args ...any) (Result, error)
	// WithTx runs fn against an executor bound to one transaction, committing
	// when fn returns nil and rolling back otherwise. Nested calls reuse the
	// outer transaction.
	WithTx(ctx context.Context, fn func(exec Executor) error) error
	Rebind(query string) string
}

type executorImpl struct {
	db   *sqlx.DB
	ext  sqlx.ExtContext
	otel otel.Otel
}

func NewExecutor(db *sqlx.DB, otl otel.Otel) Executor {
	return &executorImpl{
		db:   db,
		ext:  db,
		otel: otl,
	}
}

func (e *executorImpl) ExecuteUpdate(ctx context.Context, query string, args ...any) (err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExecutorScopeName, constant.OtelExecutorScopeName+".ExecuteUpdate")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	log.Debug().Str("query", query).Interface("args", args).Msg("execute update")

	_, err = e.ext.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to execute update: %w", err)
	}

	return nil
}

func (e *executorImpl) ExecuteQuery(ctx context.Context, query string, args ...any) (int, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExecutorScopeName, constant.OtelExecutorScopeName+".ExecuteQuery")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	log.Debug().Str("query", query).Interface("args", args).Msg("execute query")

	rows, err := e.ext.QueryxContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}

	if err = rows.Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read query rows: %w", err)
	}

	return count, nil
}

func (e *executorImpl) ExecuteQueryAndReturnResult(ctx context.Context, query string, args ...any) (Result, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelExecutorScopeName, constant.OtelExecutorScopeName+".ExecuteQueryAndReturnResult")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	log.Debug().Str("query", query).Interface("args", args).Msg("execute query and return result")

	res := Result{Rows: [][]string{}}

	rows, err := e.ext.QueryxContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	res.Columns, err = rows.Columns()
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to read columns: %w", err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to read column types: %w", err)
	}

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return res, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]string, len(values))
		for idx, value := range values {
			row[idx] = stringify(value, types[idx].DatabaseTypeName())
		}

		res.Rows = append(res.Rows, row)
	}

	if err = rows.Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to read query rows: %w", err)
	}

	scope.SetAttribute("rows", res.Len())

	return res, nil
}

func (e *executorImpl) WithTx(ctx context.Context, fn func(exec Executor) error) (err error) {
	if e.db == nil {
		return fn(e)
	}

	ctx, scope := e.otel.NewScope(ctx, constant.OtelExecutorScopeName, constant.OtelExecutorScopeName+".WithTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	err = fn(&executorImpl{ext: tx, otel: e.otel})
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (e *executorImpl) Rebind(query string) string {
	return e.ext.Rebind(query)
}

// stringify renders one column value the way it is shown on the console.
func stringify(value any, dbType string) string {
	switch val := value.(type) {
	case nil:
		return constant.Empty
	case []byte:
		return strings.TrimRight(string(val), " ")
	case string:
		return strings.TrimRight(val, " ")
	case time.Time:
		return formatTime(val, dbType)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatTime prints DATE columns as yyyy-mm-dd and other time columns with
// their time part. When the driver reports no column type, a value at
// midnight counts as a date.
func formatTime(val time.Time, dbType string) string {
	midnight := val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0

	switch {
	case dbType == columnTypeDate:
		return val.Format(constant.DateSQLLayout)
	case dbType != constant.Empty:
		return val.Format(constant.TimestampLayout)
	case midnight:
		return val.Format(constant.DateSQLLayout)
	default:
		return val.Format(constant.TimestampLayout)
	}
}
