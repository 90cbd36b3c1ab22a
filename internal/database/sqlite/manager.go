// Package sqlite is the small raw-SQL helper behind the command-line tool.
// Tables and columns are addressed by name, rows as generic records, and every
// filter is an equality match joined with AND.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	_ "modernc.org/sqlite"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrNoCriteria        = errors.New("criteria must not be empty")
	ErrNoData            = errors.New("data must not be empty")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Column is a name plus its raw SQLite type/constraint clause.
type Column struct {
	Name       string
	Definition string
}

// Record is one selected row keyed by column name. TEXT columns come back as
// string, INTEGER as int64 and NULL as nil.
type Record map[string]any

// Manager owns a single SQLite database file.
type Manager struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Manager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// one writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// CreateTable creates table with the given columns if it does not exist yet.
func (m *Manager) CreateTable(ctx context.Context, table string, columns []Column) error {
	if err := checkIdent(table); err != nil {
		return err
	}
	defs := make([]string, 0, len(columns))
	for _, c := range columns {
		if err := checkIdent(c.Name); err != nil {
			return err
		}
		defs = append(defs, c.Name+" "+c.Definition)
	}
	q := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
	_, err := m.db.ExecContext(ctx, q)
	return err
}

// Add inserts one row and returns its rowid.
func (m *Manager) Add(ctx context.Context, table string, data map[string]any) (int64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}
	cols, args, err := columnsAndArgs(table, data)
	if err != nil {
		return 0, err
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), placeholders)

	res, err := m.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Select returns rows matching criteria (all rows when criteria is empty),
// ordered by orderBy when it is set.
func (m *Manager) Select(ctx context.Context, table string, criteria map[string]any, orderBy string) ([]Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	where, args, err := whereClause(criteria)
	if err != nil {
		return nil, err
	}
	q := "SELECT * FROM " + table + where
	if orderBy != "" {
		if err := checkIdent(orderBy); err != nil {
			return nil, err
		}
		q += " ORDER BY " + orderBy
	}

	rows, err := m.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(Record, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				rec[c] = string(b)
				continue
			}
			rec[c] = vals[i]
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes rows matching criteria and reports how many went away.
func (m *Manager) Delete(ctx context.Context, table string, criteria map[string]any) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, err
	}
	if len(criteria) == 0 {
		return 0, ErrNoCriteria
	}
	where, args, err := whereClause(criteria)
	if err != nil {
		return 0, err
	}
	res, err := m.db.ExecContext(ctx, "DELETE FROM "+table+where, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Update sets data on rows matching criteria and reports how many matched.
func (m *Manager) Update(ctx context.Context, table string, criteria, data map[string]any) (int64, error) {
	if len(criteria) == 0 {
		return 0, ErrNoCriteria
	}
	if len(data) == 0 {
		return 0, ErrNoData
	}
	cols, setArgs, err := columnsAndArgs(table, data)
	if err != nil {
		return 0, err
	}
	where, whereArgs, err := whereClause(criteria)
	if err != nil {
		return 0, err
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + " = ?"
	}
	q := fmt.Sprintf("UPDATE %s SET %s%s", table, strings.Join(sets, ", "), where)

	res, err := m.db.ExecContext(ctx, q, append(setArgs, whereArgs...)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func columnsAndArgs(table string, data map[string]any) ([]string, []any, error) {
	if err := checkIdent(table); err != nil {
		return nil, nil, err
	}
	cols := slices.Sorted(maps.Keys(data))
	args := make([]any, len(cols))
	for i, c := range cols {
		if err := checkIdent(c); err != nil {
			return nil, nil, err
		}
		args[i] = data[c]
	}
	return cols, args, nil
}

func whereClause(criteria map[string]any) (string, []any, error) {
	if len(criteria) == 0 {
		return "", nil, nil
	}
	keys := slices.Sorted(maps.Keys(criteria))
	conds := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		if err := checkIdent(k); err != nil {
			return "", nil, err
		}
		conds[i] = k + " = ?"
		args[i] = criteria[k]
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func checkIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}
