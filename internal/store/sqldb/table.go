package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/grammatica/grammatica-server/internal/domain"
	"github.com/grammatica/grammatica-server/internal/store"
)

// Column maps a table column to a field of T. Field must return a pointer
// to the field so it can serve as both a scan destination and an argument.
type Column[T any] struct {
	Name  string
	Field func(*T) any
}

// col is shorthand for building a Column.
func col[T any](name string, field func(*T) any) Column[T] {
	return Column[T]{Name: name, Field: field}
}

// Table implements store.Repository[T] for one resource table. Besides the
// declared columns every table has id, created_at and updated_at.
type Table[T any, PT domain.Model[T]] struct {
	db      *sql.DB
	dialect dialect
	name    string
	columns []Column[T]
	known   map[string]bool

	selectList string
}

var _ store.Repository[domain.Book] = (*Table[domain.Book, *domain.Book])(nil)

func newTable[T any, PT domain.Model[T]](s *Store, name string, columns ...Column[T]) *Table[T, PT] {
	names := make([]string, 0, len(columns)+3)
	names = append(names, quote("id"), quote("created_at"), quote("updated_at"))

	known := map[string]bool{"id": true}
	for _, c := range columns {
		names = append(names, quote(c.Name))
		known[c.Name] = true
	}

	return &Table[T, PT]{
		db:         s.db,
		dialect:    s.dialect,
		name:       name,
		columns:    columns,
		known:      known,
		selectList: strings.Join(names, ", "),
	}
}

// Name returns the table name.
func (t *Table[T, PT]) Name() string {
	return t.name
}

// HasColumn reports whether name can be used as a filter.
func (t *Table[T, PT]) HasColumn(name string) bool {
	return t.known[name]
}

// List returns rows matching q ordered by id.
func (t *Table[T, PT]) List(ctx context.Context, q store.Query) ([]*T, error) {
	q = q.Normalize()
	where, args := t.where(q.Filters)

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s%s ORDER BY %s", t.selectList, quote(t.name), where, quote("id"))
	switch {
	case q.Limit > 0:
		b.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	case q.Skip > 0:
		b.WriteString(" LIMIT " + t.dialect.noLimit)
	}
	if q.Skip > 0 {
		b.WriteString(" OFFSET ?")
		args = append(args, q.Skip)
	}

	rows, err := t.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, translate(err))
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		row, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, translate(err))
	}
	return out, nil
}

// Count returns the number of rows matching q's filters.
func (t *Table[T, PT]) Count(ctx context.Context, q store.Query) (int, error) {
	where, args := t.where(q.Filters)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", quote(t.name), where)

	var n int
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, translate(err))
	}
	return n, nil
}

// Get returns the row with the given id or store.ErrNotFound.
func (t *Table[T, PT]) Get(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", t.selectList, quote(t.name), quote("id"))

	row, err := t.scan(t.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}

// Create inserts row, setting its id and timestamps.
func (t *Table[T, PT]) Create(ctx context.Context, row *T) error {
	base := PT(row).Base()
	base.InitTimestamps()

	names := []string{quote("created_at"), quote("updated_at")}
	args := []any{formatTime(base.CreatedAt), formatTime(base.UpdatedAt)}
	for _, c := range t.columns {
		names = append(names, quote(c.Name))
		args = append(args, value(c.Field(row)))
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(t.name), strings.Join(names, ", "), placeholders(len(names)))

	res, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert %s: %w", t.name, translate(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %s: last insert id: %w", t.name, err)
	}
	base.ID = id
	return nil
}

// Update writes every declared column of row and bumps updated_at.
// created_at is never rewritten.
func (t *Table[T, PT]) Update(ctx context.Context, row *T) error {
	base := PT(row).Base()
	base.Touch()

	sets := make([]string, 0, len(t.columns)+1)
	args := make([]any, 0, len(t.columns)+2)
	for _, c := range t.columns {
		sets = append(sets, quote(c.Name)+" = ?")
		args = append(args, value(c.Field(row)))
	}
	sets = append(sets, quote("updated_at")+" = ?")
	args = append(args, formatTime(base.UpdatedAt), base.ID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", quote(t.name), strings.Join(sets, ", "), quote("id"))

	res, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.name, translate(err))
	}
	return requireAffected(res)
}

// Delete hard-deletes the row with the given id.
func (t *Table[T, PT]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", quote(t.name), quote("id"))

	res, err := t.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, translate(err))
	}
	return requireAffected(res)
}

func (t *Table[T, PT]) where(filters map[string]string) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}

	// Sorted so the statement text is stable for a given filter set.
	keys := make([]string, 0, len(filters))
	for k := range filters {
		if t.known[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", nil
	}
	slices.Sort(keys)

	conds := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		conds[i] = quote(k) + " = ?"
		args[i] = filters[k]
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func (t *Table[T, PT]) scan(sc scanner) (*T, error) {
	row := new(T)
	base := PT(row).Base()

	var createdAt, updatedAt string
	dest := make([]any, 0, len(t.columns)+3)
	dest = append(dest, &base.ID, &createdAt, &updatedAt)
	for _, c := range t.columns {
		dest = append(dest, c.Field(row))
	}

	if err := sc.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if base.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if base.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return row, nil
}

// value dereferences a field pointer into a driver argument.
func value(ptr any) any {
	return reflect.ValueOf(ptr).Elem().Interface()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
