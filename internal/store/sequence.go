package store

import (
	"context"
	"fmt"
)

// insertSequenced inserts one row into table, stamping it with the next
// value of the sequence shared by every table. Timestamps can collide or
// step backwards with the wall clock; the sequence gives a total order.
// Claiming the value and inserting the row commit together, so a failed
// insert never burns a sequence number.
func (s *Store) insertSequenced(ctx context.Context, table string, columns []string, values ...any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert into %s: %w", table, err)
	}
	defer tx.Rollback()

	var seq int64
	err = tx.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := s.sql.Insert(table).
		Columns(append([]string{"sequence"}, columns...)...).
		Values(append([]any{seq}, values...)...).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return tx.Commit()
}
