package pg

import (
	"context"

	"github.com/admin/lucky-shop/divination-api/internal/ports/persistence"
	"github.com/jmoiron/sqlx"
)

// DB обёртка над sqlx.DB, реализует persistence.Persistence
type DB struct {
	Db *sqlx.DB
}

func NewDB(db *sqlx.DB) *DB {
	return &DB{Db: db}
}

// Get выполняет запрос и сканирует результат в структуру (одна запись)
func (d *DB) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.Db.GetContext(ctx, dest, query, args...)
}

// Select выполняет запрос и сканирует результаты в слайс структур
func (d *DB) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.Db.SelectContext(ctx, dest, query, args...)
}

// Exec выполняет запрос без возврата данных (INSERT, UPDATE, DELETE)
func (d *DB) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := d.Db.ExecContext(ctx, query, args...)
	return err
}

// ExecWithResult выполняет запрос и возвращает количество затронутых строк
func (d *DB) ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := d.Db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// NamedExec выполняет именованный запрос (использует struct tags)
func (d *DB) NamedExec(ctx context.Context, query string, arg interface{}) error {
	_, err := d.Db.NamedExecContext(ctx, query, arg)
	return err
}

// QueryRow выполняет запрос и возвращает строку для сканирования
func (d *DB) QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return d.Db.QueryRowxContext(ctx, query, args...)
}

// BeginTx начинает новую транзакцию
func (d *DB) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	tx, err := d.Db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}

// WithTransaction выполняет функцию в транзакции с автоматическим commit/rollback
func (d *DB) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	tx, err := d.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return tx.Commit()
}

// Close закрывает подключение к базе данных
func (d *DB) Close() error {
	return d.Db.Close()
}
