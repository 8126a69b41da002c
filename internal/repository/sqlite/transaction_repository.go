package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/repository"
)

const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	type TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	amount NUMERIC NOT NULL,
	status TEXT NOT NULL,
	date DATETIME NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const transactionColumns = `id, user_id, type, category, amount, status, date, created_at, updated_at`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTransactionsTable); err != nil {
		return fmt.Errorf("create transactions table: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (int64, error) {
	now := time.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO transactions (user_id, type, category, amount, status, date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.UserID,
		string(tx.Type),
		tx.Category,
		tx.Amount,
		string(tx.Status),
		tx.Date.UTC(),
		tx.CreatedAt,
		tx.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.NewNotFound("user", tx.UserID)
		}
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction last insert id: %w", err)
	}
	tx.ID = id
	return id, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	tx.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE transactions SET type=?, category=?, amount=?, status=?, date=?, updated_at=?
WHERE id=?`,
		string(tx.Type),
		tx.Category,
		tx.Amount,
		string(tx.Status),
		tx.Date.UTC(),
		tx.UpdatedAt,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transaction update rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("transaction", tx.ID)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transaction delete rows affected: %w", err)
	}
	if aff == 0 {
		return domain.NewNotFound("transaction", id)
	}
	return nil
}

func (r *TransactionRepository) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id=?`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("transaction", id)
		}
		return nil, err
	}
	return tx, nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY id ASC`)
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE user_id=? ORDER BY id ASC`, userID)
}

func (r *TransactionRepository) ListByType(ctx context.Context, txType domain.TransactionType) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE type=? ORDER BY id ASC`, string(txType))
}

func (r *TransactionRepository) ListByCategory(ctx context.Context, category string) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE category=? ORDER BY id ASC`, category)
}

func (r *TransactionRepository) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE status=? ORDER BY id ASC`, string(status))
}

func (r *TransactionRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	// inclusive on both bounds
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE date>=? AND date<=? ORDER BY date ASC`, start.UTC(), end.UTC())
}

func (r *TransactionRepository) ListByAmountGreaterThan(ctx context.Context, min decimal.Decimal) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE amount > CAST(? AS NUMERIC) ORDER BY id ASC`, min)
}

func (r *TransactionRepository) ListByUserAndType(ctx context.Context, userID int64, txType domain.TransactionType) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE user_id=? AND type=? ORDER BY id ASC`, userID, string(txType))
}

func (r *TransactionRepository) ListByUserAndCategory(ctx context.Context, userID int64, category string) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE user_id=? AND category=? ORDER BY id ASC`, userID, category)
}

func (r *TransactionRepository) listTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, rows.Err()
}

func scanTransaction(scanner interface {
	Scan(dest ...any) error
}) (*domain.Transaction, error) {
	var (
		tx     domain.Transaction
		txType string
		status string
	)
	if err := scanner.Scan(
		&tx.ID,
		&tx.UserID,
		&txType,
		&tx.Category,
		&tx.Amount,
		&status,
		&tx.Date,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	tx.Type = domain.TransactionType(txType)
	tx.Status = domain.TransactionStatus(status)
	return &tx, nil
}
