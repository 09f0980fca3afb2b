package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Ledger persists validated receipt payloads.
type Ledger interface {
	Insert(ctx context.Context, p LedgerPayload) (int64, error)
}

// PGLedger writes payloads to the Postgres receipts table.
type PGLedger struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPGLedger(pool *pgxpool.Pool, logger *slog.Logger) *PGLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &PGLedger{pool: pool, logger: logger}
}

const insertReceiptSQL = `
INSERT INTO receipts
    (user_id, category_id, payment_method, date, total_amount, store_name, image_path, details, ocr_confidence, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (l *PGLedger) Insert(ctx context.Context, p LedgerPayload) (int64, error) {
	if err := ValidatePayload(p); err != nil {
		return 0, err
	}
	details, err := json.Marshal(p.Details)
	if err != nil {
		return 0, fmt.Errorf("marshal details: %w", err)
	}

	start := time.Now()
	var id int64
	err = l.pool.QueryRow(ctx, insertReceiptSQL,
		p.UserID, p.Category, p.Payment, p.Date, p.Total,
		p.StoreName, p.ImagePath, details, p.OCRConfidence, p.CreatedAt,
	).Scan(&id)
	if err != nil {
		l.logger.Error("failed to insert receipt", "store", p.StoreName, "error", err)
		return 0, fmt.Errorf("insert receipt: %w", err)
	}

	l.logger.Info("ledger.insert.ok",
		"id", id,
		"store", p.StoreName,
		"total", p.Total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return id, nil
}
