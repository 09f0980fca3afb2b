package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// SQLiteLedger is the single-file ledger used for offline runs. Same payload
// schema as the Postgres ledger, no server required.
type SQLiteLedger struct {
	db     *sql.DB
	logger *slog.Logger
}

const createReceiptsSQL = `
CREATE TABLE IF NOT EXISTS receipts (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id        INTEGER NOT NULL,
    category_id    INTEGER NOT NULL,
    payment_method TEXT,
    date           TEXT,
    total_amount   INTEGER NOT NULL,
    store_name     TEXT NOT NULL,
    image_path     TEXT,
    details        TEXT,
    ocr_confidence REAL,
    created_at     TEXT NOT NULL
)`

func OpenSQLiteLedger(path string, logger *slog.Logger) (*SQLiteLedger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(createReceiptsSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create receipts table: %w", err)
	}
	logger.Info("sqlite ledger ready", "path", path)
	return &SQLiteLedger{db: db, logger: logger}, nil
}

func (l *SQLiteLedger) Close() error { return l.db.Close() }

func (l *SQLiteLedger) Insert(ctx context.Context, p LedgerPayload) (int64, error) {
	if err := ValidatePayload(p); err != nil {
		return 0, err
	}
	details, err := json.Marshal(p.Details)
	if err != nil {
		return 0, fmt.Errorf("marshal details: %w", err)
	}

	res, err := l.db.ExecContext(ctx, `
		INSERT INTO receipts
		    (user_id, category_id, payment_method, date, total_amount, store_name, image_path, details, ocr_confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.Category, p.Payment, p.Date, p.Total,
		p.StoreName, p.ImagePath, string(details), p.OCRConfidence, p.CreatedAt,
	)
	if err != nil {
		l.logger.Error("failed to insert receipt", "store", p.StoreName, "error", err)
		return 0, fmt.Errorf("insert receipt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	l.logger.Info("ledger.insert.ok", "id", id, "store", p.StoreName, "total", p.Total)
	return id, nil
}
