package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/domain/purchase"
	"travel-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PurchaseRepository persists checkout attempts. The chosen offer is
// stored as a JSONB snapshot so history survives provider price churn.
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

const purchaseColumns = `id, user_id, offer_kind, offer_snapshot, passengers, service_class,
payment_method, status, amount_minor, currency, method_metadata, created_at`

func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	snapshotJSON, err := json.Marshal(p.OfferSnapshot())
	if err != nil {
		return infra.WrapRepoErr("failed to encode offer snapshot", err)
	}
	metadataJSON, err := json.Marshal(p.MethodMetadata())
	if err != nil {
		return infra.WrapRepoErr("failed to encode method metadata", err)
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO purchases (
	id, user_id, offer_kind, offer_snapshot, passengers, service_class,
	payment_method, status, amount_minor, currency, method_metadata, created_at, updated_at
) VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9, $10, $11::jsonb, $12, $12)`,
		p.ID(), p.UserID(), p.OfferKind().String(), snapshotJSON, p.Passengers(), p.ServiceClass(),
		p.PaymentMethod().String(), p.Status().String(), p.AmountMinor(), p.Currency(), metadataJSON, p.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("purchase already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create purchase", err)
	}

	return nil
}

// SaveSettlement writes back the post-settlement state of a pending
// purchase: status plus whatever artifacts the rail produced.
func (r *PurchaseRepository) SaveSettlement(ctx context.Context, p *purchase.Purchase) error {
	metadataJSON, err := json.Marshal(p.MethodMetadata())
	if err != nil {
		return infra.WrapRepoErr("failed to encode method metadata", err)
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE purchases
SET status = $2, method_metadata = $3::jsonb, updated_at = NOW()
WHERE id = $1`,
		p.ID(), p.Status().String(), metadataJSON,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update purchase settlement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("purchase not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+purchaseColumns+`
FROM purchases
WHERE id = $1`, id)

	p, err := scanPurchase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find purchase by ID", err)
	}

	return p, nil
}

// FindByUserID returns the caller's purchase history, newest first.
func (r *PurchaseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*purchase.Purchase, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+purchaseColumns+`
FROM purchases
WHERE user_id = $1
ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find purchases by user ID", err)
	}
	defer rows.Close()

	result := make([]*purchase.Purchase, 0)
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan purchase row", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate purchase rows", err)
	}

	return result, nil
}

func scanPurchase(row pgx.Row) (*purchase.Purchase, error) {
	var (
		id, userID     uuid.UUID
		offerKind      string
		snapshotRaw    []byte
		passengers     int
		serviceClass   *string
		method, status string
		amountMinor    int64
		currency       string
		metadataRaw    []byte
		createdAt      time.Time
	)

	if err := row.Scan(
		&id, &userID, &offerKind, &snapshotRaw, &passengers, &serviceClass,
		&method, &status, &amountMinor, &currency, &metadataRaw, &createdAt,
	); err != nil {
		return nil, err
	}

	var snapshot offer.Offer
	if err := json.Unmarshal(snapshotRaw, &snapshot); err != nil {
		return nil, err
	}

	metadata := map[string]string{}
	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &metadata); err != nil {
			return nil, err
		}
	}

	return purchase.ReconstructPurchase(
		id, userID,
		offer.Kind(offerKind), snapshot,
		passengers, serviceClass,
		purchase.Method(method), purchase.Status(status),
		amountMinor, currency,
		metadata, createdAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
