package postgres

import (
	"context"
	"database/sql"
	"time"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
)

const detailedPurchaseQuery = `SELECT
	pu.id, pu.resident_id, pu.product_id, pu.amount_paid, pu.driver_name,
	pu.driver_license, pu.company, pu.contact_number, pu.sticker_number,
	pu.plate_number, pu.af_number, pu.penalty, pu.type, pu.payment_method,
	pu.payment_reference, pu.purchase_date,
	pr.id, pr.name, pr.color, pr.amount, pr.active, pr.created_at,
	r.id, r.name, r.phase, r.block, r.lot, r.created_at
FROM purchases pu
LEFT JOIN products pr ON pr.id = pu.product_id
LEFT JOIN residents r ON r.id = pu.resident_id`

type PurchaseRepository struct {
	db *sql.DB
}

var _ interfaces.IPurchaseRepository = (*PurchaseRepository)(nil)

func NewPurchaseRepository(db *sql.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) Create(ctx context.Context, p entities.Purchase) (entities.Purchase, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO purchases (
			id, resident_id, product_id, amount_paid, driver_name, driver_license,
			company, contact_number, sticker_number, plate_number, af_number,
			penalty, type, payment_method, payment_reference, purchase_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.ResidentID, nullString(p.ProductID), p.AmountPaid, p.DriverName, p.DriverLicense,
		p.Company, p.ContactNumber, p.StickerNumber, p.PlateNumber, p.AFNumber,
		p.Penalty, string(p.Type), string(p.PaymentMethod), p.PaymentReference, p.PurchaseDate,
	)
	if err != nil {
		return entities.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseRepository) ListDetailed(ctx context.Context) ([]entities.PurchaseDetail, error) {
	return r.query(ctx, detailedPurchaseQuery+` ORDER BY pu.purchase_date DESC`)
}

func (r *PurchaseRepository) ListDetailedByResident(ctx context.Context, residentID string) ([]entities.PurchaseDetail, error) {
	return r.query(ctx, detailedPurchaseQuery+` WHERE pu.resident_id = $1 ORDER BY pu.purchase_date DESC`, residentID)
}

func (r *PurchaseRepository) query(ctx context.Context, query string, args ...any) ([]entities.PurchaseDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.PurchaseDetail{}
	for rows.Next() {
		d, err := scanPurchaseDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanPurchaseDetail(s scanner) (entities.PurchaseDetail, error) {
	var (
		d                  entities.PurchaseDetail
		productID          sql.NullString
		license, company   sql.NullString
		contact            sql.NullString
		purchaseType       string
		method             string
		prID, prName       sql.NullString
		prColor            sql.NullString
		prAmount           sql.NullFloat64
		prActive           sql.NullBool
		prCreated          sql.NullTime
		rID, rName, rPhase sql.NullString
		rBlock, rLot       sql.NullString
		rCreated           sql.NullTime
	)
	err := s.Scan(
		&d.ID, &d.ResidentID, &productID, &d.AmountPaid, &d.DriverName,
		&license, &company, &contact, &d.StickerNumber,
		&d.PlateNumber, &d.AFNumber, &d.Penalty, &purchaseType, &method,
		&d.PaymentReference, &d.PurchaseDate,
		&prID, &prName, &prColor, &prAmount, &prActive, &prCreated,
		&rID, &rName, &rPhase, &rBlock, &rLot, &rCreated,
	)
	if err != nil {
		return entities.PurchaseDetail{}, err
	}

	d.ProductID = productID.String
	d.DriverLicense = stringPtr(license)
	d.Company = stringPtr(company)
	d.ContactNumber = stringPtr(contact)
	d.Type = entities.PurchaseType(purchaseType)
	d.PaymentMethod = entities.PaymentMethod(method)

	if prID.Valid {
		d.Product = &entities.Product{
			ID:        prID.String,
			Name:      entities.StickerName(prName.String),
			Color:     entities.StickerColor(prColor.String),
			Amount:    prAmount.Float64,
			Active:    prActive.Bool,
			CreatedAt: timeOrZero(prCreated),
		}
	}
	if rID.Valid {
		d.Resident = &entities.Resident{
			ID:        rID.String,
			Name:      rName.String,
			Phase:     rPhase.String,
			Block:     rBlock.String,
			Lot:       rLot.String,
			CreatedAt: timeOrZero(rCreated),
		}
	}
	return d, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timeOrZero(nt sql.NullTime) time.Time {
	if !nt.Valid {
		return time.Time{}
	}
	return nt.Time
}
