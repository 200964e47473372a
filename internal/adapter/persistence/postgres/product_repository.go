package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
)

const productColumns = "id, name, color, amount, active, created_at"

type ProductRepository struct {
	db *sql.DB
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, string(p.Name), string(p.Color), p.Amount, p.Active, p.CreatedAt,
	)
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, nil
	}
	return p, err
}

func (r *ProductRepository) List(ctx context.Context) ([]entities.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]entities.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE active = TRUE ORDER BY created_at DESC`)
}

func (r *ProductRepository) list(ctx context.Context, query string) ([]entities.Product, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE products SET name = $2, color = $3, amount = $4, active = $5
		 WHERE id = $1 RETURNING `+productColumns,
		p.ID, string(p.Name), string(p.Color), p.Amount, p.Active,
	)
	updated, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, nil
	}
	return updated, err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "products", id)
}

func scanProduct(s scanner) (entities.Product, error) {
	var (
		p           entities.Product
		name, color string
	)
	if err := s.Scan(&p.ID, &name, &color, &p.Amount, &p.Active, &p.CreatedAt); err != nil {
		return entities.Product{}, err
	}
	p.Name = entities.StickerName(name)
	p.Color = entities.StickerColor(color)
	return p, nil
}
