package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
)

const residentColumns = "id, name, phase, block, lot, created_at"

type ResidentRepository struct {
	db *sql.DB
}

var _ interfaces.IResidentRepository = (*ResidentRepository)(nil)

func NewResidentRepository(db *sql.DB) *ResidentRepository {
	return &ResidentRepository{db: db}
}

func (r *ResidentRepository) Create(ctx context.Context, res entities.Resident) (entities.Resident, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO residents (`+residentColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID, res.Name, res.Phase, res.Block, res.Lot, res.CreatedAt,
	)
	if err != nil {
		return entities.Resident{}, err
	}
	return res, nil
}

func (r *ResidentRepository) GetByID(ctx context.Context, id string) (entities.Resident, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+residentColumns+` FROM residents WHERE id = $1`, id)
	res, err := scanResident(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Resident{}, nil
	}
	return res, err
}

func (r *ResidentRepository) List(ctx context.Context, filter entities.ResidentFilter) ([]entities.Resident, error) {
	var (
		where []string
		args  []any
	)
	for _, f := range []struct{ col, value string }{
		{"phase", filter.Phase},
		{"block", filter.Block},
		{"lot", filter.Lot},
	} {
		if f.value == "" {
			continue
		}
		args = append(args, f.value)
		where = append(where, fmt.Sprintf("%s = $%d", f.col, len(args)))
	}

	query := `SELECT ` + residentColumns + ` FROM residents`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Resident{}
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *ResidentRepository) Update(ctx context.Context, res entities.Resident) (entities.Resident, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE residents SET name = $2, phase = $3, block = $4, lot = $5
		 WHERE id = $1 RETURNING `+residentColumns,
		res.ID, res.Name, res.Phase, res.Block, res.Lot,
	)
	updated, err := scanResident(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Resident{}, nil
	}
	return updated, err
}

func (r *ResidentRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "residents", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResident(s scanner) (entities.Resident, error) {
	var res entities.Resident
	err := s.Scan(&res.ID, &res.Name, &res.Phase, &res.Block, &res.Lot, &res.CreatedAt)
	return res, err
}

func deleteByID(ctx context.Context, db *sql.DB, table, id string) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
