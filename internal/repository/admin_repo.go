package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE email=$1 AND deleted_at IS NULL)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AdminRepository) Create(ctx context.Context, email, passwordHash, role string) (int64, error) {
	var id int64
	query := `
		INSERT INTO admins (email, passwordhash, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING adminid
	`
	if err := r.DB.QueryRow(ctx, query, email, passwordHash, role, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	query := `SELECT adminid, email, passwordhash, role, created_at, deleted_at FROM admins WHERE email=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&a.AdminID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.DeletedAt); err != nil {
		return nil, errors.New("admin not found")
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	var a model.Admin
	query := `SELECT adminid, email, passwordhash, role, created_at, deleted_at FROM admins WHERE adminid=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&a.AdminID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.DeletedAt); err != nil {
		return nil, errors.New("admin not found")
	}
	return &a, nil
}
