package request

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// StatusCount is one row of a per-status GROUP BY over a kind's table.
type StatusCount struct {
	Status string
	Count  int64
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindAll(ctx context.Context, kind Kind) ([]Request, error)
	FindAllByStatus(ctx context.Context, kind Kind, status string) ([]Request, error)
	FindByID(ctx context.Context, kind Kind, id string) (*Request, error)
	Update(ctx context.Context, r *Request) error
	Delete(ctx context.Context, kind Kind, id string) error
	CountAll(ctx context.Context, kind Kind) (int64, error)
	CountByStatus(ctx context.Context, kind Kind, status string) (int64, error)
	CountByEmailGrouped(ctx context.Context, kind Kind, email string) ([]StatusCount, error)
	PendingIDsInWindow(ctx context.Context, kind Kind, from, to time.Time) ([]string, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) table(ctx context.Context, kind Kind) *gorm.DB {
	return r.db.WithContext(ctx).Table(kind.Config().Table)
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.table(ctx, req.Kind).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context, kind Kind) ([]Request, error) {
	var requests []Request
	err := r.table(ctx, kind).
		Order("created_at DESC").
		Find(&requests).Error
	tagKind(requests, kind)
	return requests, err
}

func (r *repository) FindAllByStatus(ctx context.Context, kind Kind, status string) ([]Request, error) {
	var requests []Request
	err := r.table(ctx, kind).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&requests).Error
	tagKind(requests, kind)
	return requests, err
}

func (r *repository) FindByID(ctx context.Context, kind Kind, id string) (*Request, error) {
	var req Request
	err := r.table(ctx, kind).
		Where("id = ?", id).
		Take(&req).Error
	if err != nil {
		return nil, err
	}
	req.Kind = kind
	return &req, nil
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.table(ctx, req.Kind).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"status":           req.Status,
			"decision_remarks": req.DecisionRemarks,
		}).Error
}

func (r *repository) Delete(ctx context.Context, kind Kind, id string) error {
	return r.table(ctx, kind).
		Where("id = ?", id).
		Delete(&Request{}).Error
}

func (r *repository) CountAll(ctx context.Context, kind Kind) (int64, error) {
	var count int64
	err := r.table(ctx, kind).Count(&count).Error
	return count, err
}

func (r *repository) CountByStatus(ctx context.Context, kind Kind, status string) (int64, error) {
	var count int64
	err := r.table(ctx, kind).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountByEmailGrouped matches the submitter email ignoring case; different
// submission paths capitalize emails inconsistently.
func (r *repository) CountByEmailGrouped(ctx context.Context, kind Kind, email string) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.table(ctx, kind).
		Select("status, COUNT(*) AS count").
		Where("LOWER(email) = LOWER(?)", email).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) PendingIDsInWindow(ctx context.Context, kind Kind, from, to time.Time) ([]string, error) {
	var ids []string
	err := r.table(ctx, kind).
		Where("status = ?", StatusPending).
		Where("start_date BETWEEN ? AND ?", from, to).
		Order("start_date ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func tagKind(requests []Request, kind Kind) {
	for i := range requests {
		requests[i].Kind = kind
	}
}
