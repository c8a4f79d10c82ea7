package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/rentals-service/internal/model"
)

const planColumns = `
	id,
	name,
	duration_days,
	daily_rate,
	early_return_penalty_pct,
	late_return_daily_fee,
	is_active,
	created_at`

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Add(ctx context.Context, plan *model.RentalPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// AddManyIfEmpty inserts all plans or none, and only while the catalog is
// empty. On PostgreSQL the table is locked against concurrent writers first,
// so two instances seeding at once insert the catalog a single time.
func (r *PlanRepository) AddManyIfEmpty(ctx context.Context, plans []*model.RentalPlan) (bool, error) {
	inserted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(`LOCK TABLE rental_plans IN SHARE ROW EXCLUSIVE MODE`).Error; err != nil {
				return err
			}
		}

		var total int64
		if err := tx.Raw(`SELECT COUNT(*) FROM rental_plans`).Scan(&total).Error; err != nil {
			return err
		}
		if total > 0 {
			return nil
		}

		for _, plan := range plans {
			if err := tx.Create(plan).Error; err != nil {
				return err
			}
		}
		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *PlanRepository) Update(ctx context.Context, plan *model.RentalPlan) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE rental_plans
		SET
			name = ?,
			duration_days = ?,
			daily_rate = ?,
			early_return_penalty_pct = ?,
			late_return_daily_fee = ?,
			is_active = ?
		WHERE id = ?
	`,
		plan.Name,
		plan.DurationDays,
		plan.DailyRate,
		plan.EarlyReturnPenaltyPct,
		plan.LateReturnDailyFee,
		plan.IsActive,
		plan.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*model.RentalPlan, error) {
	var plan model.RentalPlan
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+planColumns+`
		FROM rental_plans
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&plan).Error
	if err != nil {
		return nil, err
	}
	if plan.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &plan, nil
}

// GetAll lists every plan, shortest duration first.
func (r *PlanRepository) GetAll(ctx context.Context) ([]model.RentalPlan, error) {
	var plans []model.RentalPlan
	if err := r.db.WithContext(ctx).Raw(`
		SELECT`+planColumns+`
		FROM rental_plans
		ORDER BY duration_days ASC, id ASC
	`).Scan(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) GetActive(ctx context.Context) ([]model.RentalPlan, error) {
	var plans []model.RentalPlan
	if err := r.db.WithContext(ctx).Raw(`
		SELECT`+planColumns+`
		FROM rental_plans
		WHERE is_active = ?
		ORDER BY duration_days ASC, id ASC
	`, true).Scan(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM rental_plans`).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
