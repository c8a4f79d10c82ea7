package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/rentals-service/internal/model"
)

type PlanService struct {
	plans PlanRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewPlanService(plans PlanRepository, log zerolog.Logger) *PlanService {
	return &PlanService{plans: plans, log: log, now: utcNow}
}

func (s *PlanService) CreatePlan(ctx context.Context, terms model.PlanTerms) (*model.RentalPlan, error) {
	plan, err := model.NewRentalPlan(terms, s.now())
	if err != nil {
		return nil, invalidInput(err)
	}
	if err := s.plans.Add(ctx, plan); err != nil {
		return nil, err
	}
	s.log.Info().Int64("plan_id", plan.ID).Str("name", plan.Name).Msg("plan created")
	return plan, nil
}

func (s *PlanService) UpdatePlan(ctx context.Context, id int64, terms model.PlanTerms) (*model.RentalPlan, error) {
	plan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := plan.Update(terms); err != nil {
		return nil, invalidInput(err)
	}
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, notFound(err, ErrPlanNotFound)
	}
	s.log.Info().Int64("plan_id", plan.ID).Msg("plan updated")
	return plan, nil
}

func (s *PlanService) GetByID(ctx context.Context, id int64) (*model.RentalPlan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPlanNotFound)
	}
	return plan, nil
}

func (s *PlanService) GetAll(ctx context.Context) ([]model.RentalPlan, error) {
	return s.plans.GetAll(ctx)
}

func (s *PlanService) GetActive(ctx context.Context) ([]model.RentalPlan, error) {
	return s.plans.GetActive(ctx)
}

func (s *PlanService) Activate(ctx context.Context, id int64) (*model.RentalPlan, error) {
	return s.setActive(ctx, id, true)
}

func (s *PlanService) Deactivate(ctx context.Context, id int64) (*model.RentalPlan, error) {
	return s.setActive(ctx, id, false)
}

func (s *PlanService) setActive(ctx context.Context, id int64, active bool) (*model.RentalPlan, error) {
	plan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		plan.Activate()
	} else {
		plan.Deactivate()
	}
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, notFound(err, ErrPlanNotFound)
	}
	s.log.Info().Int64("plan_id", plan.ID).Bool("active", active).Msg("plan status changed")
	return plan, nil
}

// InitializeDefaultPlans seeds the catalog when it is empty. It reports
// whether any plan was created.
func (s *PlanService) InitializeDefaultPlans(ctx context.Context) (bool, error) {
	count, err := s.plans.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := s.now()
	terms := model.DefaultPlanTerms()
	plans := make([]*model.RentalPlan, 0, len(terms))
	for _, t := range terms {
		plan, err := model.NewRentalPlan(t, now)
		if err != nil {
			return false, err
		}
		plans = append(plans, plan)
	}
	inserted, err := s.plans.AddManyIfEmpty(ctx, plans)
	if err != nil {
		return false, err
	}
	if !inserted {
		return false, nil
	}
	s.log.Info().Int("plans", len(plans)).Msg("default plans created")
	return true, nil
}

// Calendar comparisons are made on UTC dates.
func utcNow() time.Time {
	return time.Now().UTC()
}
