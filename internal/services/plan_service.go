package services

import (
	"context"
	"time"

	"thumbforge/internal/models/db_models"
	"thumbforge/internal/models/response_models"
	"thumbforge/internal/repositories"
	mem "thumbforge/pkg/memcache"
	"thumbforge/pkg/utils"
)

const planCacheTTL = 5 * time.Minute

type PlanServiceInterface interface {
	GetPlans(ctx context.Context) ([]response_models.PlanResponse, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
	cache    *mem.PlanCache
}

func NewPlanService(planRepo repositories.IPlanRepository, cache *mem.PlanCache) PlanServiceInterface {
	return &PlanService{planRepo: planRepo, cache: cache}
}

func (p *PlanService) GetPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, ok := p.cache.Get()
	if !ok {
		var err error
		plans, err = p.planRepo.GetActivePlans(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		p.cache.Set(plans, planCacheTTL)
	}

	out := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toPlanResponse(plan))
	}
	return out, nil
}

func toPlanResponse(plan db_models.Plan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:          plan.ID,
		Code:        plan.Code,
		Name:        plan.Name,
		Description: plan.Description,
		Credits:     plan.Credits,
		PriceMinor:  plan.PriceMinor,
		Currency:    plan.Currency,
	}
}
