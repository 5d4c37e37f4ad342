package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"thumbforge/internal/api/controllers"
	"thumbforge/internal/repositories"
	"thumbforge/internal/services"
	mem "thumbforge/pkg/memcache"
)

var Module = fx.Provide(
	providePlanRepo, providePlanCache, providePlanService, providePlanController)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanCache() *mem.PlanCache {
	return mem.NewPlanCache()
}

func providePlanService(planRepo repositories.IPlanRepository, cache *mem.PlanCache) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, cache)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
