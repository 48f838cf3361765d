package handler

import (
	"net/http"

	"github.com/vfg2006/order-booker-api/internal/api/handler/router"
	"github.com/vfg2006/order-booker-api/internal/usecases/assigning"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
	"github.com/vfg2006/order-booker-api/internal/usecases/configuring"
	"github.com/vfg2006/order-booker-api/internal/usecases/ordering"
	"github.com/vfg2006/order-booker-api/internal/usecases/ranking"
	"github.com/vfg2006/order-booker-api/internal/usecases/reporting"
	"github.com/vfg2006/order-booker-api/internal/usecases/targeting"
	"github.com/vfg2006/order-booker-api/pkg/middleware"
)

func adminOnly() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.AdminOnly()}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: adminOnly(),
		},
	}
}

func Orders(service ordering.OrderingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/catalog",
			Method:  http.MethodGet,
			Handler: GetCatalog(service),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodPost,
			Handler: SubmitOrder(service),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(service),
		},
		{
			Path:        "/v1/orders",
			Method:      http.MethodDelete,
			Handler:     ResetOrders(service),
			Middlewares: adminOnly(),
		},
		{
			Path:    "/v1/drafts",
			Method:  http.MethodPost,
			Handler: SaveDraft(service),
		},
		{
			Path:    "/v1/drafts/:id",
			Method:  http.MethodPut,
			Handler: SaveDraft(service),
		},
		{
			Path:    "/v1/drafts/:id",
			Method:  http.MethodGet,
			Handler: GetDraft(service),
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/reports/order-bookers",
			Method:  http.MethodGet,
			Handler: GetOrderBookerReport(service),
		},
		{
			Path:    "/v1/reports/tsm",
			Method:  http.MethodGet,
			Handler: GetTSMReport(service),
		},
		{
			Path:    "/v1/reports/routes",
			Method:  http.MethodGet,
			Handler: GetRouteReport(service),
		},
	}
}

func OBRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ranking/order-bookers",
			Method:  http.MethodGet,
			Handler: GetOBRanking(service),
		},
	}
}

func OrderBookers(service assigning.AssignmentService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/order-bookers",
			Method:  http.MethodGet,
			Handler: ListOrderBookers(service),
		},
		{
			Path:    "/v1/order-bookers/:contact",
			Method:  http.MethodGet,
			Handler: GetOrderBooker(service),
		},
		{
			Path:        "/v1/order-bookers",
			Method:      http.MethodPost,
			Handler:     CreateOrderBooker(service),
			Middlewares: adminOnly(),
		},
		{
			Path:        "/v1/order-bookers/reseed",
			Method:      http.MethodPost,
			Handler:     ReseedOrderBookers(service),
			Middlewares: adminOnly(),
		},
		{
			Path:        "/v1/order-bookers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateOrderBooker(service),
			Middlewares: adminOnly(),
		},
		{
			Path:        "/v1/order-bookers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteOrderBooker(service),
			Middlewares: adminOnly(),
		},
	}
}

func Targets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/targets",
			Method:  http.MethodGet,
			Handler: ListTargets(service),
		},
		{
			Path:    "/v1/targets/:contact",
			Method:  http.MethodGet,
			Handler: GetTargets(service),
		},
		{
			Path:        "/v1/targets/:contact",
			Method:      http.MethodPut,
			Handler:     SaveTargets(service),
			Middlewares: adminOnly(),
		},
	}
}

func Settings(service configuring.SettingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     ListSettings(service),
			Middlewares: adminOnly(),
		},
		{
			Path:        "/v1/settings/:key",
			Method:      http.MethodPut,
			Handler:     UpdateSetting(service),
			Middlewares: adminOnly(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly(),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly(),
		},
	}
}
