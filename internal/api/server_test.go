package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-booker-api/internal/api/handler"
	"github.com/vfg2006/order-booker-api/internal/config"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/assigning"
	assigningMocks "github.com/vfg2006/order-booker-api/internal/usecases/assigning/mocks"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/order-booker-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/order-booker-api/internal/usecases/ordering"
	orderingMocks "github.com/vfg2006/order-booker-api/internal/usecases/ordering/mocks"
	reportingMocks "github.com/vfg2006/order-booker-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"github.com/vfg2006/order-booker-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"triggered": f.triggered}
}

type testServer struct {
	handler       http.Handler
	ordering      *orderingMocks.MockOrderingService
	reporting     *reportingMocks.MockReportingService
	assignment    *assigningMocks.MockAssignmentService
	authenticator *authMocks.MockAuthenticator
	obRanking     *fakeCronJob
	draftCleanup  *fakeCronJob
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)

	ts := &testServer{
		ordering:      orderingMocks.NewMockOrderingService(ctrl),
		reporting:     reportingMocks.NewMockReportingService(ctrl),
		assignment:    assigningMocks.NewMockAssignmentService(ctrl),
		authenticator: authMocks.NewMockAuthenticator(ctrl),
		obRanking:     &fakeCronJob{},
		draftCleanup:  &fakeCronJob{},
	}

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	ts.handler = NewHandler(cfg, Services{
		Ordering:      ts.ordering,
		Reporting:     ts.reporting,
		Assignment:    ts.assignment,
		Authenticator: ts.authenticator,
		CronJobs: handler.CronJobServices{
			OBRankingService:    ts.obRanking,
			DraftCleanupService: ts.draftCleanup,
		},
	})

	return ts
}

func (ts *testServer) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func adminHeader(ts *testServer) map[string]string {
	ts.authenticator.EXPECT().ValidateToken("admin-token").Return(&domain.Claims{
		UserName:   domain.AdminUserName,
		UserRoleID: domain.RoleAdmin,
	}, nil)

	return map[string]string{"Authorization": "Bearer admin-token"}
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthcheck", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestUnknownRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/v1/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeAPIError(t, rec).Code)

	rec = ts.do(http.MethodPatch, "/v1/orders", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decodeAPIError(t, rec).Code)
}

func TestSubmitOrder(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Pedido válido retorna 201 com a referência",
			body: `{"date":"2024-01-10","ob_contact":"P-01","route":"R1","items":{"kg-10":{"cartons":2,"dozens":1,"pieces":6}}}`,
			setup: func(ts *testServer) {
				ts.ordering.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *domain.SubmitOrderRequest) (*domain.SubmitOrderResponse, error) {
						assert.Equal(t, "P-01", req.OBContact)
						assert.Equal(t, 2, req.Items["kg-10"].Cartons)
						assert.Equal(t, 6, req.Items["kg-10"].Pieces)
						return &domain.SubmitOrderResponse{ID: 7, Reference: "AbC123"}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Rota fora do order booker retorna 422",
			body: `{"date":"2024-01-10","ob_contact":"P-01","route":"R9"}`,
			setup: func(ts *testServer) {
				ts.ordering.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
					Return(nil, ordering.NewOrderError(ordering.ErrRouteNotAssigned, apiErrors.ErrInvalidRoute, "Rota R9 não pertence ao order booker"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrInvalidRoute,
		},
		{
			name:       "JSON inválido retorna 400",
			body:       `{"date":`,
			setup:      func(*testServer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "Erro inesperado vira erro interno",
			body: `{"ob_contact":"P-01"}`,
			setup: func(ts *testServer) {
				ts.ordering.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			tt.setup(ts)

			rec := ts.do(http.MethodPost, "/v1/orders", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}

			var resp domain.SubmitOrderResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "AbC123", resp.Reference)
		})
	}
}

func TestReports_Filters(t *testing.T) {
	t.Run("Dashboard recebe janela e filtros da query", func(t *testing.T) {
		ts := newTestServer(t)

		ts.reporting.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters *domain.ReportFilters) (*domain.Dashboard, error) {
				assert.Equal(t, domain.WindowMTD, filters.Window)
				assert.Equal(t, "P-01", filters.OBContact)
				assert.Equal(t, "Hassan", filters.TSM)
				assert.Nil(t, filters.StartDate)
				return &domain.Dashboard{Date: "2024-01-15", OrderBookers: 1}, nil
			})

		rec := ts.do(http.MethodGet, "/v1/reports/dashboard?window=MTD&ob_contact=P-01&tsm=Hassan", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var dashboard domain.Dashboard
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dashboard))
		assert.Equal(t, "2024-01-15", dashboard.Date)
	})

	t.Run("Datas explícitas são repassadas", func(t *testing.T) {
		ts := newTestServer(t)

		ts.reporting.EXPECT().GetRouteReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters *domain.ReportFilters) ([]*domain.RouteAchievement, error) {
				require.NotNil(t, filters.StartDate)
				require.NotNil(t, filters.EndDate)
				assert.Equal(t, "2024-01-01", filters.StartDate.Format("2006-01-02"))
				assert.Equal(t, "2024-01-31", filters.EndDate.Format("2006-01-02"))
				return []*domain.RouteAchievement{{Route: domain.RouteUnknown, Achievement: 3}}, nil
			})

		rec := ts.do(http.MethodGet, "/v1/reports/routes?start_date=2024-01-01&end_date=2024-01-31", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"route":"Unknown"`)
	})

	t.Run("Data mal formatada retorna 400 sem consultar o serviço", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/v1/reports/order-bookers?start_date=15/01/2024", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFilters, decodeAPIError(t, rec).Code)
	})
}

func TestAdminRoutes_Authorization(t *testing.T) {
	t.Run("Sem token retorna 401", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodDelete, "/v1/orders", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
	})

	t.Run("Token inválido retorna 401", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authenticator.EXPECT().ValidateToken("bad").
			Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "assinatura inválida"))

		rec := ts.do(http.MethodGet, "/v1/catalog", "", map[string]string{"Authorization": "Bearer bad"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token expirado retorna AUTH_007", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authenticator.EXPECT().ValidateToken("old").
			Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado"))

		rec := ts.do(http.MethodDelete, "/v1/orders", "", map[string]string{"Authorization": "Bearer old"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrExpiredToken, decodeAPIError(t, rec).Code)
	})

	t.Run("Role sem privilégio retorna 403", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authenticator.EXPECT().ValidateToken("viewer").Return(&domain.Claims{UserName: "viewer", UserRoleID: 2}, nil)

		rec := ts.do(http.MethodDelete, "/v1/orders", "", map[string]string{"Authorization": "Bearer viewer"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	})

	t.Run("Admin apaga o histórico", func(t *testing.T) {
		ts := newTestServer(t)
		ts.ordering.EXPECT().ResetOrders(gomock.Any()).Return(int64(12), nil)

		rec := ts.do(http.MethodDelete, "/v1/orders", "", adminHeader(ts))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deleted":12`)
	})
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	ts.authenticator.EXPECT().Login("wrong").
		Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta"))
	rec := ts.do(http.MethodPost, "/v1/login", `{"password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)

	ts.authenticator.EXPECT().Login("S3nha!Forte").Return(&domain.LoginResponse{Token: "jwt", ExpiresIn: 3600}, nil)
	rec = ts.do(http.MethodPost, "/v1/login", `{"password":"S3nha!Forte"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jwt"`)
}

func TestOrderBookers(t *testing.T) {
	t.Run("Contato desconhecido retorna 404 com detalhes", func(t *testing.T) {
		ts := newTestServer(t)
		ts.assignment.EXPECT().GetOrderBooker(gomock.Any(), "P-99").
			Return(nil, assigning.NewAssignmentErrorWithContact(assigning.ErrOrderBookerNotFound, apiErrors.ErrOrderBookerNotFound, "P-99", "Order booker não cadastrado"))

		rec := ts.do(http.MethodGet, "/v1/order-bookers/P-99", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrOrderBookerNotFound, apiErr.Code)
		assert.Equal(t, map[string]any{"contact": "P-99"}, apiErr.Details)
	})

	t.Run("Atualização usa o ID da URL", func(t *testing.T) {
		ts := newTestServer(t)
		ts.assignment.EXPECT().SaveOrderBooker(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.SaveOrderBookerRequest) (*domain.OrderBooker, error) {
				assert.Equal(t, int64(4), req.ID)
				return &domain.OrderBooker{ID: 4, Contact: req.Contact, Name: req.Name}, nil
			})

		rec := ts.do(http.MethodPut, "/v1/order-bookers/4", `{"id":99,"contact":"P-04","name":"Danish"}`, adminHeader(ts))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ID não numérico retorna 400", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodDelete, "/v1/order-bookers/abc", "", adminHeader(ts))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestCronJobs(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/cron/ob-ranking/run", "", adminHeader(ts))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, ts.obRanking.triggered)
	assert.Equal(t, 0, ts.draftCleanup.triggered)

	rec = ts.do(http.MethodPost, "/v1/cron/all/run", "", adminHeader(ts))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, ts.obRanking.triggered)
	assert.Equal(t, 1, ts.draftCleanup.triggered)

	rec = ts.do(http.MethodPost, "/v1/cron/meta/run", "", adminHeader(ts))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/cron/status", "", adminHeader(ts))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"draft-cleanup"`)
}

func TestCors(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodOptions, "/v1/orders", "", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = ts.do(http.MethodOptions, "/v1/orders", "", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
