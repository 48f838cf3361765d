package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"github.com/vfg2006/order-booker-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

// filtros de relatório e histórico que vale registrar junto da requisição
var loggedQueryParams = map[string]string{
	"ob_contact": "ob_contact",
	"tsm":        "ob_tsm",
	"window":     "report_window",
}

// LoggingMiddleware registra cada requisição com o order booker ou TSM consultado.
// Requisições acima de slowThreshold geram um aviso extra.
func LoggingMiddleware(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			fields := requestFields(r)
			fields["correlation_id"] = correlationID

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(fields).Debug("Requisição iniciada")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()

			logger := log.L.WithFields(fields)
			switch {
			case lrw.statusCode >= 500:
				logger.Error("Requisição finalizada com erro")
			case lrw.statusCode >= 400:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada com sucesso")
			}

			if slowThreshold > 0 && elapsed > slowThreshold {
				logger.Warnf("Requisição lenta: %s %s levou %s", r.Method, r.URL.Path, elapsed)
			}
		})
	}
}

func requestFields(r *http.Request) log.Fields {
	fields := log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"remote_addr": r.RemoteAddr,
		"user_agent":  r.UserAgent(),
	}

	query := r.URL.Query()
	for param, field := range loggedQueryParams {
		if value := strings.TrimSpace(query.Get(param)); value != "" {
			fields[field] = value
		}
	}

	if strings.HasPrefix(r.URL.Path, "/v1/reports/") {
		fields["report"] = strings.TrimPrefix(r.URL.Path, "/v1/reports/")
	}

	return fields
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde com o erro padrão da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.L.WithContext(r.Context()).WithFields(log.Fields{
						"error":       err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(debug.Stack()),
					}).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
