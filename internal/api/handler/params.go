package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/order-booker-api/pkg/utils"
)

// optionalDate lê um parâmetro YYYY-MM-DD da query; ausente vira nil
func optionalDate(r *http.Request, name string) (*time.Time, error) {
	return utils.ParseDate(r.URL.Query().Get(name))
}
