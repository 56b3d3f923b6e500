package v1

import (
	"net/http"
	"testing"

	"github.com/kvishnublr/GetroRepo/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubIssuer struct{}

func (stubIssuer) NextN(n int) []string { return make([]string, n) }

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e, handler.NewHandler(stubIssuer{}, 10))

	registered := make(map[string]string)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = r.Name
	}

	assert.Contains(t, registered, http.MethodPost+" /api/v1/tracking-numbers")
	assert.Contains(t, registered, http.MethodGet+" /api/v1/tracking-numbers/:id")
	assert.Contains(t, registered[http.MethodPost+" /api/v1/tracking-numbers"], "IssueTrackingNumbersHandler")
	assert.Contains(t, registered[http.MethodGet+" /api/v1/tracking-numbers/:id"], "ParseTrackingNumberHandler")
}

func TestRegisterRoutes_NilHandler(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		RegisterRoutes(echo.New(), nil)
	})
}
