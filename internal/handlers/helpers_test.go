package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-recipe-book/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

var (
	alice = models.Identity{ID: 1, Username: "alice", Email: "alice@example.com"}
	bob   = models.Identity{ID: 2, Username: "bob", Email: "bob@example.com"}
)

// newRequest builds a request carrying chi URL params and, when caller is set, an identity.
func newRequest(method, target, body string, params map[string]string, caller *models.Identity) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)

	if caller != nil {
		ctx = middlewares.WithIdentity(ctx, *caller)
	}
	return req.WithContext(ctx)
}
