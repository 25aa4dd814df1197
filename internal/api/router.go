package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/founditapp/foundit/internal/lifecycle"
	"github.com/founditapp/foundit/internal/match"
	"github.com/founditapp/foundit/internal/notify"
	"github.com/founditapp/foundit/internal/photo"
	"github.com/founditapp/foundit/internal/store"
)

// NewRouter creates the API router with all endpoints registered. Paths,
// methods and response bodies are the public contract; clients depend on them.
func NewRouter(st store.Store, photos *photo.Store, notifier notify.Notifier, jwtSecret string) http.Handler {
	engine := &lifecycle.Engine{Store: st, Photos: photos}
	matcher := &match.Service{Store: st, Notifier: notifier}

	authHandler := &AuthHandler{Store: st, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Store: st, Engine: engine, Photos: photos}
	claimsHandler := &ClaimsHandler{Store: st, Engine: engine}
	lostHandler := &LostItemsHandler{Store: st, Engine: engine, Matcher: matcher}
	statsHandler := &StatsHandler{Store: st}

	adminMW := AdminAuthMiddleware(jwtSecret)

	mux := http.NewServeMux()

	// Public: browsing and submissions.
	mux.HandleFunc("GET /api/items", itemsHandler.PublicList)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("POST /api/items", itemsHandler.Submit)
	mux.HandleFunc("POST /api/claims", claimsHandler.Submit)
	mux.HandleFunc("POST /api/lost-items", lostHandler.Submit)
	mux.HandleFunc("GET /api/stats", statsHandler.Get)

	// Admin login.
	mux.HandleFunc("POST /api/admin/login", authHandler.Login)

	// Admin review and matching.
	mux.Handle("GET /api/admin/items", adminMW(http.HandlerFunc(itemsHandler.AdminList)))
	mux.Handle("PATCH /api/admin/items/{id}", adminMW(http.HandlerFunc(itemsHandler.UpdateStatus)))
	mux.Handle("DELETE /api/admin/items/{id}", adminMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("GET /api/admin/claims", adminMW(http.HandlerFunc(claimsHandler.AdminList)))
	mux.Handle("PATCH /api/admin/claims/{id}", adminMW(http.HandlerFunc(claimsHandler.UpdateStatus)))
	mux.Handle("GET /api/admin/lost-items", adminMW(http.HandlerFunc(lostHandler.AdminList)))
	mux.Handle("POST /api/admin/match-item", adminMW(http.HandlerFunc(lostHandler.Match)))
	mux.Handle("GET /api/admin/stats", adminMW(http.HandlerFunc(statsHandler.Get)))

	// Observability.
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
