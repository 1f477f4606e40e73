package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/traction-team/korail-mate/backend/internal/handler/chat"
	gatehandler "github.com/traction-team/korail-mate/backend/internal/handler/gate"
	profilehandler "github.com/traction-team/korail-mate/backend/internal/handler/profile"
	recommendhandler "github.com/traction-team/korail-mate/backend/internal/handler/recommend"
	triphandler "github.com/traction-team/korail-mate/backend/internal/handler/trip"
	middlewarePkg "github.com/traction-team/korail-mate/backend/internal/middleware"
	chatservice "github.com/traction-team/korail-mate/backend/internal/service/chat"
	gateservice "github.com/traction-team/korail-mate/backend/internal/service/gate"
	profileservice "github.com/traction-team/korail-mate/backend/internal/service/profile"
	recommendservice "github.com/traction-team/korail-mate/backend/internal/service/recommend"
	tripservice "github.com/traction-team/korail-mate/backend/internal/service/trip"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

// Deps collects the services the router wires up.
type Deps struct {
	KV        storage.KV
	Profile   *profileservice.Service
	Chat      *chatservice.Service
	Recommend *recommendservice.Service
	Gate      *gateservice.Policy
	Posts     tripservice.PostSource
	Wizard    *tripservice.Wizard
}

// NewRouter wires HTTP routes to core services.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	profileHandler := profilehandler.New(d.Profile)
	gateHandler := gatehandler.New(d.Gate, d.KV)
	chatHandler := chathandler.New(d.Chat)
	chatWS := chathandler.NewWebSocketHandler(d.Chat)
	recommendHandler := recommendhandler.New(d.Recommend)
	tripHandler := triphandler.New(d.Posts, d.Wizard)

	r.Route("/api", func(api chi.Router) {
		profileHandler.RegisterRoutes(api)
		gateHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		chatWS.RegisterRoutes(api)
		recommendHandler.RegisterRoutes(api)
		tripHandler.RegisterRoutes(api)
	})

	return r
}
