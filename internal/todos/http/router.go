package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/service"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
	"github.com/smicho01/todos-rest-api/pkg/httpx"
	"github.com/smicho01/todos-rest-api/pkg/jwtx"
	"github.com/smicho01/todos-rest-api/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuditService    *service.AuditService
	TokenService    *service.TokenService
	UserService     *service.UserService
	CategoryService *service.CategoryService
	TodoService     *service.TodoService
	GuardService    *service.GuardService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCategories()
	r.registerTodos()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the bearer token and records rejected requests in the
// audit trail.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, r.AuditService)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}

	// POST /users/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /users/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService: r.UserService,
		Guard:       r.GuardService,
	}

	admin := httpx.RequireRole(domain.RoleAdmin.String())

	// GET /users - admin-only directory listing
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			admin,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /users/{id} - self or admin, enforced by the ownership guard
	r.Mux.Handle("GET /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /users/find - any authenticated user may look up public profiles
	r.Mux.Handle("POST /v1/users/find",
		httpx.Chain(http.HandlerFunc(h.HandleFind),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// PATCH /users/{id} - admin account maintenance
	r.Mux.Handle("PATCH /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandlePatch),
			r.authn(),
			admin,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /users/{id} - admin-only, cascades categories and todos
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			admin,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{
		CategoryService: r.CategoryService,
		Guard:           r.GuardService,
	}

	r.Mux.Handle("POST /v1/categories",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/categories",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/categories/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTodos() {
	h := &TodosHandler{
		TodoService:     r.TodoService,
		CategoryService: r.CategoryService,
		Guard:           r.GuardService,
	}

	r.Mux.Handle("POST /v1/todos",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/todos",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/todos/category/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleListByCategory),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandlePatch),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may
	// poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
