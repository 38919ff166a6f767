package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nclabhq/notelab/internal/notelab/provider"
	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/pkg/httpx"
	"github.com/nclabhq/notelab/pkg/jwtx"
	"github.com/nclabhq/notelab/pkg/slogx"

	_ "github.com/nclabhq/notelab/api/notelab" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	Providers      *provider.Registry
	AuthService    *service.AuthService
	LinkService    *service.LinkService
	SessionService *service.SessionService
	AccountService *service.AccountService
	NotesService   *service.NotesService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		issuer:       issuer,
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
	r.registerAccount()
	r.registerNotes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			NoteLab Account Service API
//	@version		0.1.0
//	@description	Account, sign-in and note listing API for the NoteLab collaborative
//	@description	note service. Local email/password accounts and external sign-in via
//	@description	GitHub or Google both resolve to the same session tokens.
//	@description
//	@description				Session tokens are signed with EdDSA (Ed25519) and can be verified using the JWKS endpoint.
//
//	@contact.name				NoteLab Team
//	@contact.url				https://github.com/nclabhq/notelab
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
	}

	// POST /auth/register - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	loginHandler := &LoginHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
	}

	// POST /auth/login - strict rate limit by IP + email form field to
	// slow down credential stuffing against a single account
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)

	externalHandler := &ExternalAuthHandler{
		Providers:      r.Providers,
		LinkService:    r.LinkService,
		SessionService: r.SessionService,
	}

	// GET /auth/{provider} - redirect to the provider, moderate limit
	r.Mux.Handle("GET /v1/auth/{provider}",
		httpx.Chain(http.HandlerFunc(externalHandler.HandleBegin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /auth/{provider}/callback - strict rate limit (creates accounts)
	r.Mux.Handle("GET /v1/auth/{provider}/callback",
		httpx.Chain(http.HandlerFunc(externalHandler.HandleCallback),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccount() {
	h := &AccountHandler{AccountService: r.AccountService}

	// GET /me - lenient rate limit by user
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /me/profile - moderate rate limit by user
	r.Mux.Handle("POST /v1/me/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /me/{token} - strict rate limit by user (irreversible)
	r.Mux.Handle("DELETE /v1/me/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NotesService: r.NotesService}

	// GET /notes/mine - lenient rate limit by user
	r.Mux.Handle("GET /v1/notes/mine",
		httpx.Chain(http.HandlerFunc(h.HandleMine),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /notes/shared - public listing, lenient rate limit by IP
	r.Mux.Handle("GET /v1/notes/shared",
		httpx.Chain(http.HandlerFunc(h.HandleShared),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// GET /jwks.json - public endpoint with high limit
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
