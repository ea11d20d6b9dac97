package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harmonia/academy-backend/internal/config"
	"github.com/harmonia/academy-backend/internal/handler"
	"github.com/harmonia/academy-backend/internal/middleware"
	"github.com/harmonia/academy-backend/internal/response"
	"github.com/harmonia/academy-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Token   *handler.TokenHandler
	Class   *handler.ClassHandler
	User    *handler.UserHandler
	Cart    *handler.CartHandler
	Payment *handler.PaymentHandler
	Monitor *handler.MonitorHandler
}

// Route declares one HTTP route and whether the auth gate applies to it.
// Gate application is a property of this table, not of the handlers.
type Route struct {
	Method string
	Path   string
	Gated  bool
	Handle gin.HandlerFunc
}

// Routes returns the declared route table.
func Routes(h *Handlers) []Route {
	return []Route{
		{http.MethodPost, "/jwt", false, h.Token.Issue},

		{http.MethodPost, "/addClass", true, h.Class.AddClass},
		{http.MethodGet, "/classes", false, h.Class.ListClasses},
		{http.MethodGet, "/class/:id", false, h.Class.GetClass},
		{http.MethodPatch, "/class/status/:id", false, h.Class.SetStatus},
		{http.MethodPut, "/class/feedback/:id", false, h.Class.SetFeedback},
		{http.MethodPut, "/update/:id", true, h.Class.UpdateClass},

		{http.MethodPut, "/users/:email", true, h.User.UpsertUser},
		{http.MethodGet, "/users/:email", false, h.User.GetUser},
		{http.MethodGet, "/users", true, h.User.ListUsers},
		{http.MethodPost, "/user", true, h.User.CreateUser},
		{http.MethodGet, "/instructors", false, h.User.Instructors},

		{http.MethodGet, "/selected/:email", true, h.Cart.ListSelected},
		{http.MethodGet, "/selected", true, h.Cart.ListAllSelected},
		{http.MethodPost, "/select", false, h.Cart.Select},
		{http.MethodDelete, "/selectClass/:id", false, h.Cart.DeleteSelection},
		{http.MethodGet, "/selectClass/:id", false, h.Cart.GetSelection},

		{http.MethodPost, "/create-payment-intent", false, h.Payment.CreateIntent},
		{http.MethodPost, "/payment", false, h.Payment.FinalizePayment},
		{http.MethodGet, "/enrolled/:email", false, h.Payment.Enrolled},
		{http.MethodGet, "/payments/:email", false, h.Payment.History},
		{http.MethodGet, "/popular-classes", false, h.Payment.PopularClasses},
	}
}

// SetupRouter configures the Gin engine from the route table.
func SetupRouter(
	tokens *service.TokenService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Harmonia Academy Server is running...")
	})
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Token issuance is open by contract, so it gets a rate limit instead.
	issueLimiter := middleware.NewRateLimiter(30, time.Minute)

	gate := middleware.RequireAuth(tokens)
	for _, r := range Routes(handlers) {
		chain := make([]gin.HandlerFunc, 0, 3)
		if r.Path == "/jwt" {
			chain = append(chain, issueLimiter.Middleware())
		}
		if r.Gated {
			chain = append(chain, gate)
		}
		chain = append(chain, r.Handle)
		router.Handle(r.Method, r.Path, chain...)
	}

	if handlers.Monitor != nil {
		router.GET("/ws/v1/classes/seats", handlers.Monitor.SeatStream)
	}

	return router
}
