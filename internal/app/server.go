package app

import (
	"errors"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/FernandoRe0309/techstore/internal/handlers"
	"github.com/FernandoRe0309/techstore/internal/model"
	"github.com/FernandoRe0309/techstore/internal/service"
	"github.com/FernandoRe0309/techstore/web"
)

func init() {
	// The cart endpoints answer with plain JSON numbers for prices and
	// totals, like the stored numeric columns.
	decimal.MarshalJSONWithoutQuotes = true
}

// NewServer connects to postgres, migrates the schema and builds the router.
func NewServer(cfg Config) (*gin.Engine, func(), error) {
	if cfg.SessionSecret == "" {
		return nil, nil, errors.New("SESSION_SECRET is required")
	}

	db, err := gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return nil, nil, err
	}

	r := NewRouter(cfg, db)

	cleanup := func() {
		if s, err := db.DB(); err == nil {
			_ = s.Close()
		}
	}
	return r, cleanup, nil
}

// NewRouter wires the gin engine over an already-open database. Tests call it
// directly with sqlite.
func NewRouter(cfg Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Session id travels in a signed cookie; the values (identity, cart,
	// checkout token) stay server-side in the memstore.
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("techstore_session", store))

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.FS, "templates/*.html")))
	assets, _ := fs.Sub(web.FS, "assets")
	r.StaticFS("/assets", http.FS(assets))

	emailSvc := service.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	auth := handlers.NewAuth(service.NewAuthService(db))
	cartAPI := handlers.NewCartAPI(db)
	checkout := handlers.NewCheckout(service.NewCheckoutService(db, emailSvc))
	pages := handlers.NewPages(db, service.NewHistoryService(db))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// Pages
	r.GET("/", pages.Index)
	r.GET("/login", pages.LoginForm)
	r.GET("/register", pages.RegisterForm)
	r.GET("/cart", pages.CartView)
	r.GET("/history", pages.HistoryView)

	// Auth
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/logout", auth.Logout)

	// Cart API + checkout
	r.POST("/api/cart/add", cartAPI.Add)
	r.POST("/api/cart/update", cartAPI.Update)
	r.POST("/checkout", checkout.Checkout)

	// Dev convenience: reset and reseed the catalog.
	if cfg.Env != "prod" {
		r.POST("/api/admin/seed", func(c *gin.Context) {
			db.Exec("TRUNCATE TABLE order_items, orders, products RESTART IDENTITY CASCADE")
			seed := []model.Product{
				{Name: "Blue T-Shirt", Price: decimal.NewFromFloat(19.99), Image: "https://picsum.photos/seed/blue/600/400"},
				{Name: "Red Hoodie", Price: decimal.NewFromFloat(45.99), Image: "https://picsum.photos/seed/red/600/400"},
				{Name: "Sneakers", Price: decimal.NewFromFloat(69.99), Image: "https://picsum.photos/seed/shoes/600/400"},
			}
			if err := db.Create(&seed).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}

	return r
}
