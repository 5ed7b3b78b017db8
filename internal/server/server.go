package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	catalogdomain "github.com/smallbiznis/threadline/internal/catalog/domain"
	"github.com/smallbiznis/threadline/internal/config"
	customizationdomain "github.com/smallbiznis/threadline/internal/customization/domain"
	memberdomain "github.com/smallbiznis/threadline/internal/member/domain"
	"github.com/smallbiznis/threadline/internal/observability/logger"
	"github.com/smallbiznis/threadline/internal/observability/metrics"
	orderdomain "github.com/smallbiznis/threadline/internal/order/domain"
	reportdomain "github.com/smallbiznis/threadline/internal/report/domain"
	websitedomain "github.com/smallbiznis/threadline/internal/website/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Log       *zap.Logger
	Metrics   *metrics.HTTPMetrics

	Orders        orderdomain.Service
	Catalog       catalogdomain.Service
	Customization customizationdomain.Service
	Reports       reportdomain.Service
	Website       websitedomain.Service
	Members       memberdomain.Service
}

type Server struct {
	engine *gin.Engine
	log    *zap.Logger

	orders        orderdomain.Service
	catalog       catalogdomain.Service
	customization customizationdomain.Service
	reports       reportdomain.Service
	website       websitedomain.Service
	members       memberdomain.Service
}

func New(p Params) *Server {
	if !p.Config.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(p.Config.Debug()))
	engine.Use(metrics.GinMiddleware(p.Metrics))
	engine.Use(ErrorHandlingMiddleware(p.Log))

	s := &Server{
		engine:        engine,
		log:           p.Log.Named("server"),
		orders:        p.Orders,
		catalog:       p.Catalog,
		customization: p.Customization,
		reports:       p.Reports,
		website:       p.Website,
		members:       p.Members,
	}
	s.registerRoutes()

	srv := &http.Server{
		Addr:    p.Config.HTTPAddr,
		Handler: engine,
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			s.log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.engine.POST("/members/signup/", s.signup)
	s.engine.POST("/members/login/", s.login)

	authed := s.engine.Group("/", AuthMiddleware(s.members))

	authed.GET("/reports/revenue/generate/", s.generateRevenueReport)
	authed.GET("/reports/product-sales/generate/", s.generateProductSalesReport)
	authed.GET("/reports/customer-analysis/generate/", s.generateCustomerAnalysisReport)
	authed.GET("/reports/growth-trend/generate/", s.generateGrowthTrendReport)

	authed.GET("/orders/", s.listOrders)
	authed.POST("/orders/", s.createOrder)
	authed.GET("/orders/:id/", s.getOrder)
	authed.PATCH("/orders/:id/status/", s.updateOrderStatus)

	authed.GET("/invoices/", s.listInvoices)
	authed.POST("/invoices/", s.createInvoice)
	authed.GET("/invoices/:id/", s.getInvoice)
	authed.PATCH("/invoices/:id/status/", s.updateInvoiceStatus)

	authed.GET("/categories/", s.listCategories)
	authed.POST("/categories/", s.createCategory)
	authed.PUT("/categories/:id/", s.updateCategory)
	authed.DELETE("/categories/:id/", s.deleteCategory)
	authed.POST("/categories/:id/unlock/", s.unlockCategory)

	authed.GET("/sub-categories/", s.listSubCategories)
	authed.POST("/sub-categories/", s.createSubCategory)
	authed.DELETE("/sub-categories/:id/", s.deleteSubCategory)

	authed.GET("/shirts/", s.listShirts)
	authed.POST("/shirts/", s.createShirt)
	authed.GET("/shirts/:id/", s.getShirt)
	authed.PUT("/shirts/:id/", s.updateShirt)
	authed.DELETE("/shirts/:id/", s.deleteShirt)

	authed.GET("/customizers/", s.listCustomizers)
	authed.POST("/customizers/", s.createCustomizer)
	authed.GET("/customizers/:id/", s.getCustomizer)
	authed.DELETE("/customizers/:id/", s.deleteCustomizer)

	authed.GET("/patterns/", s.listPatterns)
	authed.POST("/patterns/", s.createPattern)
	authed.DELETE("/patterns/:id/", s.deletePattern)

	authed.GET("/colors/", s.listColors)
	authed.POST("/colors/", s.createColor)
	authed.DELETE("/colors/:id/", s.deleteColor)

	authed.GET("/fonts/", s.listFonts)
	authed.POST("/fonts/", s.createFont)
	authed.DELETE("/fonts/:id/", s.deleteFont)

	authed.GET("/user-shirts/", s.listUserShirts)
	authed.POST("/user-shirts/", s.createUserShirt)
	authed.PUT("/user-shirts/:id/", s.updateUserShirt)
	authed.DELETE("/user-shirts/:id/", s.deleteUserShirt)

	authed.GET("/user-customizers/", s.listUserCustomizers)
	authed.POST("/user-customizers/", s.createUserCustomizer)
	authed.PUT("/user-customizers/:id/", s.updateUserCustomizer)
	authed.DELETE("/user-customizers/:id/", s.deleteUserCustomizer)

	authed.GET("/settings/website/", s.getSettings)
	authed.PUT("/settings/website/", s.updateSettings)
	authed.PATCH("/settings/website/", s.updateSettings)

	authed.GET("/settings/payment/", s.getPaymentSettings)
	authed.PUT("/settings/payment/", s.updatePaymentSettings)
	authed.PATCH("/settings/payment/", s.updatePaymentSettings)

	authed.GET("/settings/tax/", s.getTaxConfiguration)
	authed.PUT("/settings/tax/", s.updateTaxConfiguration)
	authed.PATCH("/settings/tax/", s.updateTaxConfiguration)

	authed.GET("/settings/general/", s.getGeneralSettings)
	authed.PUT("/settings/general/", s.updateGeneralSettings)
	authed.PATCH("/settings/general/", s.updateGeneralSettings)

	authed.GET("/settings/notifications/", s.getNotificationSettings)
	authed.PUT("/settings/notifications/", s.updateNotificationSettings)
	authed.PATCH("/settings/notifications/", s.updateNotificationSettings)

	authed.POST("/settings/navigation-menu/", s.addMenuItem)
	authed.PUT("/settings/navigation-menu/", s.updateMenuItems)
	authed.DELETE("/settings/navigation-menu/", s.deleteMenuItems)

	authed.GET("/banners/", s.listBanners)
	authed.POST("/banners/", s.createBanner)
	authed.PUT("/banners/:id/", s.updateBanner)
	authed.DELETE("/banners/:id/", s.deleteBanner)

	authed.GET("/blogs/", s.listBlogs)
	authed.POST("/blogs/", s.createBlog)
	authed.GET("/blogs/:id/", s.getBlog)
	authed.PUT("/blogs/:id/", s.updateBlog)
	authed.DELETE("/blogs/:id/", s.deleteBlog)

	authed.GET("/testimonials/", s.listTestimonials)
	authed.POST("/testimonials/", s.createTestimonial)
	authed.DELETE("/testimonials/:id/", s.deleteTestimonial)

	authed.GET("/products/", s.listProducts)
	authed.POST("/products/", s.createProduct)
	authed.DELETE("/products/:id/", s.deleteProduct)

	authed.GET("/inventory/stats/", s.inventoryStats)

	authed.POST("/members/logout/", s.logout)

	admin := authed.Group("/", RequireRole(memberdomain.RoleOwner, memberdomain.RoleAdmin))
	admin.GET("/members/", s.listMembers)
	admin.POST("/members/:id/approve/", s.approveMember)
	admin.POST("/members/:id/reject/", s.rejectMember)
}
