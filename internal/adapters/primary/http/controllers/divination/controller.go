package divination

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/admin/lucky-shop/divination-api/internal/ports/service"
	"github.com/gin-gonic/gin"
)

// deviceIDHeader заголовок, по которому фронт идентифицирует устройство
const deviceIDHeader = "X-Device-ID"

type Controller struct {
	DivinationService service.IDivinationService
	ProductService    service.IProductService
	Log               *slog.Logger
}

func New(
	divinationService service.IDivinationService,
	productService service.IProductService,
	log *slog.Logger,
) *Controller {
	return &Controller{
		DivinationService: divinationService,
		ProductService:    productService,
		Log:               log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")

	api.GET("/methods", c.listMethods)
	api.POST("/readings", c.performReading)
	api.GET("/readings", c.listHistory)
	api.DELETE("/readings", c.clearHistory)

	api.POST("/profile", c.submitProfile)
	api.GET("/profile/fortune", c.todayFortune)
	api.DELETE("/profile", c.resetProfile)
}

// deviceID достаёт идентификатор устройства из заголовка.
// Без него запрос не обслуживается.
func (c *Controller) deviceID(ctx *gin.Context) (string, bool) {
	id := ctx.GetHeader(deviceIDHeader)
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Device-ID header is required"})
		return "", false
	}
	return id, true
}

func (c *Controller) listMethods(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, MethodsResponse{
		Methods: c.DivinationService.Methods(),
	})
}

func (c *Controller) performReading(ctx *gin.Context) {
	deviceID, ok := c.deviceID(ctx)
	if !ok {
		return
	}

	var req PerformReadingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind reading request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reading, err := c.DivinationService.PerformReading(ctx.Request.Context(), deviceID, req.MethodID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	resp := ReadingResponse{Reading: reading}

	// Разворачиваем рекомендованные товары в полные карточки.
	// Недоступность каталога не ломает расклад.
	if len(reading.RecommendedProducts) > 0 && c.ProductService != nil {
		products, err := c.ProductService.ListByIDs(ctx.Request.Context(), reading.RecommendedProducts)
		if err != nil {
			c.Log.Warn("failed to expand recommended products",
				"error", err,
				"product_ids", reading.RecommendedProducts,
			)
		} else {
			resp.Products = products
		}
	}

	ctx.JSON(http.StatusCreated, resp)
}

func (c *Controller) listHistory(ctx *gin.Context) {
	deviceID, ok := c.deviceID(ctx)
	if !ok {
		return
	}

	readings, err := c.DivinationService.History(ctx.Request.Context(), deviceID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, HistoryResponse{Readings: readings})
}

func (c *Controller) clearHistory(ctx *gin.Context) {
	deviceID, ok := c.deviceID(ctx)
	if !ok {
		return
	}

	if err := c.DivinationService.ClearHistory(ctx.Request.Context(), deviceID); err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (c *Controller) submitProfile(ctx *gin.Context) {
	deviceID, ok := c.deviceID(ctx)
	if !ok {
		return
	}

	var req SubmitProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind profile request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	birthDate, err := req.ParseBirthDate()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be in YYYY-MM-DD format"})
		return
	}

	profile, sign, fortune, err := c.DivinationService.SubmitProfile(ctx.Request.Context(), deviceID, req.Name, birthDate)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ProfileResponse{
		Profile: profile,
		Sign:    sign,
		Fortune: fortune,
	})
}

func (c *Controller) todayFortune(ctx *gin.Context) {
	deviceID, ok := c.deviceID(ctx)
	if !ok {
		return
	}

	sign, fortune, err := c.DivinationService.TodayFortune(ctx.Request.Context(), deviceID)
	if err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, FortuneResponse{
		Sign:    sign,
		Fortune: fortune,
	})
}

func (c *Controller) resetProfile(ctx *gin.Context) {
	deviceID, ok := c.deviceID(ctx)
	if !ok {
		return
	}

	if err := c.DivinationService.ResetProfile(ctx.Request.Context(), deviceID); err != nil {
		c.handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleError маппит ошибки бизнес-логики на HTTP-статусы.
// Бизнес-ошибки уже залогированы в UseCase, здесь только статус.
func (c *Controller) handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMethodNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "divination method not found"})
	case errors.Is(err, domain.ErrProfileNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case domain.IsBusinessError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.Log.Error("unexpected error",
			"error", err,
			"path", ctx.FullPath(),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
