package products

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/admin/lucky-shop/divination-api/internal/ports/service"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	ProductService service.IProductService
	Log            *slog.Logger
}

func New(productService service.IProductService, log *slog.Logger) *Controller {
	return &Controller{
		ProductService: productService,
		Log:            log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")

	api.GET("/products", c.listProducts)
}

// listProducts витрина товаров. Без параметра ids отдаёт весь каталог,
// с ids=PROD_A,PROD_B только перечисленные товары.
func (c *Controller) listProducts(ctx *gin.Context) {
	rawIDs := ctx.Query("ids")

	var (
		products []domain.Product
		err      error
	)

	if rawIDs == "" {
		products, err = c.ProductService.List(ctx.Request.Context())
	} else {
		ids := make([]string, 0)
		for _, id := range strings.Split(rawIDs, ",") {
			if trimmed := strings.TrimSpace(id); trimmed != "" {
				ids = append(ids, trimmed)
			}
		}
		products, err = c.ProductService.ListByIDs(ctx.Request.Context(), ids)
	}

	if err != nil {
		c.Log.Error("failed to list products",
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}
