package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/cafezinho/internal/httpx"
	prod "github.com/MikeMC777/cafezinho/internal/product"
)

func newRouter(repo prod.Repository) *gin.Engine {
	r := httpx.New()
	r.GET("/", indexHandler)
	r.GET("/ping", pingHandler)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/products", listProductsHandler(repo))
	r.GET("/products/meta/categories", listCategoriesHandler(repo))
	r.GET("/products/:id", getProductHandler(repo))
	return r
}

func indexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "cafezinho product-service",
		"endpoints": gin.H{
			"products":   "/products",
			"categories": "/products/meta/categories",
			"swagger":    "/swagger/index.html",
		},
	})
}

func pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

// listProductsHandler godoc
// @Summary  List products
// @Tags     products
// @Produce  json
// @Param    category query string false "category filter"
// @Success  200 {array} product.Product
// @Router   /products [get]
func listProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), prod.Query{Category: c.Query("category")})
		if err != nil {
			zap.L().Error("list products", zap.Error(err))
			httpx.Abort(c, http.StatusInternalServerError, "could not load products")
			return
		}
		if items == nil {
			items = []prod.Product{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// listCategoriesHandler godoc
// @Summary  List categories
// @Tags     products
// @Produce  json
// @Success  200 {array} string
// @Router   /products/meta/categories [get]
func listCategoriesHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := repo.Categories(c.Request.Context())
		if err != nil {
			zap.L().Error("list categories", zap.Error(err))
			httpx.Abort(c, http.StatusInternalServerError, "could not load categories")
			return
		}
		if cats == nil {
			cats = []string{}
		}
		c.JSON(http.StatusOK, cats)
	}
}

// getProductHandler godoc
// @Summary  Get product
// @Tags     products
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} product.Product
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, prod.ErrNotFound) {
			httpx.Abort(c, http.StatusNotFound, "product not found")
			return
		}
		if err != nil {
			zap.L().Error("get product", zap.String("id", c.Param("id")), zap.Error(err))
			httpx.Abort(c, http.StatusInternalServerError, "could not load product")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
