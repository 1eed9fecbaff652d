package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"github.com/lainecomfort/storefront/internal/core/domain"
	"github.com/lainecomfort/storefront/internal/core/service"
)

// ProductRequest carries the wire shape of a create-product call.
// The id field is accepted but ignored: identity is store-assigned.
type ProductRequest struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

type ErrorMessageResp struct {
	Message string `json:"message"`
}

func (r ProductRequest) toDomain() domain.Product {
	return domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
	}
}

func newProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
	}
}

type ProductServer struct {
	e              *echo.Echo
	productService *service.ProductService
}

// NewProductServer mounts the product REST surface. Browser calls are
// restricted to the single configured front-end origin.
func NewProductServer(productService *service.ProductService, allowedOrigin string) *ProductServer {
	e := echo.New()
	e.HideBanner = true

	s := &ProductServer{
		e:              e,
		productService: productService,
	}

	e.HTTPErrorHandler = s.httpErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{allowedOrigin},
	}))

	e.POST("/api/product", s.createProduct)
	e.GET("/api/product", s.getAllProducts)
	e.GET("/api/product/:id", s.getProductByID)

	return s
}

func (s *ProductServer) ListenAndServe(port int) error {
	return s.e.Start(fmt.Sprintf(":%d", port))
}

func (s *ProductServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Test routes a request through the server without a listener.
func (s *ProductServer) Test(req *http.Request) *http.Response {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec.Result()
}

func (s *ProductServer) createProduct(c echo.Context) error {
	var req ProductRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	saved, err := s.productService.CreateProduct(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newProductResponse(saved))
}

func (s *ProductServer) getAllProducts(c echo.Context) error {
	products, err := s.productService.GetAllProducts(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, newProductResponse(p))
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *ProductServer) getProductByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := s.productService.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProductResponse(product))
}

func (s *ProductServer) httpErrorHandler(err error, c echo.Context) {
	if errors.Is(err, service.ErrProductNotFound) {
		if !c.Response().Committed {
			c.JSON(http.StatusNotFound, ErrorMessageResp{Message: err.Error()})
		}
		return
	}

	s.e.DefaultHTTPErrorHandler(err, c)
}
