package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"github.com/lainecomfort/storefront/internal/core/domain"
	"github.com/lainecomfort/storefront/internal/core/service"
)

// OrderRequest carries the wire shape of a place-order call. The id
// and orderNumber fields are accepted but ignored server-side.
type OrderRequest struct {
	ID          int64           `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ProductName string          `json:"productName"`
	PhoneNumber int64           `json:"phoneNumber"`
	Address     string          `json:"address"`
	ClientName  string          `json:"clientName"`
}

func (r OrderRequest) toDomain() domain.Order {
	return domain.Order{
		Price:       r.Price,
		Quantity:    r.Quantity,
		ProductName: r.ProductName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		ClientName:  r.ClientName,
	}
}

type OrderServer struct {
	e            *echo.Echo
	orderService *service.OrderService
	dispatcher   *service.NotificationDispatcher
}

// NewOrderServer mounts the order REST surface. No CORS middleware is
// applied here; the order service keeps the process default policy.
func NewOrderServer(orderService *service.OrderService, dispatcher *service.NotificationDispatcher) *OrderServer {
	e := echo.New()
	e.HideBanner = true

	s := &OrderServer{
		e:            e,
		orderService: orderService,
		dispatcher:   dispatcher,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.POST("/api/order", s.placeOrder)

	return s
}

func (s *OrderServer) ListenAndServe(port int) error {
	return s.e.Start(fmt.Sprintf(":%d", port))
}

func (s *OrderServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Test routes a request through the server without a listener.
func (s *OrderServer) Test(req *http.Request) *http.Response {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec.Result()
}

// placeOrder persists the order, then notifies staff by email and
// SMS, in that order. A notification failure fails the request but
// does not undo the already-persisted order.
func (s *OrderServer) placeOrder(c echo.Context) error {
	var req OrderRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	saved, err := s.orderService.PlaceOrder(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	if err := s.dispatcher.NotifyOrderPlaced(c.Request().Context(), saved); err != nil {
		return err
	}

	return c.String(http.StatusCreated, "Order Placed")
}
