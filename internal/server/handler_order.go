package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/threadline/internal/order/domain"
)

func (s *Server) listOrders(c *gin.Context) {
	items, err := s.orders.ListOrders(c.Request.Context(), domain.ListOrdersRequest{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "orders retrieved")
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, order, "order retrieved")
}

func (s *Server) createOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := s.orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, order, "order created")
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := s.orders.UpdateOrderStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, order, "order status updated")
}

func (s *Server) listInvoices(c *gin.Context) {
	items, err := s.orders.ListInvoices(c.Request.Context(), domain.ListInvoicesRequest{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "invoices retrieved")
}

func (s *Server) getInvoice(c *gin.Context) {
	invoice, err := s.orders.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, invoice, "invoice retrieved")
}

func (s *Server) createInvoice(c *gin.Context) {
	var req domain.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	invoice, err := s.orders.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, invoice, "invoice created")
}

func (s *Server) updateInvoiceStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	invoice, err := s.orders.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), domain.InvoiceStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, invoice, "invoice status updated")
}
