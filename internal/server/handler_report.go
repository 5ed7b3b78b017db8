package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) generateRevenueReport(c *gin.Context) {
	result, err := s.reports.GenerateRevenueReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, result, "revenue report generated")
}

func (s *Server) generateProductSalesReport(c *gin.Context) {
	result, err := s.reports.GenerateProductSalesReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, result, "product sales report generated")
}

func (s *Server) generateCustomerAnalysisReport(c *gin.Context) {
	result, err := s.reports.GenerateCustomerAnalysisReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, result, "customer analysis report generated")
}

func (s *Server) generateGrowthTrendReport(c *gin.Context) {
	result, err := s.reports.GenerateGrowthTrendReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, result, "growth trend report generated")
}
