package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/threadline/internal/website/domain"
)

func (s *Server) getPaymentSettings(c *gin.Context) {
	settings, err := s.website.GetPaymentSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "payment settings retrieved")
}

func (s *Server) updatePaymentSettings(c *gin.Context) {
	var req domain.UpdatePaymentSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := s.website.UpdatePaymentSettings(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "payment settings updated")
}

func (s *Server) getTaxConfiguration(c *gin.Context) {
	settings, err := s.website.GetTaxConfiguration(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "tax configuration retrieved")
}

func (s *Server) updateTaxConfiguration(c *gin.Context) {
	var req domain.UpdateTaxConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := s.website.UpdateTaxConfiguration(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "tax configuration updated")
}

func (s *Server) getGeneralSettings(c *gin.Context) {
	settings, err := s.website.GetGeneralSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "general settings retrieved")
}

func (s *Server) updateGeneralSettings(c *gin.Context) {
	var req domain.UpdateGeneralSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := s.website.UpdateGeneralSettings(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "general settings updated")
}

func (s *Server) getNotificationSettings(c *gin.Context) {
	settings, err := s.website.GetNotificationSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "notification settings retrieved")
}

func (s *Server) updateNotificationSettings(c *gin.Context) {
	var req domain.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := s.website.UpdateNotificationSettings(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "notification settings updated")
}
