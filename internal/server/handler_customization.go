package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/threadline/internal/customization/domain"
)

func (s *Server) listUserShirts(c *gin.Context) {
	items, err := s.customization.ListUserShirts(c.Request.Context(), domain.ListRequest{
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "user shirts retrieved")
}

func (s *Server) createUserShirt(c *gin.Context) {
	var req domain.CreateUserShirtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := s.customization.CreateUserShirt(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, record, "user shirt created")
}

func (s *Server) updateUserShirt(c *gin.Context) {
	var req domain.UpdateUserShirtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = c.Param("id")

	record, err := s.customization.UpdateUserShirt(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, record, "user shirt updated")
}

func (s *Server) deleteUserShirt(c *gin.Context) {
	if err := s.customization.DeleteUserShirt(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "user shirt deleted")
}

func (s *Server) listUserCustomizers(c *gin.Context) {
	items, err := s.customization.ListUserCustomizers(c.Request.Context(), domain.ListRequest{
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "user customizers retrieved")
}

func (s *Server) createUserCustomizer(c *gin.Context) {
	var req domain.CreateUserCustomizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := s.customization.CreateUserCustomizer(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, record, "user customizer created")
}

func (s *Server) updateUserCustomizer(c *gin.Context) {
	var req domain.UpdateUserCustomizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = c.Param("id")

	record, err := s.customization.UpdateUserCustomizer(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, record, "user customizer updated")
}

func (s *Server) deleteUserCustomizer(c *gin.Context) {
	if err := s.customization.DeleteUserCustomizer(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "user customizer deleted")
}
