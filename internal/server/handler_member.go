package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/threadline/internal/member/domain"
)

func (s *Server) signup(c *gin.Context) {
	var req domain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	member, err := s.members.Signup(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, member, "signup received, pending review")
}

func (s *Server) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := s.members.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, session, "login successful")
}

func (s *Server) logout(c *gin.Context) {
	if err := s.members.Logout(c.Request.Context(), sessionToken(c)); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "logged out")
}

func (s *Server) listMembers(c *gin.Context) {
	items, err := s.members.ListMembers(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "members retrieved")
}

func (s *Server) approveMember(c *gin.Context) {
	member, err := s.members.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, member, "member approved")
}

func (s *Server) rejectMember(c *gin.Context) {
	member, err := s.members.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, member, "member rejected")
}
