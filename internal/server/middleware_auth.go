package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	memberdomain "github.com/smallbiznis/threadline/internal/member/domain"
)

const memberContextKey = "auth.member"

// AuthMiddleware resolves the bearer token to an approved member and aborts
// with 401 otherwise.
func AuthMiddleware(members memberdomain.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			respondErr(c, http.StatusUnauthorized, memberdomain.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		m, err := members.Authenticate(c.Request.Context(), token)
		if err != nil {
			respondErr(c, http.StatusUnauthorized, memberdomain.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		c.Set(memberContextKey, m)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func sessionToken(c *gin.Context) string {
	return bearerToken(c.GetHeader("Authorization"))
}

// RequireRole allows only authenticated members holding one of the given roles.
func RequireRole(roles ...memberdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := MemberFromContext(c)
		if !ok {
			respondErr(c, http.StatusUnauthorized, memberdomain.ErrUnauthorized.Error())
			c.Abort()
			return
		}
		for _, role := range roles {
			if m.Role == role {
				c.Next()
				return
			}
		}
		respondErr(c, http.StatusForbidden, memberdomain.ErrUnauthorized.Error())
		c.Abort()
	}
}

// MemberFromContext returns the authenticated member, if any.
func MemberFromContext(c *gin.Context) (*memberdomain.MemberResponse, bool) {
	v, ok := c.Get(memberContextKey)
	if !ok {
		return nil, false
	}
	m, ok := v.(*memberdomain.MemberResponse)
	return m, ok
}
