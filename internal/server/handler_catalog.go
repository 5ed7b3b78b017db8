package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/threadline/internal/catalog/domain"
)

func (s *Server) listCategories(c *gin.Context) {
	items, err := s.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "categories retrieved")
}

func (s *Server) createCategory(c *gin.Context) {
	var req domain.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := s.catalog.CreateCategory(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, category, "category created")
}

func (s *Server) updateCategory(c *gin.Context) {
	var req domain.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = c.Param("id")

	category, err := s.catalog.UpdateCategory(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, category, "category updated")
}

func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "category deleted")
}

type unlockCategoryRequest struct {
	Password string `json:"password"`
}

func (s *Server) unlockCategory(c *gin.Context) {
	var req unlockCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := s.catalog.UnlockCategory(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, category, "category unlocked")
}

func (s *Server) listSubCategories(c *gin.Context) {
	items, err := s.catalog.ListSubCategories(c.Request.Context(), c.Query("category_id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "sub categories retrieved")
}

func (s *Server) createSubCategory(c *gin.Context) {
	var req domain.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.catalog.CreateSubCategory(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, sub, "sub category created")
}

func (s *Server) deleteSubCategory(c *gin.Context) {
	if err := s.catalog.DeleteSubCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "sub category deleted")
}

func (s *Server) listShirts(c *gin.Context) {
	items, err := s.catalog.ListShirts(c.Request.Context(), domain.ListShirtsRequest{
		CategoryID:    c.Query("category_id"),
		SubCategoryID: c.Query("sub_category_id"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "shirts retrieved")
}

func (s *Server) getShirt(c *gin.Context) {
	shirt, err := s.catalog.GetShirt(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, shirt, "shirt retrieved")
}

func (s *Server) createShirt(c *gin.Context) {
	var req domain.CreateShirtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	shirt, err := s.catalog.CreateShirt(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, shirt, "shirt created")
}

func (s *Server) updateShirt(c *gin.Context) {
	var req domain.UpdateShirtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = c.Param("id")

	shirt, err := s.catalog.UpdateShirt(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, shirt, "shirt updated")
}

func (s *Server) deleteShirt(c *gin.Context) {
	if err := s.catalog.DeleteShirt(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "shirt deleted")
}

func (s *Server) listCustomizers(c *gin.Context) {
	items, err := s.catalog.ListCustomizers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "customizers retrieved")
}

func (s *Server) getCustomizer(c *gin.Context) {
	customizer, err := s.catalog.GetCustomizer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, customizer, "customizer retrieved")
}

func (s *Server) createCustomizer(c *gin.Context) {
	var req domain.CreateCustomizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	customizer, err := s.catalog.CreateCustomizer(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, customizer, "customizer created")
}

func (s *Server) deleteCustomizer(c *gin.Context) {
	if err := s.catalog.DeleteCustomizer(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "customizer deleted")
}

func (s *Server) listPatterns(c *gin.Context) {
	items, err := s.catalog.ListPatterns(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "patterns retrieved")
}

func (s *Server) createPattern(c *gin.Context) {
	var req domain.CreatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	pattern, err := s.catalog.CreatePattern(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, pattern, "pattern created")
}

func (s *Server) deletePattern(c *gin.Context) {
	if err := s.catalog.DeletePattern(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "pattern deleted")
}

func (s *Server) listColors(c *gin.Context) {
	items, err := s.catalog.ListColors(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "colors retrieved")
}

func (s *Server) createColor(c *gin.Context) {
	var req domain.CreateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	color, err := s.catalog.CreateColor(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, color, "color created")
}

func (s *Server) deleteColor(c *gin.Context) {
	if err := s.catalog.DeleteColor(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "color deleted")
}

func (s *Server) listFonts(c *gin.Context) {
	items, err := s.catalog.ListFonts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "fonts retrieved")
}

func (s *Server) createFont(c *gin.Context) {
	var req domain.CreateFontRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	font, err := s.catalog.CreateFont(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, font, "font created")
}

func (s *Server) deleteFont(c *gin.Context) {
	if err := s.catalog.DeleteFont(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "font deleted")
}
