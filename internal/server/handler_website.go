package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/threadline/internal/website/domain"
)

func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.website.GetSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "website settings retrieved")
}

func (s *Server) updateSettings(c *gin.Context) {
	var req domain.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := s.website.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, settings, "website settings updated")
}

func (s *Server) addMenuItem(c *gin.Context) {
	var req domain.AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := s.website.AddMenuItem(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, settings, "menu item added")
}

type updateMenuRequest struct {
	NavigationMenu []domain.MenuItem `json:"navigation_menu"`
}

func (s *Server) updateMenuItems(c *gin.Context) {
	var req updateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.website.UpdateMenuItems(c.Request.Context(), req.NavigationMenu)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, result, "navigation menu updated")
}

type deleteMenuRequest struct {
	IDs []int `json:"ids"`
}

func (s *Server) deleteMenuItems(c *gin.Context) {
	var req deleteMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.website.DeleteMenuItems(c.Request.Context(), req.IDs)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, result, "menu items deleted")
}

func (s *Server) listBanners(c *gin.Context) {
	items, err := s.website.ListBanners(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "banners retrieved")
}

func (s *Server) createBanner(c *gin.Context) {
	var req domain.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	banner, err := s.website.CreateBanner(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, banner, "banner created")
}

func (s *Server) updateBanner(c *gin.Context) {
	var req domain.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = c.Param("id")

	banner, err := s.website.UpdateBanner(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, banner, "banner updated")
}

func (s *Server) deleteBanner(c *gin.Context) {
	if err := s.website.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "banner deleted")
}

func (s *Server) listBlogs(c *gin.Context) {
	items, err := s.website.ListBlogs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "blogs retrieved")
}

func (s *Server) getBlog(c *gin.Context) {
	blog, err := s.website.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, blog, "blog retrieved")
}

func (s *Server) createBlog(c *gin.Context) {
	var req domain.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := s.website.CreateBlog(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, blog, "blog created")
}

func (s *Server) updateBlog(c *gin.Context) {
	var req domain.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = c.Param("id")

	blog, err := s.website.UpdateBlog(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, blog, "blog updated")
}

func (s *Server) deleteBlog(c *gin.Context) {
	if err := s.website.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "blog deleted")
}

func (s *Server) listTestimonials(c *gin.Context) {
	items, err := s.website.ListTestimonials(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "testimonials retrieved")
}

func (s *Server) createTestimonial(c *gin.Context) {
	var req domain.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	testimonial, err := s.website.CreateTestimonial(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, testimonial, "testimonial created")
}

func (s *Server) deleteTestimonial(c *gin.Context) {
	if err := s.website.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "testimonial deleted")
}

func (s *Server) listProducts(c *gin.Context) {
	items, err := s.website.ListProducts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, items, "products retrieved")
}

func (s *Server) createProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := s.website.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusCreated, product, "product created")
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.website.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, nil, "product deleted")
}

func (s *Server) inventoryStats(c *gin.Context) {
	stats, err := s.website.InventoryStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, http.StatusOK, stats, "inventory stats retrieved")
}
