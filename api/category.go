package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizuna-community/kizuna-api/schema"
)

// listCategories is the API for browsing the category catalog. `q` filters
// by keyword, `deliverable=true` narrows to categories that support
// deliveries.
func (s *Server) listCategories(c *gin.Context) {
	var categories []schema.Category
	var err error

	if keyword := c.Query("q"); keyword != "" {
		categories, err = s.mongoStore.SearchCategories(keyword)
	} else if c.Query("deliverable") == "true" {
		categories, err = s.mongoStore.ListDeliverableCategories()
	} else {
		categories, err = s.mongoStore.ListCategories()
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": categories})
}

// createCategory is an internal only api to add a category to the catalog
func (s *Server) createCategory(c *gin.Context) {
	var category schema.Category

	if err := c.BindJSON(&category); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.CreateCategory(category); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
