package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legendscr/internal/services"
	"legendscr/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
	}
}

// GetAllCategories godoc
// @Summary List legend categories
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.CategoryResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /categories/ [get]
func (cc *CategoriesController) GetAllCategories(c *gin.Context) {
	categories, err := cc.categoryService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, categories, "Lista de categorías obtenida correctamente")
}
