package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legendscr/internal/services"
	"legendscr/pkg/utils"
)

const msgInvalidProvinceID = "El identificador único de la provincia no puede ser nulo y debe ser un número positivo"

type ProvincesController struct {
	provinceService services.ProvinceServiceInterface
}

func NewProvincesController(provinceService services.ProvinceServiceInterface) *ProvincesController {
	return &ProvincesController{
		provinceService: provinceService,
	}
}

// GetAllProvinces godoc
// @Summary List provinces
// @Description Fetch every province ordered by id
// @Tags Provinces
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.ProvinceResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /provinces/ [get]
func (p *ProvincesController) GetAllProvinces(c *gin.Context) {
	provinces, err := p.provinceService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, provinces, "Lista de provincias obtenida correctamente")
}

// GetProvinceByID godoc
// @Summary Get a province
// @Tags Provinces
// @Produce json
// @Param province_id path int true "Province id (positive)"
// @Success 200 {object} utils.APIResponse{data=response_models.ProvinceResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /provinces/{province_id} [get]
func (p *ProvincesController) GetProvinceByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("province_id"))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidProvinceID)
		return
	}

	province, err := p.provinceService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, province, "Provincia obtenida correctamente.")
}
