package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legendscr/internal/services"
	"legendscr/pkg/utils"
)

type DistrictsController struct {
	districtService services.DistrictServiceInterface
}

func NewDistrictsController(districtService services.DistrictServiceInterface) *DistrictsController {
	return &DistrictsController{
		districtService: districtService,
	}
}

// GetAllDistricts godoc
// @Summary List districts
// @Tags Districts
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.DistrictResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /districts/ [get]
func (dc *DistrictsController) GetAllDistricts(c *gin.Context) {
	districts, err := dc.districtService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, districts, "Lista de distritos obtenida correctamente")
}

// GetDistrictByID godoc
// @Summary Get a district
// @Tags Districts
// @Produce json
// @Param district_id path int true "District id"
// @Success 200 {object} utils.APIResponse{data=response_models.DistrictResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /districts/{district_id} [get]
func (dc *DistrictsController) GetDistrictByID(c *gin.Context) {
	id, ok := intParam(c, "district_id")
	if !ok {
		return
	}

	district, err := dc.districtService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, district, "Distrito obtenido correctamente.")
}

// GetDistrictsByCantonName godoc
// @Summary List the districts of a canton
// @Tags Districts
// @Produce json
// @Param canton_name path string true "Canton name"
// @Success 200 {object} utils.APIResponse{data=[]response_models.DistrictResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /districts/by-canton/{canton_name} [get]
func (dc *DistrictsController) GetDistrictsByCantonName(c *gin.Context) {
	districts, err := dc.districtService.GetByCanton(c.Request.Context(), c.Param("canton_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, districts, "Lista de distritos obtenida correctamente")
}

// GetDistrictsByCantonID godoc
// @Summary List the districts of a canton by id
// @Tags Districts
// @Produce json
// @Param canton_id path int true "Canton id"
// @Success 200 {object} utils.APIResponse{data=[]response_models.DistrictResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /districts/by-canton-id/{canton_id} [get]
func (dc *DistrictsController) GetDistrictsByCantonID(c *gin.Context) {
	cantonID, ok := intParam(c, "canton_id")
	if !ok {
		return
	}

	districts, err := dc.districtService.GetByCantonID(c.Request.Context(), cantonID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, districts, "Lista de distritos obtenida correctamente")
}
