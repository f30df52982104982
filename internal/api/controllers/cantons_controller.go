package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legendscr/internal/services"
	"legendscr/pkg/utils"
)

type CantonsController struct {
	cantonService services.CantonServiceInterface
}

func NewCantonsController(cantonService services.CantonServiceInterface) *CantonsController {
	return &CantonsController{
		cantonService: cantonService,
	}
}

// GetAllCantons godoc
// @Summary List cantons
// @Tags Cantons
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.CantonResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /cantons/ [get]
func (cc *CantonsController) GetAllCantons(c *gin.Context) {
	cantons, err := cc.cantonService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, cantons, "Lista de cantones obtenida correctamente")
}

// GetCantonByID godoc
// @Summary Get a canton
// @Tags Cantons
// @Produce json
// @Param canton_id path int true "Canton id"
// @Success 200 {object} utils.APIResponse{data=response_models.CantonResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cantons/{canton_id} [get]
func (cc *CantonsController) GetCantonByID(c *gin.Context) {
	id, ok := intParam(c, "canton_id")
	if !ok {
		return
	}

	canton, err := cc.cantonService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, canton, "Cantón obtenido correctamente.")
}

// GetCantonsByProvinceName godoc
// @Summary List the cantons of a province
// @Description Province name match ignores case and surrounding whitespace
// @Tags Cantons
// @Produce json
// @Param province_name path string true "Province name"
// @Success 200 {object} utils.APIResponse{data=[]response_models.CantonResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /cantons/by-province/{province_name} [get]
func (cc *CantonsController) GetCantonsByProvinceName(c *gin.Context) {
	cantons, err := cc.cantonService.GetByProvince(c.Request.Context(), c.Param("province_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, cantons, "Lista de cantones obtenida correctamente")
}

// GetCantonsByProvinceID godoc
// @Summary List the cantons of a province by id
// @Tags Cantons
// @Produce json
// @Param province_id path int true "Province id"
// @Success 200 {object} utils.APIResponse{data=[]response_models.CantonResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /cantons/by-province-id/{province_id} [get]
func (cc *CantonsController) GetCantonsByProvinceID(c *gin.Context) {
	provinceID, ok := intParam(c, "province_id")
	if !ok {
		return
	}

	cantons, err := cc.cantonService.GetByProvinceID(c.Request.Context(), provinceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, cantons, "Lista de cantones obtenida correctamente")
}
