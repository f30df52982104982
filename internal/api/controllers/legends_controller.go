package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legendscr/internal/models/request_models"
	"legendscr/internal/services"
	"legendscr/pkg/utils"
)

const (
	msgInvalidLegendBody = "Formato de solicitud inválido"
	msgInvalidLegendID   = "El identificador de la leyenda debe ser un UUID válido"
)

type LegendsController struct {
	legendService services.LegendServiceInterface
}

func NewLegendsController(legendService services.LegendServiceInterface) *LegendsController {
	return &LegendsController{
		legendService: legendService,
	}
}

// GetAllLegends godoc
// @Summary List legends
// @Tags Legends
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.LegendResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /legends/ [get]
func (lc *LegendsController) GetAllLegends(c *gin.Context) {
	legends, err := lc.legendService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, legends, "Lista de leyendas obtenida correctamente")
}

// GetLegendByID godoc
// @Summary Get a legend
// @Tags Legends
// @Produce json
// @Param legend_id path string true "Legend UUID"
// @Success 200 {object} utils.APIResponse{data=response_models.LegendResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /legends/{legend_id} [get]
func (lc *LegendsController) GetLegendByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("legend_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidLegendID)
		return
	}

	legend, err := lc.legendService.GetByID(c.Request.Context(), id.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, legend, "Leyenda obtenida correctamente.")
}

// GetLegendsByDistrictID godoc
// @Summary List the legends of a district
// @Tags Legends
// @Produce json
// @Param district_id path int true "District id"
// @Success 200 {object} utils.APIResponse{data=[]response_models.LegendResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /legends/by-district-id/{district_id} [get]
func (lc *LegendsController) GetLegendsByDistrictID(c *gin.Context) {
	districtID, ok := intParam(c, "district_id")
	if !ok {
		return
	}

	legends, err := lc.legendService.GetByDistrictID(c.Request.Context(), districtID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, legends, "Lista de leyendas obtenida correctamente")
}

// CreateLegend godoc
// @Summary Create a legend
// @Description The legend is stored active under a generated UUID
// @Tags Legends
// @Accept json
// @Produce json
// @Param body body request_models.CreateLegendRequest true "Legend"
// @Success 201 {object} utils.APIResponse{data=response_models.LegendResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /legends/ [post]
func (lc *LegendsController) CreateLegend(c *gin.Context) {
	var req request_models.CreateLegendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Date.Time().IsZero() {
		utils.RespondError(c, http.StatusBadRequest, msgInvalidLegendBody)
		return
	}

	legend, err := lc.legendService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, legend, "Leyenda creada correctamente.")
}
