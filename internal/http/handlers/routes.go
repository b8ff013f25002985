package handlers

import (
	"net/http"
	"strings"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/routes-master
func GetRoutes(c *gin.Context) {
	routes, err := repositories.RouteRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /api/routes-master/:code
func GetRouteByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		RespondDomainError(c, domain.ValidationError{Field: "code", Msg: "required"})
		return
	}
	route, err := repositories.RouteRepository{}.GetByCode(code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// POST /api/routes-master
func CreateRoute(c *gin.Context) {
	var input models.Route
	if !BindJSONOrError(c, &input) {
		return
	}
	if strings.TrimSpace(input.RouteCode) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "routeCode", Msg: "required"})
		return
	}

	id, err := repositories.RouteRepository{}.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/routes-master/:id
func UpdateRoute(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.Route
	if !BindJSONOrError(c, &input) {
		return
	}
	input.ID = id

	if err := (repositories.RouteRepository{}).Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/routes-master/:id
func DeleteRoute(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := (repositories.RouteRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route deleted"})
}
