package handlers

import (
	"net/http"
	"strings"

	response "bathroom_quote_saver/internal/adapter/http/dto/response"
	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/pkg"

	"github.com/gin-gonic/gin"
)

// SupplierHandler serves the static material supplier directory.

type SupplierHandler struct{}

func NewSupplierHandler() *SupplierHandler {
	return &SupplierHandler{}
}

// GetSuppliers godoc
// @Summary List material suppliers for a component
// @Tags suppliers
// @Produce json
// @Param component path string true "Component key (e.g. tiling)"
// @Success 200 {object} response.SuppliersResponse
// @Router /api/suppliers/{component} [get]
func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	component := strings.TrimSpace(c.Param("component"))

	suppliers, ok := entities.SuppliersForComponent(component)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("COMPONENT_NOT_FOUND", "Component not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuppliersResponse{
		Component: component,
		Suppliers: suppliers,
	})
}
