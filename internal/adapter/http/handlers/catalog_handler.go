package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "geoquote/internal/adapter/http/dto/response"
	"geoquote/internal/catalog"
	"geoquote/pkg"
)

// CatalogHandler serves the built-in industry presets. The presets are
// static so no use case sits behind this handler.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListIndustries returns every industry preset with its templates.
func (h *CatalogHandler) ListIndustries(c *gin.Context) {
	industries := catalog.Industries()
	out := make([]response.IndustryResponse, 0, len(industries))
	for _, ind := range industries {
		out = append(out, response.FromIndustry(ind))
	}

	c.JSON(http.StatusOK, out)
}

// GetIndustry returns one industry preset by id.
func (h *CatalogHandler) GetIndustry(c *gin.Context) {
	id := c.Param("industry_id")
	for _, ind := range catalog.Industries() {
		if ind.ID == id {
			c.JSON(http.StatusOK, response.FromIndustry(ind))
			return
		}
	}

	appErr := pkg.NewDomainErrorSimple("INDUSTRY_NOT_FOUND", "Industry not found", http.StatusNotFound)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
