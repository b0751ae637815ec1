package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/trips/:id/manifest
//
// Default response is JSON rows; ?format=pdf streams the printable manifest.
func (h *API) TripManifest(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if c.Query("format") == "pdf" {
		data, filename, err := h.Manifests.RenderPDF(ctx, id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/pdf", data)
		return
	}

	rows, err := h.Manifests.Generate(ctx, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
