package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/traffic-backend-go/internal/service"
	"github.com/jengzang/traffic-backend-go/pkg/response"
)

// AdminHandler handles JWT-protected operational endpoints
type AdminHandler struct {
	ingest *service.IngestService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(ingest *service.IngestService) *AdminHandler {
	return &AdminHandler{ingest: ingest}
}

// TriggerIngest handles POST /api/v1/admin/ingest. It loads the CSV
// drops from the configured data directory into the archive.
func (h *AdminHandler) TriggerIngest(c *gin.Context) {
	summary, err := h.ingest.Run(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Ingest failed: "+err.Error())
		return
	}

	response.Success(c, summary)
}
