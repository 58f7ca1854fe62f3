package handler

import (
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportSvc service.ExportService
}

func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportSvc: exportSvc,
	}
}

// Download 以附件形式下载 CSV
func (h *ExportHandler) Download(c *gin.Context) {
	f, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exportSvc.Export(c.Request.Context(), c.Param("kind"), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, consts.CSVContentType+"; charset=utf-8", file.Data)
}

// Archive 归档到对象存储
func (h *ExportHandler) Archive(c *gin.Context) {
	f, err := bindFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.exportSvc.Archive(c.Request.Context(), c.Param("kind"), f)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
