package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/services"
	"herdshare/internal/snapshot"
)

// SnapshotHandler handles whole-ledger export and import.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Export handles serializing the entire ledger into one versioned document.
// @Summary     Export snapshot
// @Description Export the entire ledger as a versioned snapshot document
// @Tags        snapshot
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Acting user ID"
// @Success     200 {object} snapshot.Document "Ledger snapshot"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshot [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	doc, err := h.snapshotService.Export()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Import handles replacing the entire ledger with a snapshot document.
// Last-writer-wins; there is no merging.
// @Summary     Import snapshot
// @Description Replace the entire ledger with the posted snapshot document
// @Tags        snapshot
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string            true "Acting user ID"
// @Param       request   body   snapshot.Document true "Ledger snapshot"
// @Success     200 {object} map[string]string "Import result"
// @Failure     400 {object} ErrorResponse "Malformed or unsupported snapshot"
// @Failure     401 {object} ErrorResponse "Unknown user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshot [post]
func (h *SnapshotHandler) Import(c *gin.Context) {
	var doc snapshot.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrSnapshotInvalid, err.Error()))
		return
	}

	if err := h.snapshotService.Import(&doc); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}
