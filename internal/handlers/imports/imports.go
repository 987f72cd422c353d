package imports

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/importservice"
	"github.com/GlebRadaev/chitledger/pkg/utils"
)

const maxImportBytes = 32 << 20

type Service interface {
	Import(ctx context.Context, in importservice.Input) (*importservice.Result, error)
}

type ImportHandler struct {
	importService Service
}

func New(importService Service) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// Import godoc
//
//	@Summary		Import a legacy backend export
//	@Description	Upserts chits, members, generated rows and contributions in one transaction. Unreadable records are skipped and counted.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ImportRequestDTO	true	"Legacy export"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ImportResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/import [post]
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportRequestDTO
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBytes)).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.importService.Import(r.Context(), importservice.Input{
		Chits:         req.Chits,
		GeneratedRows: req.GeneratedRows,
		Contributions: req.Contributions,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ImportResponseDTO{
		Schemes:              result.Schemes,
		Members:              result.Members,
		Rows:                 result.Rows,
		Contributions:        result.Contributions,
		SkippedSchemes:       result.SkippedSchemes,
		SkippedMembers:       result.SkippedMembers,
		SkippedRows:          result.SkippedRows,
		SkippedContributions: result.SkippedContributions,
	})
}
