package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/chitledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Service interface {
	Ledger(ctx context.Context, schemeID string) (*ledgerservice.Ledger, error)
	Breakdown(ctx context.Context, schemeID, bid, wallet string) (chit.Breakdown, error)
	Row(ctx context.Context, schemeID, rowID string) (*ledgerservice.RowDetail, error)
	Generate(ctx context.Context, schemeID string, in ledgerservice.GenerateInput) (*domain.GeneratedRow, error)
	Update(ctx context.Context, schemeID, rowID string, patch ledgerservice.RowPatch) (*domain.GeneratedRow, error)
	Delete(ctx context.Context, schemeID, rowID string) error
	Export(ctx context.Context, schemeID string) ([]byte, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrSchemeNotFound), errors.Is(err, ledgerservice.ErrRowNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledgerservice.ErrMissingRef), errors.Is(err, chit.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chit.ErrNegativeAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func rawString(r *chit.RawAmount) string {
	if r == nil {
		return ""
	}
	return string(*r)
}

// GetLedger godoc
//
//	@Summary		Scheme ledger
//	@Description	Generated rows newest first with running wallet totals and the auto payout projection.
//	@Tags			Ledger
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LedgerDTO
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/generated [get]
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.ledgerService.Ledger(r.Context(), chi.URLParam(r, "schemeID"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LedgerDTO{
		SchemeID: ledger.Scheme.ID,
		TCV:      ledger.Scheme.TotalAmount,
		Rows:     dto.FromLedgerRows(ledger.Rows),
	})
}

// GetBreakdown godoc
//
//	@Summary		Preview a bid breakdown
//	@Description	Unparseable amounts count as zero. A wallet-only query is inverted to a bid.
//	@Tags			Ledger
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Param			bid			query	string	false	"Bid amount"
//	@Param			wallet		query	string	false	"Wallet amount"
//	@Security		BearerAuth
//	@Success		200	{object}	chit.Breakdown
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		422	{object}	utils.Response	"Negative amount"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/breakdown [get]
func (h *LedgerHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	breakdown, err := h.ledgerService.Breakdown(r.Context(), chi.URLParam(r, "schemeID"), q.Get("bid"), q.Get("wallet"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, breakdown)
}

// GenerateRow godoc
//
//	@Summary		Record an auction cycle
//	@Description	The bid wins when both amounts are given. Amounts are validated strictly.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			schemeID	path	string						true	"Scheme id"
//	@Param			request		body	dto.GenerateRowRequestDTO	true	"Bid or wallet amount"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.GeneratedRowDTO
//	@Failure		400	{object}	utils.Response	"Amount is not a number"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		422	{object}	utils.Response	"Negative amount"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/generated [post]
func (h *LedgerHandler) GenerateRow(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateRowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	row, err := h.ledgerService.Generate(r.Context(), chi.URLParam(r, "schemeID"), ledgerservice.GenerateInput{
		Bid:    rawString(req.BidAmount),
		Wallet: rawString(req.WalletAmount),
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromGeneratedRow(*row))
}

// GetRow godoc
//
//	@Summary		Generated row with the month's collections
//	@Tags			Ledger
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Param			rowID		path	string	true	"Row id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RowDetailDTO
//	@Failure		404	{object}	utils.Response	"Row not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/generated/{rowID} [get]
func (h *LedgerHandler) GetRow(w http.ResponseWriter, r *http.Request) {
	detail, err := h.ledgerService.Row(r.Context(), chi.URLParam(r, "schemeID"), chi.URLParam(r, "rowID"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RowDetailDTO{
		Row:           dto.FromGeneratedRow(detail.Row),
		Contributions: dto.FromContributions(detail.Contributions),
		Collected:     detail.Collected,
		Pending:       detail.Pending,
	})
}

// UpdateRow godoc
//
//	@Summary		Edit a generated row
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			schemeID	path	string					true	"Scheme id"
//	@Param			rowID		path	string					true	"Row id"
//	@Param			request		body	dto.UpdateRowRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GeneratedRowDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Row not found"
//	@Failure		422	{object}	utils.Response	"Negative amount"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/generated/{rowID} [put]
func (h *LedgerHandler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	row, err := h.ledgerService.Update(r.Context(), chi.URLParam(r, "schemeID"), chi.URLParam(r, "rowID"), ledgerservice.RowPatch{
		ChitName:       req.ChitName,
		Date:           req.Date,
		WalletAmount:   req.WalletAmount,
		BidAmount:      req.BidAmount,
		Distributed:    req.Distributed,
		ReleasedAmount: req.ReleasedAmount,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromGeneratedRow(*row))
}

// DeleteRow godoc
//
//	@Summary		Delete a generated row
//	@Tags			Ledger
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Param			rowID		path	string	true	"Row id"
//	@Security		BearerAuth
//	@Success		204	"Row deleted"
//	@Failure		404	{object}	utils.Response	"Row not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/generated/{rowID} [delete]
func (h *LedgerHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerService.Delete(r.Context(), chi.URLParam(r, "schemeID"), chi.URLParam(r, "rowID")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportLedger godoc
//
//	@Summary		Download the ledger as a spreadsheet
//	@Tags			Ledger
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/generated/export [get]
func (h *LedgerHandler) ExportLedger(w http.ResponseWriter, r *http.Request) {
	schemeID := chi.URLParam(r, "schemeID")
	body, err := h.ledgerService.Export(r.Context(), schemeID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ledger-%s.xlsx"`, schemeID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zap.L().Error("can't write ledger export", zap.Error(err))
	}
}
