package bidrequests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/bidrequestservice"
	"github.com/GlebRadaev/chitledger/pkg/auth"
	"github.com/GlebRadaev/chitledger/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, schemeID, userID, bidAmount string) (*domain.BidRequest, error)
	ListMine(ctx context.Context, userID string) ([]domain.BidRequest, error)
	List(ctx context.Context) ([]domain.BidRequest, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) (*domain.BidRequest, error)
	Delete(ctx context.Context, id string) error
}

type BidRequestHandler struct {
	bidRequestService Service
}

func New(bidRequestService Service) *BidRequestHandler {
	return &BidRequestHandler{
		bidRequestService: bidRequestService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bidrequestservice.ErrSchemeNotFound), errors.Is(err, bidrequestservice.ErrBidRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bidrequestservice.ErrPendingExists), errors.Is(err, bidrequestservice.ErrNotPending):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bidrequestservice.ErrNotMember):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bidrequestservice.ErrInvalidStatus), errors.Is(err, chit.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chit.ErrNegativeAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Ask to take the next auction
//	@Description	Approved members only. At most one pending request per member and scheme.
//	@Tags			Bid requests
//	@Accept			json
//	@Produce		json
//	@Param			schemeID	path	string					true	"Scheme id"
//	@Param			request		body	dto.CreateBidRequestDTO	false	"Optional offer"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BidRequestDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount"
//	@Failure		403	{object}	utils.Response	"Not an approved member"
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		409	{object}	utils.Response	"A pending request exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/bid-requests [post]
func (h *BidRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateBidRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	b, err := h.bidRequestService.Create(r.Context(), chi.URLParam(r, "schemeID"), session.UserID, string(req.BidAmount))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromBidRequest(*b))
}

// ListMine godoc
//
//	@Summary		Bid requests of the current user
//	@Tags			Bid requests
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BidRequestDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bid-requests [get]
func (h *BidRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	bs, err := h.bidRequestService.ListMine(r.Context(), session.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBidRequests(bs))
}

// List godoc
//
//	@Summary		All bid requests
//	@Tags			Bid requests
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BidRequestDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bid-requests [get]
func (h *BidRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	bs, err := h.bidRequestService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBidRequests(bs))
}

// Approve godoc
//
//	@Summary		Approve a pending bid request
//	@Tags			Bid requests
//	@Produce		json
//	@Param			id	path	string	true	"Bid request id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Bid request not found"
//	@Failure		409	{object}	utils.Response	"Already decided"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bid-requests/{id}/approve [put]
func (h *BidRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.bidRequestService.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bid request approved"})
}

// Reject godoc
//
//	@Summary		Reject a pending bid request
//	@Tags			Bid requests
//	@Produce		json
//	@Param			id	path	string	true	"Bid request id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Bid request not found"
//	@Failure		409	{object}	utils.Response	"Already decided"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bid-requests/{id}/reject [put]
func (h *BidRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if err := h.bidRequestService.Reject(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bid request rejected"})
}

// Update godoc
//
//	@Summary		Set the status of a bid request
//	@Description	Admin override. Any of pending, approved or rejected may be set.
//	@Tags			Bid requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Bid request id"
//	@Param			request	body	dto.UpdateBidRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BidRequestDTO
//	@Failure		400	{object}	utils.Response	"Invalid status"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Bid request not found"
//	@Failure		409	{object}	utils.Response	"A pending request exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bid-requests/{id} [put]
func (h *BidRequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	b, err := h.bidRequestService.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromBidRequest(*b))
}

// Delete godoc
//
//	@Summary		Delete a bid request
//	@Tags			Bid requests
//	@Param			id	path	string	true	"Bid request id"
//	@Security		BearerAuth
//	@Success		204	"Bid request deleted"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Bid request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bid-requests/{id} [delete]
func (h *BidRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.bidRequestService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
