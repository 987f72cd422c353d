package contributions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/contributionservice"
	"github.com/GlebRadaev/chitledger/pkg/auth"
	"github.com/GlebRadaev/chitledger/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Pay(ctx context.Context, schemeID, userID, amount string) (*domain.Contribution, error)
	ListMine(ctx context.Context, userID string) ([]domain.Contribution, error)
	ListScheme(ctx context.Context, schemeID string) ([]domain.Contribution, error)
	MemberStatus(ctx context.Context, schemeID, userID string) (*contributionservice.MemberStatus, error)
	RequestVerification(ctx context.Context, contributionID, userID string) (*domain.Contribution, error)
	ListVerificationRequests(ctx context.Context) ([]domain.Contribution, error)
	ApproveVerification(ctx context.Context, contributionID string) error
	RejectVerification(ctx context.Context, contributionID, reason string) error
}

type ContributionHandler struct {
	contributionService Service
}

func New(contributionService Service) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contributionservice.ErrSchemeNotFound), errors.Is(err, contributionservice.ErrContributionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, contributionservice.ErrAlreadySettled),
		errors.Is(err, contributionservice.ErrVerificationRequested),
		errors.Is(err, contributionservice.ErrNoVerificationRequest):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, contributionservice.ErrNotMember):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, contributionservice.ErrAmountRequired),
		errors.Is(err, contributionservice.ErrReasonTooLong),
		errors.Is(err, chit.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chit.ErrNegativeAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Pay godoc
//
//	@Summary		Submit a contribution
//	@Description	Records a pending payment. Its status is settled by the payment gateway sync.
//	@Tags			Contributions
//	@Accept			json
//	@Produce		json
//	@Param			schemeID	path	string				true	"Scheme id"
//	@Param			request		body	dto.PayRequestDTO	true	"Amount"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.ContributionDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount"
//	@Failure		403	{object}	utils.Response	"Not an approved member"
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/contributions [post]
func (h *ContributionHandler) Pay(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.PayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c, err := h.contributionService.Pay(r.Context(), chi.URLParam(r, "schemeID"), session.UserID, string(req.Amount))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.FromContribution(*c))
}

// ListMine godoc
//
//	@Summary		Contributions of the current user
//	@Tags			Contributions
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ContributionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contributions [get]
func (h *ContributionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cs, err := h.contributionService.ListMine(r.Context(), session.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromContributions(cs))
}

// ListScheme godoc
//
//	@Summary		Contributions to a scheme
//	@Tags			Contributions
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ContributionDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/contributions [get]
func (h *ContributionHandler) ListScheme(w http.ResponseWriter, r *http.Request) {
	cs, err := h.contributionService.ListScheme(r.Context(), chi.URLParam(r, "schemeID"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromContributions(cs))
}

// MemberStatus godoc
//
//	@Summary		Payment standing of one member
//	@Description	Members may read their own standing. Admins may read anyone's.
//	@Tags			Contributions
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Param			userID		path	string	true	"User id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MemberStatusDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/members/{userID}/status [get]
func (h *ContributionHandler) MemberStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	userID := chi.URLParam(r, "userID")
	if userID != session.UserID && !session.IsAdmin() {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	status, err := h.contributionService.MemberStatus(r.Context(), chi.URLParam(r, "schemeID"), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromMemberStatus(status.Member, status.MemberStatus))
}

// RequestVerification godoc
//
//	@Summary		Ask an admin to verify a payment
//	@Description	For pending payments the gateway never settled. Only the payer may ask.
//	@Tags			Contributions
//	@Produce		json
//	@Param			contributionID	path	string	true	"Contribution id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ContributionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Contribution not found"
//	@Failure		409	{object}	utils.Response	"Already settled or requested"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contributions/{contributionID}/request-verification [patch]
func (h *ContributionHandler) RequestVerification(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c, err := h.contributionService.RequestVerification(r.Context(), chi.URLParam(r, "contributionID"), session.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromContribution(*c))
}

// ListVerificationRequests godoc
//
//	@Summary		Payments awaiting verification
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ContributionDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments/verification-requests [get]
func (h *ContributionHandler) ListVerificationRequests(w http.ResponseWriter, r *http.Request) {
	cs, err := h.contributionService.ListVerificationRequests(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromContributions(cs))
}

// ApproveVerification godoc
//
//	@Summary		Confirm a payment by hand
//	@Tags			Payments
//	@Produce		json
//	@Param			contributionID	path	string	true	"Contribution id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Contribution not found"
//	@Failure		409	{object}	utils.Response	"No verification requested"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments/{contributionID}/approve [put]
func (h *ContributionHandler) ApproveVerification(w http.ResponseWriter, r *http.Request) {
	if err := h.contributionService.ApproveVerification(r.Context(), chi.URLParam(r, "contributionID")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment approved"})
}

// RejectVerification godoc
//
//	@Summary		Reject a payment
//	@Description	Marks the contribution failed. The reason is shown to the member.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			contributionID	path	string						true	"Contribution id"
//	@Param			request			body	dto.RejectPaymentRequestDTO	false	"Reason"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Contribution not found"
//	@Failure		409	{object}	utils.Response	"No verification requested"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments/{contributionID}/reject [put]
func (h *ContributionHandler) RejectVerification(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectPaymentRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if err := h.contributionService.RejectVerification(r.Context(), chi.URLParam(r, "contributionID"), req.Reason); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment rejected"})
}
