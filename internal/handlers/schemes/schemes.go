package schemes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/chitledger/internal/chit"
	"github.com/GlebRadaev/chitledger/internal/domain"
	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/schemeservice"
	"github.com/GlebRadaev/chitledger/pkg/auth"
	"github.com/GlebRadaev/chitledger/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context) ([]domain.Scheme, error)
	Get(ctx context.Context, schemeID string) (*schemeservice.Detail, error)
	Create(ctx context.Context, in schemeservice.CreateInput) (*domain.Scheme, error)
	Join(ctx context.Context, schemeID, userID string) error
	ListPending(ctx context.Context) ([]domain.SchemeMember, error)
	Approve(ctx context.Context, schemeID, userID string) error
	Reject(ctx context.Context, schemeID, userID string) error
}

type SchemeHandler struct {
	schemeService Service
}

func New(schemeService Service) *SchemeHandler {
	return &SchemeHandler{
		schemeService: schemeService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schemeservice.ErrSchemeNotFound), errors.Is(err, schemeservice.ErrJoinRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, schemeservice.ErrAlreadyJoined), errors.Is(err, schemeservice.ErrSchemeFull):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, schemeservice.ErrInvalidScheme):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chit.ErrNegativeAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListSchemes godoc
//
//	@Summary		List chit schemes
//	@Tags			Schemes
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SchemeDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes [get]
func (h *SchemeHandler) ListSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.schemeService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	resp := make([]dto.SchemeDTO, 0, len(schemes))
	for i := range schemes {
		resp = append(resp, dto.FromScheme(&schemes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateScheme godoc
//
//	@Summary		Create a chit scheme
//	@Tags			Schemes
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateSchemeRequestDTO	true	"Scheme"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SchemeDTO
//	@Failure		400	{object}	utils.Response	"Invalid scheme"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		422	{object}	utils.Response	"Negative amount"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes [post]
func (h *SchemeHandler) CreateScheme(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSchemeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	scheme, err := h.schemeService.Create(r.Context(), schemeservice.CreateInput{
		Name:           req.Name,
		TotalAmount:    req.TotalAmount.Float64(),
		MonthlyAmount:  req.Amount.Float64(),
		DurationMonths: req.DurationInMonths,
		TotalMembers:   req.TotalMembers,
		StartDate:      req.StartDate,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromScheme(scheme))
}

// GetScheme godoc
//
//	@Summary		Scheme with member standings
//	@Tags			Schemes
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SchemeDetailDTO
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID} [get]
func (h *SchemeHandler) GetScheme(w http.ResponseWriter, r *http.Request) {
	detail, err := h.schemeService.Get(r.Context(), chi.URLParam(r, "schemeID"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	members := make([]dto.MemberStatusDTO, 0, len(detail.Members))
	for _, m := range detail.Members {
		members = append(members, dto.FromMemberStatus(m.SchemeMember, m.MemberStatus))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SchemeDetailDTO{
		SchemeDTO: dto.FromScheme(detail.Scheme),
		Members:   members,
	})
}

// JoinScheme godoc
//
//	@Summary		Request to join a scheme
//	@Description	The request stays pending until an admin approves it.
//	@Tags			Schemes
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Security		BearerAuth
//	@Success		202	{object}	utils.Response	"Join request sent"
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		409	{object}	utils.Response	"Already joined or scheme full"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{schemeID}/join [post]
func (h *SchemeHandler) JoinScheme(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.schemeService.Join(r.Context(), chi.URLParam(r, "schemeID"), session.UserID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Message: "Join request sent"})
}

// ListJoinRequests godoc
//
//	@Summary		Pending join requests
//	@Tags			Join requests
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.JoinRequestDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/join-requests/pending [get]
func (h *SchemeHandler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	pending, err := h.schemeService.ListPending(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	resp := make([]dto.JoinRequestDTO, 0, len(pending))
	for _, m := range pending {
		resp = append(resp, dto.FromJoinRequest(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ApproveJoinRequest godoc
//
//	@Summary		Approve a join request
//	@Tags			Join requests
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Param			userID		path	string	true	"User id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Member approved"
//	@Failure		404	{object}	utils.Response	"Join request not found"
//	@Failure		409	{object}	utils.Response	"Scheme full"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/join-requests/{schemeID}/{userID}/approve [put]
func (h *SchemeHandler) ApproveJoinRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.schemeService.Approve(r.Context(), chi.URLParam(r, "schemeID"), chi.URLParam(r, "userID")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Member approved"})
}

// RejectJoinRequest godoc
//
//	@Summary		Reject a join request
//	@Tags			Join requests
//	@Produce		json
//	@Param			schemeID	path	string	true	"Scheme id"
//	@Param			userID		path	string	true	"User id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Join request rejected"
//	@Failure		404	{object}	utils.Response	"Join request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/join-requests/{schemeID}/{userID}/reject [put]
func (h *SchemeHandler) RejectJoinRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.schemeService.Reject(r.Context(), chi.URLParam(r, "schemeID"), chi.URLParam(r, "userID")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Join request rejected"})
}
