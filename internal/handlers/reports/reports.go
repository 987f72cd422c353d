package reports

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/chitledger/internal/dto"
	"github.com/GlebRadaev/chitledger/internal/service/reportservice"
	"github.com/GlebRadaev/chitledger/pkg/utils"
)

type Service interface {
	Summary(ctx context.Context) (*reportservice.Report, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Summary godoc
//
//	@Summary		Admin report across all schemes
//	@Description	Totals use the latest generated row of every scheme.
//	@Tags			Reports
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReportDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/reports [get]
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Summary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := dto.ReportDTO{
		Schemes:        make([]dto.SchemeReportDTO, 0, len(report.Schemes)),
		TotalChits:     report.TotalSchemes,
		TotalTCV:       report.TotalTCV,
		TotalCollected: report.TotalCollected,
		TotalPending:   report.TotalPending,
		TotalWallet:    report.TotalWallet,
		TotalMembers:   report.TotalMembers,
	}
	for _, s := range report.Schemes {
		resp.Schemes = append(resp.Schemes, dto.SchemeReportDTO{
			SchemeID:  s.SchemeID,
			Name:      s.Name,
			TCV:       s.TCV,
			LatestBid: s.LatestBid,
			Breakdown: s.Breakdown,
			Collected: s.Collected,
			Pending:   s.Pending,
			Members:   s.Members,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
