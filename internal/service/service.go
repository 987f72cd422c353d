package service

import (
	"github.com/GlebRadaev/chitledger/internal/config"
	"github.com/GlebRadaev/chitledger/internal/handlers/auth"
	"github.com/GlebRadaev/chitledger/internal/handlers/bidrequests"
	"github.com/GlebRadaev/chitledger/internal/handlers/contributions"
	"github.com/GlebRadaev/chitledger/internal/handlers/imports"
	"github.com/GlebRadaev/chitledger/internal/handlers/ledger"
	"github.com/GlebRadaev/chitledger/internal/handlers/reports"
	"github.com/GlebRadaev/chitledger/internal/handlers/schemes"

	pkgauth "github.com/GlebRadaev/chitledger/pkg/auth"

	"github.com/GlebRadaev/chitledger/internal/repo"
	authservice "github.com/GlebRadaev/chitledger/internal/service/authservice"
	bidrequestservice "github.com/GlebRadaev/chitledger/internal/service/bidrequestservice"
	contributionservice "github.com/GlebRadaev/chitledger/internal/service/contributionservice"
	importservice "github.com/GlebRadaev/chitledger/internal/service/importservice"
	ledgerservice "github.com/GlebRadaev/chitledger/internal/service/ledgerservice"
	reportservice "github.com/GlebRadaev/chitledger/internal/service/reportservice"
	schemeservice "github.com/GlebRadaev/chitledger/internal/service/schemeservice"
)

type Services struct {
	AuthService         auth.Service
	SchemeService       schemes.Service
	LedgerService       ledger.Service
	ContributionService contributions.Service
	ReportService       reports.Service
	ImportService       imports.Service
	BidRequestService   bidrequests.Service
}

func New(cfg *config.Config, repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(), jwtService, cfg.TokenTTL, cfg.AdminEmails)
	schemeService := schemeservice.New(repo.SchemeRepo, repo.ContributionRepo, repo.TxManager)
	ledgerService := ledgerservice.New(repo.GeneratedRowRepo, repo.SchemeRepo, repo.ContributionRepo)
	contributionService := contributionservice.New(repo.ContributionRepo, repo.SchemeRepo)
	reportService := reportservice.New(repo.SchemeRepo, repo.GeneratedRowRepo, repo.ContributionRepo)
	bidRequestService := bidrequestservice.New(repo.BidRequestRepo, repo.SchemeRepo)
	importService := importservice.New(repo.UserRepo, repo.SchemeRepo, repo.GeneratedRowRepo, repo.ContributionRepo, repo.TxManager)

	return &Services{
		AuthService:         authService,
		SchemeService:       schemeService,
		LedgerService:       ledgerService,
		ContributionService: contributionService,
		ReportService:       reportService,
		ImportService:       importService,
		BidRequestService:   bidRequestService,
	}
}
