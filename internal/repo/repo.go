package repo

import (
	"github.com/GlebRadaev/chitledger/internal/pg"
	bidrequestrepo "github.com/GlebRadaev/chitledger/internal/repo/bidrequest-repo"
	contributionrepo "github.com/GlebRadaev/chitledger/internal/repo/contribution-repo"
	generatedrowrepo "github.com/GlebRadaev/chitledger/internal/repo/generatedrow-repo"
	schemerepo "github.com/GlebRadaev/chitledger/internal/repo/scheme-repo"
	userrepo "github.com/GlebRadaev/chitledger/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	SchemeRepo       *schemerepo.Repository
	GeneratedRowRepo *generatedrowrepo.Repository
	ContributionRepo *contributionrepo.Repository
	BidRequestRepo   *bidrequestrepo.Repository
	TxManager        pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		SchemeRepo:       schemerepo.New(conn),
		GeneratedRowRepo: generatedrowrepo.New(conn, txManager),
		ContributionRepo: contributionrepo.New(conn),
		BidRequestRepo:   bidrequestrepo.New(conn),
		TxManager:        txManager,
	}
}
