package repo

import (
	"github.com/birdfarm/birdfarm/internal/pg"
	balancerepo "github.com/birdfarm/birdfarm/internal/repo/balance-repo"
	birdrepo "github.com/birdfarm/birdfarm/internal/repo/bird-repo"
	bonusrepo "github.com/birdfarm/birdfarm/internal/repo/bonus-repo"
	flockrepo "github.com/birdfarm/birdfarm/internal/repo/flock-repo"
	paymentrepo "github.com/birdfarm/birdfarm/internal/repo/payment-repo"
	settingsrepo "github.com/birdfarm/birdfarm/internal/repo/settings-repo"
	userrepo "github.com/birdfarm/birdfarm/internal/repo/user-repo"
)

// Repositories holds one repository per aggregate. The concrete types are
// exposed because several services (and the background sweeps) consume
// different interface slices of the same repository.
type Repositories struct {
	UserRepo     *userrepo.Repository
	BalanceRepo  *balancerepo.Repository
	BirdRepo     *birdrepo.Repository
	FlockRepo    *flockrepo.Repository
	PaymentRepo  *paymentrepo.Repository
	BonusRepo    *bonusrepo.Repository
	SettingsRepo *settingsrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		BalanceRepo:  balancerepo.New(conn),
		BirdRepo:     birdrepo.New(conn),
		FlockRepo:    flockrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn),
		BonusRepo:    bonusrepo.New(conn),
		SettingsRepo: settingsrepo.New(conn),
	}
}
