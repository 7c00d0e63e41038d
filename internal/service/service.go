package service

import (
	"github.com/birdfarm/birdfarm/internal/handlers/admin"
	"github.com/birdfarm/birdfarm/internal/handlers/auth"
	"github.com/birdfarm/birdfarm/internal/handlers/farm"
	"github.com/birdfarm/birdfarm/internal/handlers/payment"
	"github.com/birdfarm/birdfarm/internal/handlers/wallet"

	pkgauth "github.com/birdfarm/birdfarm/pkg/auth"

	"github.com/birdfarm/birdfarm/internal/pg"
	"github.com/birdfarm/birdfarm/internal/repo"
	"github.com/birdfarm/birdfarm/internal/service/authservice"
	"github.com/birdfarm/birdfarm/internal/service/farmservice"
	"github.com/birdfarm/birdfarm/internal/service/paymentservice"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
)

// Services exposes each service through the interface its handler consumes.
// The admin panel reuses the same concrete services through its own,
// narrower interfaces.
type Services struct {
	AuthService    auth.Service
	FarmService    farm.Service
	WalletService  wallet.Service
	PaymentService payment.Service

	AdminBirds    admin.BirdService
	AdminPayments admin.PaymentService
	AdminUsers    admin.UserService
}

func New(repo *repo.Repositories, trm pg.TXManager) *Services {
	walletService := walletservice.New(repo.BalanceRepo, repo.FlockRepo, repo.UserRepo, repo.BonusRepo, repo.SettingsRepo, trm)
	farmService := farmservice.New(repo.BirdRepo, repo.FlockRepo, repo.UserRepo, repo.BalanceRepo, trm)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.BalanceRepo, repo.UserRepo, repo.SettingsRepo, trm)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		FarmService:    farmService,
		WalletService:  walletService,
		PaymentService: paymentService,

		AdminBirds:    farmService,
		AdminPayments: paymentService,
		AdminUsers:    authService,
	}
}
