package handlers

import (
	"net/http"

	adminhandlers "github.com/birdfarm/birdfarm/internal/handlers/admin"
	authhandlers "github.com/birdfarm/birdfarm/internal/handlers/auth"
	farmhandlers "github.com/birdfarm/birdfarm/internal/handlers/farm"
	paymenthandlers "github.com/birdfarm/birdfarm/internal/handlers/payment"
	wallethandlers "github.com/birdfarm/birdfarm/internal/handlers/wallet"
	"github.com/birdfarm/birdfarm/internal/service"
	"github.com/birdfarm/birdfarm/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type FarmHandler interface {
	Catalog(w http.ResponseWriter, r *http.Request)
	MyBirds(w http.ResponseWriter, r *http.Request)
	EggsToCollect(w http.ResponseWriter, r *http.Request)
	Collect(w http.ResponseWriter, r *http.Request)
	Buy(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	GetStock(w http.ResponseWriter, r *http.Request)
	Sell(w http.ResponseWriter, r *http.Request)
	Exchange(w http.ResponseWriter, r *http.Request)
	ClaimBonus(w http.ResponseWriter, r *http.Request)
	BonusHistory(w http.ResponseWriter, r *http.Request)
	Referrals(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetRates(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Players(w http.ResponseWriter, r *http.Request)
	Birds(w http.ResponseWriter, r *http.Request)
	CreateBird(w http.ResponseWriter, r *http.Request)
	UpdateBird(w http.ResponseWriter, r *http.Request)
	Deposits(w http.ResponseWriter, r *http.Request)
	Withdrawals(w http.ResponseWriter, r *http.Request)
	UpdateDeposit(w http.ResponseWriter, r *http.Request)
	UpdateWithdrawal(w http.ResponseWriter, r *http.Request)
	UpdateRate(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	FarmHandler    FarmHandler
	WalletHandler  WalletHandler
	PaymentHandler PaymentHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		FarmHandler:    farmhandlers.New(s.FarmService),
		WalletHandler:  wallethandlers.New(s.WalletService, s.FarmService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		AdminHandler:   adminhandlers.New(s.AdminBirds, s.AdminPayments, s.AdminUsers),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Get("/api/birds", h.FarmHandler.Catalog)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/dashboard", h.WalletHandler.Dashboard)
		r.Get("/balance", h.WalletHandler.GetBalance)
		r.Get("/stock", h.WalletHandler.GetStock)

		r.Route("/birds", func(r chi.Router) {
			r.Get("/", h.FarmHandler.MyBirds)
			r.Post("/buy", h.FarmHandler.Buy)
		})
		r.Get("/eggs", h.FarmHandler.EggsToCollect)
		r.Post("/collect-eggs", h.FarmHandler.Collect)
		r.Post("/sell-eggs", h.WalletHandler.Sell)
		r.Post("/exchange-balance", h.WalletHandler.Exchange)
		r.Post("/claim-bonus", h.WalletHandler.ClaimBonus)
		r.Get("/bonus-history", h.WalletHandler.BonusHistory)
		r.Get("/referrals", h.WalletHandler.Referrals)
	})

	r.Route("/api/payment", func(r chi.Router) {
		r.Get("/rates", h.PaymentHandler.GetRates)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/deposit", h.PaymentHandler.CreateDeposit)
			r.Get("/deposits", h.PaymentHandler.GetDeposits)
			r.Post("/withdraw", h.PaymentHandler.CreateWithdrawal)
			r.Get("/withdrawals", h.PaymentHandler.GetWithdrawals)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AdminMiddleware)

		r.Get("/dashboard", h.AdminHandler.Dashboard)
		r.Get("/users", h.AdminHandler.Players)
		r.Route("/birds", func(r chi.Router) {
			r.Get("/", h.AdminHandler.Birds)
			r.Post("/", h.AdminHandler.CreateBird)
			r.Put("/{id}", h.AdminHandler.UpdateBird)
		})
		r.Route("/deposits", func(r chi.Router) {
			r.Get("/", h.AdminHandler.Deposits)
			r.Put("/{id}", h.AdminHandler.UpdateDeposit)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/", h.AdminHandler.Withdrawals)
			r.Put("/{id}", h.AdminHandler.UpdateWithdrawal)
		})
		r.Put("/rates", h.AdminHandler.UpdateRate)
	})

	return r
}
