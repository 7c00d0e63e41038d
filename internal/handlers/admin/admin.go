package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/dto"
	"github.com/birdfarm/birdfarm/internal/handlers/farm"
	"github.com/birdfarm/birdfarm/internal/handlers/payment"
	"github.com/birdfarm/birdfarm/internal/service/farmservice"
	"github.com/birdfarm/birdfarm/internal/service/paymentservice"
	"github.com/birdfarm/birdfarm/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type BirdService interface {
	AllBirds(ctx context.Context) ([]domain.Bird, error)
	CreateBird(ctx context.Context, name string, price, eggsPerHour, eggsPerMonth float64) (*domain.Bird, error)
	UpdateBird(ctx context.Context, id int, price, eggsPerHour, eggsPerMonth float64, isActive bool) (*domain.Bird, error)
}

type PaymentService interface {
	AllDeposits(ctx context.Context) ([]domain.Deposit, error)
	AllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	UpdateDepositStatus(ctx context.Context, id int, status, adminNote string) (*domain.Deposit, error)
	UpdateWithdrawalStatus(ctx context.Context, id int, status, adminNote string) (*domain.Withdrawal, error)
	UpdateRate(ctx context.Context, key string, value float64) error
	Dashboard(ctx context.Context) (*paymentservice.DashboardStats, error)
}

type UserService interface {
	Players(ctx context.Context) ([]domain.User, error)
}

type AdminHandler struct {
	birdService    BirdService
	paymentService PaymentService
	userService    UserService
}

func New(birdService BirdService, paymentService PaymentService, userService UserService) *AdminHandler {
	return &AdminHandler{
		birdService:    birdService,
		paymentService: paymentService,
		userService:    userService,
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.paymentService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminDashboardResponseDTO{
		TotalPlayers:       stats.TotalPlayers,
		PendingDeposits:    stats.PendingDeposits,
		PendingWithdrawals: stats.PendingWithdrawals,
		TotalDepositedUSD:  stats.TotalDepositedUSD,
		TotalWithdrawnUSD:  stats.TotalWithdrawnUSD,
	})
}

func (h *AdminHandler) Players(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Players(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.PlayerDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.PlayerDTO{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			ReferralCode: u.ReferralCode,
			CreatedAt:    u.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) Birds(w http.ResponseWriter, r *http.Request) {
	birds, err := h.birdService.AllBirds(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, farm.BirdDTOs(birds))
}

func (h *AdminHandler) CreateBird(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBirdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Price <= 0 || req.EggsPerHour <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, price and production rate are required")
		return
	}

	bird, err := h.birdService.CreateBird(r.Context(), req.Name, req.Price, req.EggsPerHour, req.EggsPerMonth)
	if err != nil {
		switch {
		case errors.Is(err, farmservice.ErrBirdExists), errors.Is(err, farmservice.ErrBirdLimit):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, farm.BirdDTOs([]domain.Bird{*bird})[0])
}

func (h *AdminHandler) UpdateBird(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bird id")
		return
	}

	var req dto.UpdateBirdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bird, err := h.birdService.UpdateBird(r.Context(), id, req.Price, req.EggsPerHour, req.EggsPerMonth, req.IsActive)
	if err != nil {
		if errors.Is(err, farmservice.ErrBirdNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, farm.BirdDTOs([]domain.Bird{*bird})[0])
}

func (h *AdminHandler) Deposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.paymentService.AllDeposits(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment.DepositDTOs(deposits, true))
}

func (h *AdminHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.paymentService.AllWithdrawals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment.WithdrawalDTOs(withdrawals, true))
}

func (h *AdminHandler) UpdateDeposit(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.statusRequest(w, r)
	if !ok {
		return
	}

	deposit, err := h.paymentService.UpdateDepositStatus(r.Context(), id, req.Status, req.AdminNote)
	if err != nil {
		h.respondStatusError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment.DepositDTO(deposit, true))
}

func (h *AdminHandler) UpdateWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.statusRequest(w, r)
	if !ok {
		return
	}

	withdrawal, err := h.paymentService.UpdateWithdrawalStatus(r.Context(), id, req.Status, req.AdminNote)
	if err != nil {
		h.respondStatusError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment.WithdrawalDTO(withdrawal, true))
}

func (h *AdminHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.paymentService.UpdateRate(r.Context(), req.Key, req.Value); err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrUnknownRateKey), errors.Is(err, paymentservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Rate updated"})
}

func (h *AdminHandler) statusRequest(w http.ResponseWriter, r *http.Request) (int, dto.UpdateStatusRequestDTO, bool) {
	var req dto.UpdateStatusRequestDTO

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return 0, req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return 0, req, false
	}
	return id, req, true
}

func (h *AdminHandler) respondStatusError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, paymentservice.ErrRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
