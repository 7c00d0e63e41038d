package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/dto"
	"github.com/birdfarm/birdfarm/internal/service/paymentservice"
	"github.com/birdfarm/birdfarm/pkg/auth"
	"github.com/birdfarm/birdfarm/pkg/utils"
)

type Service interface {
	CreateDeposit(ctx context.Context, userID int, payeerID, accountHolder string, usdAmount float64) (*domain.Deposit, error)
	CreateWithdrawal(ctx context.Context, userID int, goldAmount float64, accountID, accountName string) (*domain.Withdrawal, error)
	Deposits(ctx context.Context, userID int) ([]domain.Deposit, error)
	Withdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	Rates(ctx context.Context) (*paymentservice.Rates, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deposit, err := h.paymentService.CreateDeposit(r.Context(), userID, req.PayeerID, req.AccountHolder, req.USDAmount)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidAccount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, DepositDTO(deposit, false))
}

func (h *PaymentHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	withdrawal, err := h.paymentService.CreateWithdrawal(r.Context(), userID, req.GoldAmount, req.PayeerAccountID, req.PayeerAccountName)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidAmount), errors.Is(err, paymentservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidAccount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, paymentservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, WithdrawalDTO(withdrawal, false))
}

func (h *PaymentHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	deposits, err := h.paymentService.Deposits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, DepositDTOs(deposits, false))
}

func (h *PaymentHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.paymentService.Withdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, WithdrawalDTOs(withdrawals, false))
}

func (h *PaymentHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.paymentService.Rates(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RatesResponseDTO{
		USDToGold:  rates.USDToGold,
		EggsToGold: rates.EggsToGold,
	})
}

// DepositDTO converts a deposit record; withUserID is set on admin
// listings only.
func DepositDTO(d *domain.Deposit, withUserID bool) dto.DepositDTO {
	out := dto.DepositDTO{
		ID:             d.ID,
		Reference:      d.Reference.String(),
		PayeerID:       d.PayeerID,
		USDAmount:      d.USDAmount,
		GoldAmount:     d.GoldAmount,
		ConversionRate: d.ConversionRate,
		Status:         d.Status,
		AdminNote:      d.AdminNote,
		CreatedAt:      d.CreatedAt,
	}
	if withUserID {
		out.UserID = d.UserID
	}
	return out
}

func DepositDTOs(deposits []domain.Deposit, withUserID bool) []dto.DepositDTO {
	out := make([]dto.DepositDTO, 0, len(deposits))
	for i := range deposits {
		out = append(out, DepositDTO(&deposits[i], withUserID))
	}
	return out
}

func WithdrawalDTO(w *domain.Withdrawal, withUserID bool) dto.WithdrawalDTO {
	out := dto.WithdrawalDTO{
		ID:                w.ID,
		Reference:         w.Reference.String(),
		GoldAmount:        w.GoldAmount,
		USDAmount:         w.USDAmount,
		ConversionRate:    w.ConversionRate,
		PayeerAccountID:   w.PayeerAccountID,
		PayeerAccountName: w.PayeerAccountName,
		Status:            w.Status,
		AdminNote:         w.AdminNote,
		CreatedAt:         w.CreatedAt,
	}
	if withUserID {
		out.UserID = w.UserID
	}
	return out
}

func WithdrawalDTOs(withdrawals []domain.Withdrawal, withUserID bool) []dto.WithdrawalDTO {
	out := make([]dto.WithdrawalDTO, 0, len(withdrawals))
	for i := range withdrawals {
		out = append(out, WithdrawalDTO(&withdrawals[i], withUserID))
	}
	return out
}
