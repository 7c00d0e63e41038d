package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/dto"
	"github.com/birdfarm/birdfarm/internal/handlers/farm"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
	"github.com/birdfarm/birdfarm/pkg/auth"
	"github.com/birdfarm/birdfarm/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Stock(ctx context.Context, userID int) ([]domain.StockEntry, error)
	Sell(ctx context.Context, userID int) (*walletservice.SellResult, error)
	Exchange(ctx context.Context, userID int, amount float64) (*walletservice.ExchangeResult, error)
	ClaimBonus(ctx context.Context, userID int) (*walletservice.BonusResult, error)
	BonusHistory(ctx context.Context, userID int) ([]domain.Bonus, error)
	Referrals(ctx context.Context, userID int) (*walletservice.ReferralOverview, error)
}

// FlockReader is the slice of the collection service the dashboard needs.
type FlockReader interface {
	MyBirds(ctx context.Context, userID int) ([]domain.UserBird, map[string]int, error)
}

type WalletHandler struct {
	walletService Service
	flockReader   FlockReader
}

func New(walletService Service, flockReader FlockReader) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		flockReader:   flockReader,
	}
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceDTO(balance))
}

func (h *WalletHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	ctx := r.Context()

	balance, err := h.walletService.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	birds, quantities, err := h.flockReader.MyBirds(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	stock, err := h.walletService.Stock(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Balance:    balanceDTO(balance),
		Birds:      farm.OwnedBirdDTOs(birds),
		Quantities: quantities,
		Stock:      stockDTOs(stock),
	})
}

func (h *WalletHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stock, err := h.walletService.Stock(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stockDTOs(stock))
}

func (h *WalletHandler) Sell(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.walletService.Sell(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	message := "Eggs sold"
	if result.TotalEggs == 0 {
		message = "No eggs in stock"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SellResponseDTO{
		Message:      message,
		TotalEggs:    result.TotalEggs,
		TotalGold:    result.TotalGold,
		PurchaseGold: result.PurchaseGold,
		WithdrawGold: result.WithdrawGold,
	})
}

func (h *WalletHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ExchangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.walletService.Exchange(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, walletservice.ErrInsufficientBalance) {
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ExchangeResponseDTO{
		Message:            "Balance exchanged",
		ExchangedAmount:    result.ExchangedAmount,
		ReceivedAmount:     result.ReceivedAmount,
		NewPurchaseBalance: result.NewPurchaseBalance,
		NewWithdrawBalance: result.NewWithdrawBalance,
	})
}

func (h *WalletHandler) ClaimBonus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.walletService.ClaimBonus(r.Context(), userID)
	if err != nil {
		var cooldown *walletservice.CooldownError
		if errors.As(err, &cooldown) {
			utils.RespondWithError(w, http.StatusTooManyRequests, cooldown.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BonusResponseDTO{
		Message:    "Bonus claimed",
		Amount:     result.Amount,
		NewBalance: result.NewBalance,
	})
}

func (h *WalletHandler) BonusHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bonuses, err := h.walletService.BonusHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.BonusHistoryItemDTO, 0, len(bonuses))
	for _, b := range bonuses {
		out = append(out, dto.BonusHistoryItemDTO{Amount: b.Amount, CreatedAt: b.CreatedAt})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (h *WalletHandler) Referrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	overview, err := h.walletService.Referrals(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	referrals := make([]dto.ReferralInfoDTO, 0, len(overview.Referrals))
	for _, ref := range overview.Referrals {
		referrals = append(referrals, dto.ReferralInfoDTO{
			Username:         ref.Username,
			RegisteredAt:     ref.RegisteredAt,
			CommissionEarned: ref.CommissionEarned,
			TotalPurchases:   ref.TotalPurchases,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralsResponseDTO{
		ReferralCode:  overview.ReferralCode,
		TotalEarnings: overview.TotalEarnings,
		Referrals:     referrals,
	})
}

func balanceDTO(balance *domain.Balance) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		PurchaseBalance:  balance.PurchaseBalance,
		WithdrawBalance:  balance.WithdrawBalance,
		ReferralEarnings: balance.ReferralEarnings,
		WithdrawnTotal:   balance.WithdrawnTotal,
	}
}

func stockDTOs(stock []domain.StockEntry) []dto.StockEntryDTO {
	out := make([]dto.StockEntryDTO, 0, len(stock))
	for _, entry := range stock {
		out = append(out, dto.StockEntryDTO{Bird: entry.BirdName, Eggs: entry.Eggs})
	}
	return out
}
