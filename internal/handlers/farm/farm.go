package farm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/birdfarm/birdfarm/internal/domain"
	"github.com/birdfarm/birdfarm/internal/dto"
	"github.com/birdfarm/birdfarm/internal/service/farmservice"
	"github.com/birdfarm/birdfarm/internal/service/walletservice"
	"github.com/birdfarm/birdfarm/pkg/auth"
	"github.com/birdfarm/birdfarm/pkg/utils"
)

type Service interface {
	Catalog(ctx context.Context) ([]domain.Bird, error)
	MyBirds(ctx context.Context, userID int) ([]domain.UserBird, map[string]int, error)
	EggsToCollect(ctx context.Context, userID int) (map[string]int64, map[string]int, error)
	Collect(ctx context.Context, userID int) (*farmservice.CollectResult, error)
	Buy(ctx context.Context, userID int, birdName string) (*farmservice.PurchaseResult, error)
}

type FarmHandler struct {
	farmService Service
}

func New(farmService Service) *FarmHandler {
	return &FarmHandler{
		farmService: farmService,
	}
}

func (h *FarmHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	birds, err := h.farmService.Catalog(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, BirdDTOs(birds))
}

func (h *FarmHandler) MyBirds(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	birds, quantities, err := h.farmService.MyBirds(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MyBirdsResponseDTO{
		Birds:      OwnedBirdDTOs(birds),
		Quantities: quantities,
	})
}

func (h *FarmHandler) EggsToCollect(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	ready, counts, err := h.farmService.EggsToCollect(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EggsToCollectResponseDTO{
		Ready: ready,
		Birds: counts,
	})
}

func (h *FarmHandler) Collect(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.farmService.Collect(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, farmservice.ErrNoBirds):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CollectResponseDTO{
		Message:   "Eggs collected",
		Collected: result.Collected,
		Wait:      result.Wait,
	})
}

func (h *FarmHandler) Buy(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BuyBirdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.farmService.Buy(r.Context(), userID, req.Bird)
	if err != nil {
		switch {
		case errors.Is(err, farmservice.ErrBirdUnavailable):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BuyBirdResponseDTO{
		Message:    "Bird purchased",
		Bird:       result.Bird,
		Price:      result.Price,
		NewBalance: result.NewBalance,
	})
}

func BirdDTOs(birds []domain.Bird) []dto.BirdDTO {
	out := make([]dto.BirdDTO, 0, len(birds))
	for _, b := range birds {
		out = append(out, dto.BirdDTO{
			ID:           b.ID,
			Name:         b.Name,
			Price:        b.Price,
			EggsPerHour:  b.EggsPerHour,
			EggsPerMonth: b.EggsPerMonth,
			IsActive:     b.IsActive,
		})
	}
	return out
}

func OwnedBirdDTOs(birds []domain.UserBird) []dto.OwnedBirdDTO {
	out := make([]dto.OwnedBirdDTO, 0, len(birds))
	for _, b := range birds {
		out = append(out, dto.OwnedBirdDTO{
			ID:              b.ID,
			Bird:            b.BirdName,
			PurchaseDate:    b.PurchaseDate,
			DaysRemaining:   b.DaysRemaining,
			LastCollection:  b.LastCollection,
			UncollectedEggs: b.UncollectedEggs,
			IsAlive:         b.IsAlive(),
		})
	}
	return out
}
