package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/server/http/dto"
)

// ShopHandler manages the rewards a user can buy with coins.
type ShopHandler struct {
	facade ShopFacade
}

// NewShopHandler constructs ShopHandler.
func NewShopHandler(facade ShopFacade) *ShopHandler {
	return &ShopHandler{facade: facade}
}

// List handles GET /api/shop.
func (h *ShopHandler) List(c *gin.Context) {
	rewards, err := h.facade.Rewards(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		resp = append(resp, rewardResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/shop.
func (h *ShopHandler) Create(c *gin.Context) {
	var req dto.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reward, err := h.facade.CreateReward(c.Request.Context(), CurrentUserID(c), model.Reward{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rewardResponse(*reward))
}

func rewardResponse(r model.Reward) dto.RewardResponse {
	return dto.RewardResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
}
