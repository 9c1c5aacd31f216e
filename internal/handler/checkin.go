package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindtree/internal/logger"
	"mindtree/internal/model"
	"mindtree/internal/service"
)

type CheckinHandler struct {
	svc *service.CheckinService
}

func NewCheckinHandler(svc *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{svc: svc}
}

// POST /checkin
func (h *CheckinHandler) Checkin(c *gin.Context) {
	var req model.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	res, err := h.svc.Checkin(ctx, service.CheckinInput{
		Ratings: model.Ratings{
			Mood:       *req.Mood,
			Anxiety:    *req.Anxiety,
			Motivation: *req.Motivation,
			Connection: *req.Connection,
		},
		FreeText: *req.FreeText,
	})
	if err != nil {
		msg := "internal server error"
		if errors.Is(err, service.ErrPersist) {
			msg = "check-in could not be saved"
		}
		logger.From(ctx).Error("checkin failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, model.CheckinResponse{
		MoodRating:     res.Mood,
		Feedback:       res.Feedback,
		NewHealthScore: res.NewHealth,
		IsEmergency:    res.IsEmergency,
	})
}

// GET /tree-health
func (h *CheckinHandler) TreeHealth(c *gin.Context) {
	th := h.svc.TreeHealth(c.Request.Context())
	c.JSON(http.StatusOK, model.TreeHealthResponse{
		HealthScore: th.Health,
		ImageFile:   th.Tier.ImageFile(),
		Tier:        string(th.Tier),
	})
}

// GET /history
func (h *CheckinHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.History(c.Request.Context()))
}
