package handler

import (
	"github.com/amaumene/reviewer/internal/config"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type HTTPHandler struct {
	cfg config.Config
}

func NewHTTPHandler(cfg config.Config) *HTTPHandler {
	return &HTTPHandler{cfg: cfg}
}

type appInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Development bool   `json:"development"`
}

type statusResponse struct {
	App      appInfo       `json:"app"`
	Services config.Status `json:"services"`
}

func (h *HTTPHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.handleHealth)
	router.Get("/api/config/status", h.handleStatus)
}

func (h *HTTPHandler) handleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (h *HTTPHandler) handleStatus(c *fiber.Ctx) error {
	response := statusResponse{
		App: appInfo{
			Name:        h.cfg.App.Name,
			Description: h.cfg.App.Description,
			Development: h.cfg.App.IsDevelopment,
		},
		Services: h.cfg.Status(),
	}

	if err := c.JSON(response); err != nil {
		log.WithField("error", err).Error("failed to encode status response")
		return err
	}
	return nil
}
