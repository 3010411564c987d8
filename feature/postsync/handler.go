package postsync

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"post-sync/core/logger"
	"post-sync/feature/postsync/models"
)

// Client-facing outcome messages. Failure detail goes to the notifier, not
// to the HTTP response.
const (
	msgManualFailed      = "The manual sync has failed. Please check your email for further details."
	msgTestRecordOK      = "The single post sync test was successful. Please go to the post listing to verify that everything has synced correctly."
	msgTestRecordFailed  = "The single post sync test has failed. Please check your email for more details."
	msgSettingsSaved     = "Settings saved."
	msgAttributeMapSaved = "Attribute map saved."
)

// Handler handles HTTP requests for the sync feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/test-connection", h.HandleTestConnection)
	group.Post("/test-record", h.HandleTestRecord)
	group.Post("/manual", h.HandleManualChunk)
	group.Get("/settings", h.HandleGetSettings)
	group.Put("/settings", h.HandlePutSettings)
	group.Get("/attributes", h.HandleGetAttributeMap)
	group.Put("/attributes", h.HandlePutAttributeMap)
}

// HandleTestConnection calls the configured API and reports the outcome.
// @Summary Test API Connection
// @Description Call the configured API and report status and decoded payload without creating content.
// @Tags sync
// @Produce json
// @Success 200 {object} models.ConnectionReport "Connection Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/test-connection [post]
func (h *Handler) HandleTestConnection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.TestConnection(c.Context())
	if err != nil {
		l.Error("Connection test failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleTestRecord syncs exactly one record as an end-to-end test.
// @Summary Test Single Record Sync
// @Description Fetch, map, and commit exactly one record.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]interface{} "Test Outcome"
// @Router /sync/test-record [post]
func (h *Handler) HandleTestRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.TestSingleRecord(c.Context()); err != nil {
		l.Error("Single record test failed", zap.Error(err))
		return c.JSON(fiber.Map{
			"success": false,
			"message": msgTestRecordFailed,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": msgTestRecordOK,
	})
}

// HandleManualChunk runs one chunk of an interactive sync.
// @Summary Run Manual Sync Chunk
// @Description Consume one chunk of records; call repeatedly until added equals total_items. Set initial on the first call.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body models.ManualRequest false "Chunk options"
// @Success 200 {object} models.ChunkReport "Chunk Report"
// @Router /sync/manual [post]
func (h *Handler) HandleManualChunk(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.ManualRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	report, err := h.service.ManualChunk(c.Context(), req.Initial)
	if err != nil {
		l.Error("Manual sync chunk failed", zap.Error(err))
		return c.JSON(fiber.Map{
			"success": false,
			"message": msgManualFailed,
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"added":       report.Added,
		"total_items": report.TotalItems,
	})
}

// HandleGetSettings returns the stored API settings.
// @Summary Get API Settings
// @Tags sync
// @Produce json
// @Success 200 {object} models.ApiSettings "API Settings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	settings, err := h.service.Settings(c.Context())
	if err != nil {
		l.Error("Failed to load settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(settings)
}

// HandlePutSettings validates and stores the API settings.
// @Summary Update API Settings
// @Tags sync
// @Accept json
// @Produce json
// @Param request body models.ApiSettings true "API Settings"
// @Success 200 {object} map[string]string "Saved"
// @Failure 400 {object} map[string]string "Invalid Settings"
// @Router /sync/settings [put]
func (h *Handler) HandlePutSettings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var settings models.ApiSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.SaveSettings(c.Context(), settings); err != nil {
		if errors.Is(err, ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Failed to save settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": msgSettingsSaved})
}

// HandleGetAttributeMap returns the stored attribute map.
// @Summary Get Attribute Map
// @Tags sync
// @Produce json
// @Success 200 {object} models.AttributeMap "Attribute Map"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/attributes [get]
func (h *Handler) HandleGetAttributeMap(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	attr, err := h.service.AttributeMap(c.Context())
	if err != nil {
		l.Error("Failed to load attribute map", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(attr)
}

// HandlePutAttributeMap validates and stores the attribute map.
// @Summary Update Attribute Map
// @Tags sync
// @Accept json
// @Produce json
// @Param request body models.AttributeMap true "Attribute Map"
// @Success 200 {object} map[string]string "Saved"
// @Failure 400 {object} map[string]string "Invalid Attribute Map"
// @Router /sync/attributes [put]
func (h *Handler) HandlePutAttributeMap(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var attr models.AttributeMap
	if err := c.BodyParser(&attr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.SaveAttributeMap(c.Context(), attr); err != nil {
		if errors.Is(err, ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Failed to save attribute map", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": msgAttributeMapSaved})
}
