package handlers

import (
	"net/http"

	"pawmi/middleware"
	"pawmi/models"
	"pawmi/services/reminder"
	"pawmi/utils"

	"github.com/gin-gonic/gin"
)

// ReminderHandler exposes pet-care reminder scheduling.
type ReminderHandler struct {
	Service reminder.ReminderService
}

func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	var req reminder.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rem, err := h.Service.CreateReminder(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rem)
}

func (h *ReminderHandler) ListMyRemindersHandler(c *gin.Context) {
	reminders, err := h.Service.ListMyReminders(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	c.JSON(http.StatusOK, reminders)
}

func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	if err := h.Service.DeleteReminder(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
