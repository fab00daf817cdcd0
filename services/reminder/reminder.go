package reminder

import (
	"fmt"
	"time"

	reminderRepo "pawmi/database/repository/reminder"
	"pawmi/models"
	"pawmi/services/tasks"
	"pawmi/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// CreateReminderRequest is the payload for scheduling a pet-care reminder.
type CreateReminderRequest struct {
	PetID    string    `json:"pet_id"`
	Title    string    `json:"title" binding:"required"`
	Body     string    `json:"body"`
	FireDate time.Time `json:"fire_date" binding:"required"`
}

// ReminderService schedules and lists pet-care reminders.
type ReminderService interface {
	CreateReminder(ownerID string, req CreateReminderRequest) (*models.Reminder, error)
	ListMyReminders(ownerID string) ([]models.Reminder, error)
	DeleteReminder(id, ownerID string) error
}

// DefaultReminderService implements ReminderService on top of the reminder
// repository and an asynq queue.
type DefaultReminderService struct {
	Repo   reminderRepo.ReminderRepository
	Client *asynq.Client
}

// CreateReminder persists the reminder and enqueues its delivery task.
func (s *DefaultReminderService) CreateReminder(ownerID string, req CreateReminderRequest) (*models.Reminder, error) {
	if !req.FireDate.After(time.Now()) {
		return nil, fmt.Errorf("fire date must be in the future")
	}

	rem := &models.Reminder{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		PetID:    req.PetID,
		Title:    req.Title,
		Body:     req.Body,
		FireDate: req.FireDate,
	}
	if err := s.Repo.Create(rem); err != nil {
		return nil, err
	}

	payload := models.ReminderPayload{
		OwnerID:    ownerID,
		ReminderID: rem.ID,
		Title:      rem.Title,
		Body:       rem.Body,
		FireDate:   rem.FireDate.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, rem.FireDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return nil, fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	utils.GetLogger().Info("reminder scheduled",
		zap.String("reminderID", rem.ID),
		zap.Time("fireDate", rem.FireDate),
	)
	return rem, nil
}

func (s *DefaultReminderService) ListMyReminders(ownerID string) ([]models.Reminder, error) {
	return s.Repo.ListByOwner(ownerID)
}

// DeleteReminder removes a reminder the owner no longer wants. Any queued
// task fires into a missing record and is dropped by the worker.
func (s *DefaultReminderService) DeleteReminder(id, ownerID string) error {
	reminders, err := s.Repo.ListByOwner(ownerID)
	if err != nil {
		return err
	}
	for _, rem := range reminders {
		if rem.ID == id {
			return s.Repo.Delete(id)
		}
	}
	return fmt.Errorf("reminder with id %s not found for owner %s", id, ownerID)
}
