package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/httpresp"
	"github.com/pawsclinic/clinic-scheduler/internal/middleware"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

// Tasks are private to the authenticated user; every query is keyed by
// the user id from the token so one user can never touch another's rows.
type TaskHandler struct {
	db *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{db: db}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

func (h *TaskHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var tasks []models.Task
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tasks", "Failed to list tasks.")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "title is required.")
		return
	}

	task := models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}

	if err := h.db.Create(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_create_task", "Failed to create task.")
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var task models.Task
	if err := h.db.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&task).Error; err != nil {
		httperr.NotFound(c, "task_not_found", "Task not found")
		return
	}

	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Completed   *bool      `json:"completed"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}

	if err := h.db.Save(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_update_task", "Failed to update task.")
		return
	}

	httpresp.OK(c, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	res := h.db.Delete(&models.Task{}, "id = ? AND user_id = ?", c.Param("id"), userID)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_task", "Failed to delete task.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "task_not_found", "Task not found")
		return
	}

	httpresp.Message(c, http.StatusOK, "Task deleted")
}
