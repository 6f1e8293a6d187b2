package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/httpresp"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

type OwnerHandler struct {
	db *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{db: db}
}

type OwnerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address"`
}

func (h *OwnerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Owner{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var owners []models.Owner
	if err := q.
		Order("created_at DESC").
		Find(&owners).Error; err != nil {
		httperr.Internal(c, "failed_to_list_owners", "Failed to list owners.")
		return
	}

	c.JSON(http.StatusOK, owners)
}

func (h *OwnerHandler) Get(c *gin.Context) {
	var owner models.Owner
	if err := h.db.Where("id = ?", c.Param("id")).First(&owner).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found")
		return
	}

	httpresp.OK(c, owner)
}

func (h *OwnerHandler) Create(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name, phone and email are required.")
		return
	}

	owner := models.Owner{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Address: req.Address,
	}

	if err := h.db.Create(&owner).Error; err != nil {
		if httperr.IsUniqueConflict(err) {
			httperr.BadRequest(c, "email_already_exists", "An owner with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_owner", "Failed to create owner.")
		return
	}

	c.JSON(http.StatusCreated, owner)
}

func (h *OwnerHandler) Update(c *gin.Context) {
	var owner models.Owner
	if err := h.db.Where("id = ?", c.Param("id")).First(&owner).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name != nil {
		owner.Name = *req.Name
	}
	if req.Phone != nil {
		owner.Phone = *req.Phone
	}
	if req.Email != nil {
		owner.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		owner.Address = *req.Address
	}

	if err := h.db.Save(&owner).Error; err != nil {
		if httperr.IsUniqueConflict(err) {
			httperr.BadRequest(c, "email_already_exists", "An owner with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_update_owner", "Failed to update owner.")
		return
	}

	httpresp.OK(c, owner)
}

func (h *OwnerHandler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.Owner{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_owner", "Failed to delete owner.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "owner_not_found", "Owner not found")
		return
	}

	httpresp.Message(c, http.StatusOK, "Owner deleted")
}
