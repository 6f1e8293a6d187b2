package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/httpresp"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type PetRequest struct {
	OwnerID string `json:"ownerId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Breed   string `json:"breed"`
	Age     int    `json:"age"`
}

func (h *PetHandler) List(c *gin.Context) {
	q := h.db.Preload("Owner")

	if ownerID := c.Query("ownerId"); ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}

	var pets []models.Pet
	if err := q.
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Failed to list pets.")
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	var pet models.Pet
	if err := h.db.Preload("Owner").Where("id = ?", c.Param("id")).First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "ownerId, name and type are required.")
		return
	}

	var owner models.Owner
	if err := h.db.Where("id = ?", req.OwnerID).First(&owner).Error; err != nil {
		httperr.BadRequest(c, "owner_not_found", "Owner does not exist.")
		return
	}

	pet := models.Pet{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		Type:    req.Type,
		Breed:   req.Breed,
		Age:     req.Age,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Failed to create pet.")
		return
	}

	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	var pet models.Pet
	if err := h.db.Where("id = ?", c.Param("id")).First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found")
		return
	}

	var req struct {
		OwnerID *string `json:"ownerId"`
		Name    *string `json:"name"`
		Type    *string `json:"type"`
		Breed   *string `json:"breed"`
		Age     *int    `json:"age"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.OwnerID != nil {
		pet.OwnerID = *req.OwnerID
	}
	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Type != nil {
		pet.Type = *req.Type
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Failed to update pet.")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.Pet{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Failed to delete pet.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "pet_not_found", "Pet not found")
		return
	}

	httpresp.Message(c, http.StatusOK, "Pet deleted")
}
