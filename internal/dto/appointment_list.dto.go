package dto

import (
	"time"

	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

// AppointmentListDTO is the list projection: appointment fields plus the
// owner/pet summaries the clinic front end shows in the agenda.
type AppointmentListDTO struct {
	ID      string `json:"id"`
	PetID   string `json:"petId"`
	OwnerID string `json:"ownerId"`

	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
	Status string `json:"status"`

	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	PetName    string `json:"petName"`
	PetType    string `json:"petType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:         ap.ID,
		PetID:      ap.PetID,
		OwnerID:    ap.OwnerID,
		Date:       ap.Date,
		Time:       ap.Time,
		Reason:     ap.Reason,
		Status:     ap.Status,
		OwnerName:  ap.Owner.Name,
		OwnerPhone: ap.Owner.Phone,
		PetName:    ap.Pet.Name,
		PetType:    ap.Pet.Type,
		CreatedAt:  ap.CreatedAt,
		UpdatedAt:  ap.UpdatedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
