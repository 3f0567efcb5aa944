package list_subjects

import (
	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/integrations/catalogservice"
)

// SubjectResponse данные объекта каталога
type SubjectResponse struct {
	ID       uuid.UUID `json:"id"`
	Kind     string    `json:"kind"`
	Name     string    `json:"name"`
	Image    string    `json:"image,omitempty"`
	Location string    `json:"location,omitempty"`
	Price    *float64  `json:"price,omitempty"`
	Rating   *float64  `json:"rating,omitempty"`
}

// SubjectListResponse ответ со списком объектов каталога
type SubjectListResponse struct {
	Subjects []SubjectResponse `json:"subjects"`
}

// FromSubjects конвертирует объекты каталога в HTTP response
func FromSubjects(subjects []catalogservice.Subject) *SubjectListResponse {
	resp := &SubjectListResponse{
		Subjects: make([]SubjectResponse, len(subjects)),
	}

	for i, s := range subjects {
		resp.Subjects[i] = SubjectResponse{
			ID:       s.ID,
			Kind:     string(s.Kind),
			Name:     s.Name,
			Image:    s.Image,
			Location: s.Location,
			Price:    s.Price,
			Rating:   s.Rating,
		}
	}

	return resp
}
