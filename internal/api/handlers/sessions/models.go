package sessions

import (
	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/session"
)

// UpdateSessionRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateSessionRequest struct {
	SelectedDate      *string `json:"selectedDate,omitempty"` // "2024-06-10"
	ClearSelectedDate bool    `json:"clearSelectedDate,omitempty"`
	IsMember          *bool   `json:"isMember,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID           string  `json:"id"`
	SelectedDate *string `json:"selectedDate"`
	IsMember     bool    `json:"isMember"`
}

// FromSession конвертирует состояние сессии в HTTP response
func FromSession(s session.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:       s.ID,
		IsMember: s.IsMember,
	}
	if s.SelectedDate != nil {
		d := s.SelectedDate.Format(domain.DateFormat)
		resp.SelectedDate = &d
	}
	return resp
}

// DeleteSessionResponse результат закрытия сессии
type DeleteSessionResponse struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}
