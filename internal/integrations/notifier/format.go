package notifier

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/pkg/dateutil"
)

// Subject тема письма о новом бронировании
func Subject(b *domain.Booking) string {
	return fmt.Sprintf("New booking: %s on %s at %s", b.Type.Label(), dateutil.FormatLong(b.Date), b.TimeSlot)
}

// FormatBookingDetails формирует текст уведомления для администратора клуба
func FormatBookingDetails(b *domain.Booking) string {
	var sb strings.Builder

	sb.WriteString("New Booking Details:\n")
	sb.WriteString("------------------\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "Date: %s\n", dateutil.FormatLong(b.Date))
	fmt.Fprintf(&sb, "Time: %s\n", b.TimeSlot)
	fmt.Fprintf(&sb, "Duration: %s\n", b.Duration)
	fmt.Fprintf(&sb, "Type: %s\n", b.Type.Label())
	if b.Quantity > 0 {
		fmt.Fprintf(&sb, "Quantity: %d\n", b.Quantity)
	}
	if b.IsMember {
		sb.WriteString("Member: Yes\n")
	} else {
		sb.WriteString("Member: No\n")
	}
	fmt.Fprintf(&sb, "Total: %.2f\n", b.TotalPrice)
	if b.Description != nil && strings.TrimSpace(*b.Description) != "" {
		fmt.Fprintf(&sb, "\nSpecial Requests: %s\n", *b.Description)
	}

	return strings.TrimSpace(sb.String())
}
