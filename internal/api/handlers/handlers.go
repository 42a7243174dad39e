package handlers

import (
	"github.com/lionfit/gym-management-backend/internal/models"
	"github.com/lionfit/gym-management-backend/internal/repository"
	"github.com/lionfit/gym-management-backend/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth         *AuthHandler
	Member       *MemberHandler
	Subscription *SubscriptionHandler
	Payment      *PaymentHandler
	Stats        *StatsHandler
	Report       *ReportHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Member:       NewMemberHandler(services.Member),
		Subscription: NewSubscriptionHandler(services.Subscription),
		Payment:      NewPaymentHandler(services.Payment),
		Stats:        NewStatsHandler(services.Stats),
		Report:       NewReportHandler(services.Stats),
	}
}

// ============================================
// Response Mappers
// ============================================

func toMemberResponse(m *repository.Member) models.MemberResponse {
	return models.MemberResponse{
		ID:               m.ID,
		Name:             m.Name,
		Code:             m.Code,
		Contact:          m.Contact,
		SubscriptionID:   m.SubscriptionID,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		RegistrationDate: m.RegistrationDate,
		IsActive:         m.IsActive,
	}
}

func toSubscriptionResponse(s *repository.Subscription) models.SubscriptionResponse {
	return models.SubscriptionResponse{
		ID:          s.ID,
		Type:        s.Type,
		Description: s.Description,
		Price:       s.Price,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
	}
}

func toPaymentResponse(p *repository.Payment) models.PaymentResponse {
	return models.PaymentResponse{
		ID:       p.ID,
		MemberID: p.MemberID,
		Amount:   p.Amount,
		Date:     p.Date,
	}
}
