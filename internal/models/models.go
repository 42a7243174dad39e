package models

import "github.com/shopspring/decimal"

// ============================================
// Auth DTOs
// ============================================

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// ============================================
// Member DTOs
// ============================================

type RegisterMemberRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	Contact        string `json:"contact" binding:"required"`
	SubscriptionID int64  `json:"subscriptionId"`
}

type UpdateMemberRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	Contact        string `json:"contact" binding:"required"`
	SubscriptionID int64  `json:"subscriptionId"`
	StartDate      int64  `json:"startDate" binding:"required"`
	EndDate        int64  `json:"endDate" binding:"required"`
}

type MemberResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	Contact          string `json:"contact"`
	SubscriptionID   int64  `json:"subscriptionId"`
	StartDate        int64  `json:"startDate"`
	EndDate          int64  `json:"endDate"`
	RegistrationDate int64  `json:"registrationDate"`
	IsActive         bool   `json:"isActive"`
}

// ============================================
// Subscription DTOs
// ============================================

type SubscriptionRequest struct {
	Type        string          `json:"type" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	StartDate   *int64          `json:"startDate,omitempty"`
	EndDate     *int64          `json:"endDate,omitempty"`
}

type SubscriptionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	StartDate   *int64          `json:"startDate,omitempty"`
	EndDate     *int64          `json:"endDate,omitempty"`
}

// ============================================
// Payment DTOs
// ============================================

type RecordPaymentRequest struct {
	MemberID int64           `json:"memberId" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Date     int64           `json:"date"`
}

type PaymentResponse struct {
	ID       int64           `json:"id"`
	MemberID int64           `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
	Date     int64           `json:"date"`
}
