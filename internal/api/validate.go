package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"newsdesk/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// FieldError is one field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindError renders binding failures. Validator errors become a structured
// list of field errors; anything else (malformed JSON) is a generic 400.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: messageFor(fe)})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// parseDate converts an optional YYYY-MM-DD string. Inputs are validated with
// a datetime tag before this runs, so parse failures only occur on empty.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// LoginInput is the operator sign-in form
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileInput is the profile create/update form
type ProfileInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (in *ProfileInput) toModel() *models.Profile {
	return &models.Profile{Name: in.Name, Phone: in.Phone, Address: in.Address}
}

// NewspaperInput is the newspaper create/update form
type NewspaperInput struct {
	Name        string  `json:"name" binding:"required"`
	Language    string  `json:"language"`
	Price       float64 `json:"price" binding:"gte=0"`
	Description string  `json:"description"`
}

func (in *NewspaperInput) toModel() *models.Newspaper {
	return &models.Newspaper{
		Name:        in.Name,
		Language:    in.Language,
		Price:       in.Price,
		Description: in.Description,
	}
}

// PlanInput is the subscription-plan create/update form
type PlanInput struct {
	Price           float64 `json:"price" binding:"gte=0"`
	DurationMonths  int     `json:"duration_months" binding:"required,gte=1"`
	DiscountPercent float64 `json:"discount_percent" binding:"gte=0,lte=100"`
}

func (in *PlanInput) toModel() *models.SubscriptionPlan {
	return &models.SubscriptionPlan{
		Price:           in.Price,
		DurationMonths:  in.DurationMonths,
		DiscountPercent: in.DiscountPercent,
	}
}

// AreaInput is the delivery-area create/update form
type AreaInput struct {
	Name   string `json:"name" binding:"required"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

func (in *AreaInput) toModel() *models.Area {
	return &models.Area{Name: in.Name, Code: in.Code, Active: in.Active}
}

// AgentInput is the delivery-agent create/update form
type AgentInput struct {
	Name   string  `json:"name" binding:"required"`
	Code   string  `json:"code"`
	Phone  string  `json:"phone"`
	AreaID *string `json:"area_id"`
	Active bool    `json:"active"`
}

func (in *AgentInput) toModel() *models.DeliveryAgent {
	return &models.DeliveryAgent{
		Name:   in.Name,
		Code:   in.Code,
		Phone:  in.Phone,
		AreaID: in.AreaID,
		Active: in.Active,
	}
}

// CouponInput is the coupon create/update form
type CouponInput struct {
	Code            string  `json:"code" binding:"required"`
	DiscountPercent float64 `json:"discount_percent" binding:"gte=0,lte=100"`
	Active          bool    `json:"active"`
}

func (in *CouponInput) toModel() *models.Coupon {
	return &models.Coupon{
		Code:            in.Code,
		DiscountPercent: in.DiscountPercent,
		Active:          in.Active,
	}
}

// ServiceInput is the service create/update form
type ServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (in *ServiceInput) toModel() *models.Service {
	return &models.Service{Name: in.Name, Description: in.Description}
}

// AnnouncementInput is the home-announcement create/update form
type AnnouncementInput struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
	Active  bool   `json:"active"`
}

func (in *AnnouncementInput) toModel() *models.HomeAnnouncement {
	return &models.HomeAnnouncement{Title: in.Title, Message: in.Message, Active: in.Active}
}

// SubscriptionInput is the subscription create/update form
type SubscriptionInput struct {
	UserID          *string  `json:"user_id"`
	NewspaperID     *string  `json:"newspaper_id"`
	PlanID          *string  `json:"plan_id"`
	AreaID          *string  `json:"area_id"`
	DeliveryAgentID *string  `json:"delivery_agent_id"`
	Language        string   `json:"language"`
	DeliveryAddress string   `json:"delivery_address"`
	StartDate       string   `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string   `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status          string   `json:"status" binding:"omitempty,oneof=active expired pending cancelled completed"`
	PaymentStatus   string   `json:"payment_status" binding:"omitempty,oneof=paid pending failed"`
	PaymentType     string   `json:"payment_type" binding:"omitempty,oneof=prepaid postpaid"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	DiscountPercent *float64 `json:"discount_percent" binding:"omitempty,gte=0,lte=100"`
	CouponCode      *string  `json:"coupon_code"`
}

func (in *SubscriptionInput) toModel() *models.Subscription {
	status := in.Status
	if status == "" {
		status = models.SubscriptionStatusActive
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}
	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypePrepaid
	}
	return &models.Subscription{
		UserID:          in.UserID,
		NewspaperID:     in.NewspaperID,
		PlanID:          in.PlanID,
		AreaID:          in.AreaID,
		DeliveryAgentID: in.DeliveryAgentID,
		Language:        in.Language,
		DeliveryAddress: in.DeliveryAddress,
		StartDate:       parseDate(in.StartDate),
		EndDate:         parseDate(in.EndDate),
		Status:          status,
		PaymentStatus:   paymentStatus,
		PaymentType:     paymentType,
		Price:           in.Price,
		DiscountPercent: in.DiscountPercent,
		CouponCode:      in.CouponCode,
	}
}

// BookingInput is the service-booking create/update form
type BookingInput struct {
	UserID    *string `json:"user_id"`
	ServiceID *string `json:"service_id"`
	Date      string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	TimeSlot  string  `json:"time_slot"`
	Message   string  `json:"message"`
	Address   string  `json:"address"`
	Status    string  `json:"status" binding:"omitempty,oneof=pending completed"`
}

func (in *BookingInput) toModel() *models.ServiceBooking {
	return &models.ServiceBooking{
		UserID:    in.UserID,
		ServiceID: in.ServiceID,
		Date:      parseDate(in.Date),
		TimeSlot:  in.TimeSlot,
		Message:   in.Message,
		Address:   in.Address,
		Status:    in.Status,
	}
}

// PaymentInput is the payment create/update form
type PaymentInput struct {
	UserID         *string `json:"user_id"`
	SubscriptionID *string `json:"subscription_id"`
	Amount         float64 `json:"amount" binding:"gte=0"`
	Status         string  `json:"status" binding:"omitempty,oneof=paid pending failed"`
	Method         string  `json:"method"`
	TransactionID  string  `json:"transaction_id"`
	Description    string  `json:"description"`
	PaidAt         string  `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
}

func (in *PaymentInput) toModel() *models.Payment {
	status := in.Status
	if status == "" {
		status = models.PaymentStatusPending
	}
	return &models.Payment{
		UserID:         in.UserID,
		SubscriptionID: in.SubscriptionID,
		Amount:         in.Amount,
		Status:         status,
		Method:         in.Method,
		TransactionID:  in.TransactionID,
		Description:    in.Description,
		PaidAt:         parseDate(in.PaidAt),
	}
}
