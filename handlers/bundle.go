package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every registered handler so route wiring stays in one
// place.
type HandlerBundle struct {
	// Walker discovery, profile and review endpoints.
	SearchWalkersHandler       gin.HandlerFunc
	GetWalkerByIDHandler       gin.HandlerFunc
	GetMyWalkerProfileHandler  gin.HandlerFunc
	BecomeWalkerHandler        gin.HandlerFunc
	UpdateWalkerHandler        gin.HandlerFunc
	CreateReviewHandler        gin.HandlerFunc
	ListReviewsHandler         gin.HandlerFunc
	GetServiceCatalogueHandler gin.HandlerFunc

	// Booking lifecycle endpoints.
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListMyBookingsHandler      gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	WalkerStatsHandler         gin.HandlerFunc

	// Adoption endpoints.
	ListAdoptionsHandler gin.HandlerFunc

	// Pet endpoints.
	CreatePetHandler  gin.HandlerFunc
	ListMyPetsHandler gin.HandlerFunc
	UpdatePetHandler  gin.HandlerFunc
	DeletePetHandler  gin.HandlerFunc

	// Reminder endpoints.
	CreateReminderHandler  gin.HandlerFunc
	ListMyRemindersHandler gin.HandlerFunc
	DeleteReminderHandler  gin.HandlerFunc
}
