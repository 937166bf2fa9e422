package http

import (
	"github.com/gorilla/mux"

	"grandstay-backend/internal/security"
	"grandstay-backend/internal/service"
)

// Handlers bundles the per-domain handlers for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Reservation *ReservationHandler
	Billing     *BillingHandler
	Room        *RoomHandler
	Catalog     *CatalogHandler
	Report      *ReportHandler
}

func NewHandlers(
	auth service.AuthService,
	reservations service.ReservationService,
	billing service.BillingService,
	rooms service.RoomService,
	catalog service.CatalogService,
	reports service.ReportService,
) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(auth),
		Reservation: NewReservationHandler(reservations),
		Billing:     NewBillingHandler(billing),
		Room:        NewRoomHandler(rooms),
		Catalog:     NewCatalogHandler(catalog),
		Report:      NewReportHandler(reports),
	}
}

// NewRouter builds the /api/v1 route tree. Login and the Stripe webhook are
// the only unauthenticated routes.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/webhooks/stripe", h.Billing.StripeWebhook).Methods("POST")

	// Authenticated routes
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(tokens))

	auth.HandleFunc("/auth/staff", h.Auth.CreateStaff).Methods("POST")

	auth.HandleFunc("/reservations", h.Reservation.Create).Methods("POST")
	auth.HandleFunc("/reservations", h.Reservation.List).Methods("GET")
	auth.HandleFunc("/reservations/{id}", h.Reservation.Get).Methods("GET")
	auth.HandleFunc("/reservations/{id}/rooms", h.Reservation.AssignRoom).Methods("POST")
	auth.HandleFunc("/reservations/{id}/services", h.Reservation.AssignService).Methods("POST")
	auth.HandleFunc("/reservations/{id}/check-in", h.Reservation.CheckIn).Methods("POST")
	auth.HandleFunc("/reservations/{id}/check-out", h.Reservation.CheckOut).Methods("POST")
	auth.HandleFunc("/reservations/{id}/cancel", h.Reservation.Cancel).Methods("POST")
	auth.HandleFunc("/reservations/{id}/no-show", h.Reservation.MarkNoShow).Methods("POST")
	auth.HandleFunc("/reservations/{id}/bill", h.Billing.GetBill).Methods("GET")
	auth.HandleFunc("/reservations/{id}/statement", h.Billing.Statement).Methods("GET")

	auth.HandleFunc("/bookings/suite", h.Reservation.BookSuite).Methods("POST")
	auth.HandleFunc("/bookings/bulk", h.Reservation.BookBulk).Methods("POST")

	auth.HandleFunc("/payments/checkout-session", h.Billing.CreateCheckoutSession).Methods("POST")
	auth.HandleFunc("/payments/cash", h.Billing.RecordCashPayment).Methods("POST")

	auth.HandleFunc("/rooms", h.Room.Create).Methods("POST")
	auth.HandleFunc("/rooms", h.Room.List).Methods("GET")
	auth.HandleFunc("/rooms/suites/available", h.Room.ListAvailableSuites).Methods("GET")
	auth.HandleFunc("/rooms/{id}", h.Room.Get).Methods("GET")
	auth.HandleFunc("/rooms/{id}", h.Room.Update).Methods("PUT")
	auth.HandleFunc("/rooms/{id}/maintenance", h.Room.SetMaintenance).Methods("POST")

	auth.HandleFunc("/services", h.Catalog.Create).Methods("POST")
	auth.HandleFunc("/services", h.Catalog.List).Methods("GET")
	auth.HandleFunc("/services/{id}", h.Catalog.Update).Methods("PUT")

	auth.HandleFunc("/reports/financial", h.Report.Financial).Methods("GET")
	auth.HandleFunc("/reports/room-status", h.Report.RoomStatus).Methods("GET")
	auth.HandleFunc("/reports/occupancy", h.Report.Occupancy).Methods("GET")

	return router
}
