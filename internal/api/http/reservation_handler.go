package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/service"
	"grandstay-backend/internal/utils"
)

type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, domain.ValidationError("invalid id %q", mux.Vars(r)["id"])
	}
	return int32(id), nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.ValidationError("%s must be YYYY-MM-DD, got %q", field, value)
	}
	return t, nil
}

type reservationRequest struct {
	CustomerEmail     string `json:"customer_email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	NumAdults         int32  `json:"num_adults"`
	NumChildren       int32  `json:"num_children"`
	CheckInDate       string `json:"check_in_date"`
	CheckOutDate      string `json:"check_out_date"`
	CreatedBy         string `json:"created_by,omitempty"`
	IsTravelCompany   bool   `json:"is_travel_company,omitempty"`
	TravelCompanyName string `json:"travel_company_name,omitempty"`
}

func (req *reservationRequest) toDomain() (*domain.Reservation, error) {
	checkIn, err := parseDate("check_in_date", req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out_date", req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	return &domain.Reservation{
		CustomerEmail:     req.CustomerEmail,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		NumAdults:         req.NumAdults,
		NumChildren:       req.NumChildren,
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		CreatedBy:         domain.CreatedBy(req.CreatedBy),
		IsTravelCompany:   req.IsTravelCompany,
		TravelCompanyName: req.TravelCompanyName,
	}, nil
}

type reservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	Bill        *domain.Bill        `json:"bill,omitempty"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := req.toDomain()
	if err != nil {
		writeError(w, err)
		return
	}

	created, bill, err := h.reservations.CreateReservation(r.Context(), res)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservationResponse{Reservation: created, Bill: bill})
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.reservations.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type listResponse struct {
	Reservations []domain.Reservation `json:"reservations"`
	Total        int32                `json:"total"`
	Page         int32                `json:"page"`
	PageSize     int32                `json:"page_size"`
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	reservations, total, err := h.reservations.ListReservations(r.Context(),
		q.Get("email"), domain.ReservationStatus(q.Get("status")), int32(page), int32(pageSize))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Reservations: reservations,
		Total:        total,
		Page:         int32(page),
		PageSize:     int32(pageSize),
	})
}

type assignRoomRequest struct {
	RoomID int32 `json:"room_id"`
}

func (h *ReservationHandler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req assignRoomRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	assignment, err := h.reservations.AssignRoom(r.Context(), id, req.RoomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

type assignServiceRequest struct {
	ServiceID int32 `json:"service_id"`
}

func (h *ReservationHandler) AssignService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req assignServiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	assignment, err := h.reservations.AssignService(r.Context(), id, req.ServiceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (h *ReservationHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.CheckIn)
}

func (h *ReservationHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.CheckOut)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.Cancel)
}

func (h *ReservationHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.reservations.MarkNoShow(r.Context(), roleFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int32) (*domain.Reservation, error)) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := op(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type suiteBookingRequest struct {
	reservationRequest
	RoomID int32  `json:"room_id"`
	Period string `json:"period"` // "weekly" or "monthly"
}

func (h *ReservationHandler) BookSuite(w http.ResponseWriter, r *http.Request) {
	var req suiteBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := req.toDomain()
	if err != nil {
		writeError(w, err)
		return
	}

	created, bill, err := h.reservations.BookSuite(r.Context(), res, req.RoomID, utils.BookingPeriod(req.Period))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservationResponse{Reservation: created, Bill: bill})
}

type bulkBookingRequest struct {
	reservationRequest
	NumRooms int32 `json:"num_rooms"`
}

func (h *ReservationHandler) BookBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := req.toDomain()
	if err != nil {
		writeError(w, err)
		return
	}

	created, bill, err := h.reservations.BookBulk(r.Context(), res, req.NumRooms)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservationResponse{Reservation: created, Bill: bill})
}
