package http

import (
	"net/http"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/service"
)

type RoomHandler struct {
	rooms service.RoomService
}

func NewRoomHandler(rooms service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}
	if err := h.rooms.CreateRoom(r.Context(), roleFrom(r), &room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}
	room.ID = id
	if err := h.rooms.UpdateRoom(r.Context(), roleFrom(r), &room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	room, err := h.rooms.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.rooms.ListRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) ListAvailableSuites(w http.ResponseWriter, r *http.Request) {
	suites, err := h.rooms.ListAvailableSuites(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suites)
}

type maintenanceRequest struct {
	UnderMaintenance bool `json:"under_maintenance"`
}

func (h *RoomHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req maintenanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.rooms.SetMaintenance(r.Context(), roleFrom(r), id, req.UnderMaintenance); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
