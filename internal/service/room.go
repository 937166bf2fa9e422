package service

import (
	"context"
	"strings"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type roomService struct {
	rooms repository.RoomRepository
}

func NewRoomService(rooms repository.RoomRepository) RoomService {
	return &roomService{rooms: rooms}
}

func validateRoom(room *domain.Room) error {
	if strings.TrimSpace(room.RoomNumber) == "" {
		return domain.ValidationError("room number is required")
	}
	if room.RoomType != domain.RoomTypeStandard && room.RoomType != domain.RoomTypeSuite {
		return domain.ValidationError("unknown room type %q", room.RoomType)
	}
	if !room.HasRate() {
		return domain.ValidationError("room %s needs at least one rate", room.RoomNumber)
	}
	return nil
}

func (s *roomService) CreateRoom(ctx context.Context, actingRole domain.Role, room *domain.Room) error {
	if !actingRole.CanManage() {
		return domain.ForbiddenError("creating rooms requires the manager role")
	}
	if err := validateRoom(room); err != nil {
		return err
	}
	if room.Status == "" {
		room.Status = domain.RoomStatusAvailable
	}
	return s.rooms.Create(ctx, room)
}

func (s *roomService) UpdateRoom(ctx context.Context, actingRole domain.Role, room *domain.Room) error {
	if !actingRole.CanManage() {
		return domain.ForbiddenError("updating rooms requires the manager role")
	}
	if err := validateRoom(room); err != nil {
		return err
	}
	if _, err := s.rooms.GetByID(ctx, room.ID); err != nil {
		return err
	}
	return s.rooms.Update(ctx, room)
}

func (s *roomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *roomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *roomService) ListAvailableSuites(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListAvailableSuites(ctx)
}

func (s *roomService) SetMaintenance(ctx context.Context, actingRole domain.Role, roomID int32, underMaintenance bool) error {
	if !actingRole.CanManage() {
		return domain.ForbiddenError("maintenance changes require the manager role")
	}
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if underMaintenance {
		if room.Status == domain.RoomStatusOccupied {
			return domain.PreconditionError("room %s is occupied and cannot enter maintenance", room.RoomNumber)
		}
		return s.rooms.SetStatus(ctx, []int32{roomID}, domain.RoomStatusMaintenance)
	}
	if room.Status != domain.RoomStatusMaintenance {
		return domain.PreconditionError("room %s is not under maintenance", room.RoomNumber)
	}
	return s.rooms.SetStatus(ctx, []int32{roomID}, domain.RoomStatusAvailable)
}
