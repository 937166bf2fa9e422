package postgres

import (
	"database/sql"

	"grandstay-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ReservationRepository
	repository.RoomAssignmentRepository
	repository.RoomRepository
	repository.ServiceRepository
	repository.ServiceAssignmentRepository
	repository.BillRepository
	repository.PaymentRepository
	repository.StaffRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                          db,
		ReservationRepository:       NewReservationRepository(db),
		RoomAssignmentRepository:    NewRoomAssignmentRepository(db),
		RoomRepository:              NewRoomRepository(db),
		ServiceRepository:           NewServiceRepository(db),
		ServiceAssignmentRepository: NewServiceAssignmentRepository(db),
		BillRepository:              NewBillRepository(db),
		PaymentRepository:           NewPaymentRepository(db),
		StaffRepository:             NewStaffRepository(db),
		ReportRepository:            NewReportRepository(db),
	}
}
