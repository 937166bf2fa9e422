package jobs

import (
	"context"
	"time"

	"grandstay-backend/internal/logger"
)

// SendPaymentReminders emails guests whose bills have been pending longer
// than the configured number of days.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Billing.ReminderAfterDays)
		bills, err := jr.store.BillRepository.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list pending bills", "error", err)
			return
		}

		sent := 0
		for _, bill := range bills {
			res, err := jr.store.ReservationRepository.GetByID(ctx, bill.ReservationID)
			if err != nil {
				logger.Error("Failed to load reservation for reminder",
					"billId", bill.ID, "reservationId", bill.ReservationID, "error", err)
				continue
			}

			paid, err := jr.store.PaymentRepository.SumByBill(ctx, bill.ID)
			if err != nil {
				logger.Error("Failed to sum payments", "billId", bill.ID, "error", err)
				continue
			}
			outstanding := int64(bill.TotalAmountCents) - paid
			if outstanding <= 0 {
				continue
			}

			if err := jr.services.Email.SendPaymentReminder(ctx, res.CustomerEmail, outstanding); err != nil {
				logger.Error("Failed to send payment reminder",
					"billId", bill.ID, "email", res.CustomerEmail, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Payment reminders sent", "count", sent, "pendingBills", len(bills))
	})
}

// ReconcileBillStatuses re-derives every pending or partial bill status from
// its payment ledger. Idempotent; running it twice changes nothing.
func (jr *JobRunner) ReconcileBillStatuses() {
	jr.runWithRecovery("ReconcileBillStatuses", func() {
		ctx := context.Background()

		rows, err := jr.db.QueryContext(ctx,
			`SELECT id FROM bills WHERE status IN ($1, $2)`,
			"Payment Pending", "Partial Payment")
		if err != nil {
			logger.Error("Failed to list unsettled bills", "error", err)
			return
		}
		defer rows.Close()

		var billIDs []int32
		for rows.Next() {
			var id int32
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan bill id", "error", err)
				return
			}
			billIDs = append(billIDs, id)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Failed reading unsettled bills", "error", err)
			return
		}

		reconciled := 0
		for _, id := range billIDs {
			if _, err := jr.store.BillRepository.RecomputeStatus(ctx, id); err != nil {
				logger.Error("Failed to recompute bill status", "billId", id, "error", err)
				continue
			}
			reconciled++
		}

		logger.Info("Bill statuses reconciled", "count", reconciled)
	})
}
