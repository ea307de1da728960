package worker

// receipt_worker.go
// Renders PDF receipts for finalized bills. Runs after the billing
// transaction has committed; failures are logged, never surfaced to the sale.

import (
	"context"
	"encoding/json"

	"salondesk/internal/infra"
	"salondesk/internal/repository"

	"github.com/rs/zerolog/log"
)

type ReceiptWorker struct {
	billRepo     repository.BillRepository
	settingsRepo repository.SettingsRepository
	storagePath  string
}

func NewReceiptWorker(billRepo repository.BillRepository, settingsRepo repository.SettingsRepository, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{billRepo: billRepo, settingsRepo: settingsRepo, storagePath: storagePath}
}

// Process loads the bill and writes its PDF receipt to disk.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}

	bill, err := w.billRepo.FindByID(ctx, payload.BillID)
	if err != nil {
		log.Error().Err(err).Uint("bill_id", payload.BillID).Msg("receipt_worker: bill not found")
		return
	}

	salonName, _ := w.settingsRepo.Get(ctx, "salon_name")

	path, err := infra.GenerateReceiptPDF(bill, salonName, w.storagePath)
	if err != nil {
		log.Error().Err(err).Uint("bill_id", payload.BillID).Msg("receipt_worker: render failed")
		return
	}
	log.Info().Uint("bill_id", payload.BillID).Str("path", path).Msg("receipt_worker: receipt written")
}
