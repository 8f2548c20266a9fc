package events

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"halodkm_backend/internals/features/events/model"
	"halodkm_backend/internals/features/finance/balance"
	helper "halodkm_backend/internals/helpers"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionSeed struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Tanggal     string          `json:"tanggal"`
}

type EventSeed struct {
	Nama         string            `json:"nama"`
	Deskripsi    *string           `json:"deskripsi"`
	Tipe         string            `json:"tipe"`
	TanggalMulai string            `json:"tanggal_mulai"`
	Transactions []TransactionSeed `json:"transactions"`
}

// DecodeEventSeeds membaca & memvalidasi data seed. Event hasil seed selalu aktif;
// penyelesaian tetap lewat API supaya transfer ke kas tercatat.
func DecodeEventSeeds(data []byte) ([]EventSeed, error) {
	var seeds []EventSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	for i, s := range seeds {
		if strings.TrimSpace(s.Nama) == "" {
			return nil, fmt.Errorf("event #%d: nama kosong", i+1)
		}
		if s.Tipe == "" {
			seeds[i].Tipe = model.TypeFundraising
		} else if !model.ValidType(s.Tipe) {
			return nil, fmt.Errorf("event %q: tipe %q tidak dikenal", s.Nama, s.Tipe)
		}
		if _, err := helper.ParseYMD(s.TanggalMulai); err != nil {
			return nil, fmt.Errorf("event %q: tanggal_mulai: %w", s.Nama, err)
		}
		for j, tx := range s.Transactions {
			dir, ok := balance.ParseDirection(tx.Type)
			if !ok {
				return nil, fmt.Errorf("event %q: type transaksi %q tidak dikenal", s.Nama, tx.Type)
			}
			seeds[i].Transactions[j].Type = string(dir)
			if !balance.StorableAmount(tx.Amount) {
				return nil, fmt.Errorf("event %q: amount harus > 0, maksimal 2 desimal", s.Nama)
			}
			if _, err := helper.ParseYMD(tx.Tanggal); err != nil {
				return nil, fmt.Errorf("event %q: tanggal transaksi: %w", s.Nama, err)
			}
		}
	}
	return seeds, nil
}

func SeedEventsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}
	seeds, err := DecodeEventSeeds(file)
	if err != nil {
		log.Fatalf("❌ Data seed event tidak valid: %v", err)
	}

	// Ambil nama event yang sudah ada
	var existing []string
	if err := db.Model(&model.EventModel{}).Pluck("nama", &existing).Error; err != nil {
		log.Fatalf("❌ Gagal ambil event yang sudah ada: %v", err)
	}
	existingMap := make(map[string]bool, len(existing))
	for _, n := range existing {
		existingMap[n] = true
	}

	inserted := 0
	for _, s := range seeds {
		if existingMap[s.Nama] {
			log.Printf("ℹ️ Event '%s' sudah ada, dilewati.", s.Nama)
			continue
		}
		if err := db.Transaction(func(tx *gorm.DB) error { return insertEvent(tx, s) }); err != nil {
			log.Fatalf("❌ Gagal insert event '%s': %v", s.Nama, err)
		}
		inserted++
	}

	if inserted > 0 {
		log.Printf("✅ Berhasil insert %d event", inserted)
	} else {
		log.Println("ℹ️ Tidak ada event baru untuk diinsert.")
	}
}

func insertEvent(tx *gorm.DB, s EventSeed) error {
	start, _ := helper.ParseYMD(s.TanggalMulai)
	ev := model.EventModel{
		Nama:         s.Nama,
		Deskripsi:    s.Deskripsi,
		Tipe:         s.Tipe,
		TanggalMulai: start,
		Status:       model.StatusActive,
	}
	if err := tx.Create(&ev).Error; err != nil {
		return err
	}
	if len(s.Transactions) == 0 {
		return nil
	}

	rows := make([]model.EventKasModel, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		tanggal, _ := helper.ParseYMD(t.Tanggal)
		rows = append(rows, model.EventKasModel{
			EventID:     ev.ID,
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
			Tanggal:     tanggal,
		})
	}
	return tx.Omit("Event").Create(&rows).Error
}
