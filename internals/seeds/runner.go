package seeds

import (
	events "halodkm_backend/internals/seeds/events"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Event contoh (penggalangan dana & distribusi) beserta transaksinya
	events.SeedEventsFromJSON(db, "internals/seeds/events/data_events.json")
}
