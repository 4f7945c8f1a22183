package repository

import (
	"luxdrive/internal/db"
	"luxdrive/internal/utils"
)

// baseFleet is the first-party catalogue. Operator edits land in the
// fleet_overrides collection and are merged at read time; the base table
// itself only changes with a release.
var baseFleet = []db.Vehicle{
	{
		Slug:         "audi-r8-v8",
		Brand:        "Audi",
		Model:        "R8 V8",
		Year:         2014,
		Power:        "430 ch",
		Transmission: "S-tronic",
		Category:     "Supercar",
		Pricing: map[string]db.TierPrice{
			utils.Tier24h:          {Price: 470, IncludedKm: 300},
			utils.TierShortWeekend: {Price: 890, IncludedKm: 500},
			utils.TierLongWeekend:  {Price: 1250, IncludedKm: 700},
			utils.TierShortWeek:    {Price: 1900, IncludedKm: 1100},
			utils.TierFullWeek:     {Price: 2500, IncludedKm: 1500},
		},
		ExtraKmPrice: 5,
		Deposit:      5000,
		Location:     "Genève",
		CalendarURL:  "https://calendar.luxdrive.ch/audi-r8-v8",
	},
	{
		Slug:         "mclaren-570s",
		Brand:        "McLaren",
		Model:        "570S",
		Year:         2017,
		Power:        "570 ch",
		Transmission: "SSG 7",
		Category:     "Supercar",
		Pricing: map[string]db.TierPrice{
			utils.Tier24h:          {Price: 790, IncludedKm: 250},
			utils.TierShortWeekend: {Price: 1490, IncludedKm: 400},
			utils.TierLongWeekend:  {Price: 2090, IncludedKm: 600},
			utils.TierFullWeek:     {Price: 4200, IncludedKm: 1200},
		},
		ExtraKmPrice: 8,
		Deposit:      10000,
		Location:     "Genève",
		CalendarURL:  "https://calendar.luxdrive.ch/mclaren-570s",
	},
	{
		Slug:         "bmw-m4-competition",
		Brand:        "BMW",
		Model:        "M4 Competition",
		Year:         2022,
		Power:        "510 ch",
		Transmission: "Automatique",
		Category:     "Sportive",
		Pricing: map[string]db.TierPrice{
			utils.Tier24h:          {Price: 320, IncludedKm: 350},
			utils.TierShortWeekend: {Price: 590, IncludedKm: 600},
			utils.TierLongWeekend:  {Price: 840, IncludedKm: 800},
			utils.TierShortWeek:    {Price: 1290, IncludedKm: 1300},
			utils.TierFullWeek:     {Price: 1690, IncludedKm: 1800},
			utils.TierMonth:        {Price: 5400, IncludedKm: 4500},
		},
		ExtraKmPrice: 3,
		Deposit:      3000,
		Location:     "Lausanne",
		CalendarURL:  "https://calendar.luxdrive.ch/bmw-m4-competition",
	},
	{
		Slug:         "porsche-911-carrera",
		Brand:        "Porsche",
		Model:        "911 Carrera",
		Year:         2021,
		Power:        "385 ch",
		Transmission: "PDK",
		Category:     "Sportive",
		Pricing: map[string]db.TierPrice{
			utils.Tier24h:          {Price: 450, IncludedKm: 300},
			utils.TierShortWeekend: {Price: 850, IncludedKm: 550},
			utils.TierLongWeekend:  {Price: 1190, IncludedKm: 750},
			utils.TierShortWeek:    {Price: 1790, IncludedKm: 1200},
			utils.TierFullWeek:     {Price: 2350, IncludedKm: 1600},
			utils.TierMonth:        {Price: 7900, IncludedKm: 5000},
		},
		// ExtraKmPrice unset on purpose: the system default applies.
		Deposit:     5000,
		Location:    "Genève",
		CalendarURL: "https://calendar.luxdrive.ch/porsche-911-carrera",
	},
}

// BaseFleet returns a copy of the built-in catalogue.
func BaseFleet() []db.Vehicle {
	out := make([]db.Vehicle, len(baseFleet))
	copy(out, baseFleet)
	return out
}
