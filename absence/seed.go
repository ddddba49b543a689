/*
seed.go - Demo data generation

PURPOSE:
  Generates a plausible year of absence data for demos and scenario loading:
  every employee receives 28-33 vacation days split into one to three blocks,
  plus a normally distributed number of additional short absences (sickness,
  personal, training) of 1-10 days. Entries are shuffled so vacations are
  not clustered at the top of the table.

DETERMINISM:
  The caller supplies the *rand.Rand; seeding it fixes the generated data,
  which the tests rely on.
*/
package absence

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

var seedFirstNames = []string{
	"Anna", "Ben", "Clara", "David", "Emma", "Felix", "Greta", "Hannes",
	"Ida", "Jonas", "Katja", "Lukas", "Mia", "Niklas", "Paula", "Robert",
	"Sofia", "Tim", "Ute", "Viktor",
}

var seedLastNames = []string{
	"Bauer", "Fischer", "Hoffmann", "Keller", "Lehmann", "Meyer", "Neumann",
	"Richter", "Schmidt", "Schneider", "Vogel", "Wagner", "Weber", "Winkler",
	"Wolf",
}

// SeedYear generates demo records for numEmployees employees across the
// given calendar year.
func SeedYear(rng *rand.Rand, year int, numEmployees int) []Record {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	yearDays := int(yearEnd.Sub(yearStart).Hours()/24) + 1

	var records []Record
	for i := 1; i <= numEmployees; i++ {
		id := fmt.Sprintf("EMP-%04d", i)
		name := fmt.Sprintf("%s %s",
			seedFirstNames[rng.Intn(len(seedFirstNames))],
			seedLastNames[rng.Intn(len(seedLastNames))])

		// 28-33 vacation days in 1-3 blocks.
		vacationDays := 28 + rng.Intn(6)
		blocks := 1 + rng.Intn(3)
		perBlock := vacationDays / blocks
		remainder := vacationDays % blocks
		for b := 0; b < blocks; b++ {
			days := perBlock
			if b < remainder {
				days++
			}
			start := yearStart.AddDate(0, 0, rng.Intn(yearDays-days))
			end := start.AddDate(0, 0, days-1)
			records = append(records, Record{
				EmployeeID: id,
				Name:       name,
				Start:      start,
				End:        end,
				Reason:     ReasonVacation,
			})
		}

		// Additional short absences, normally distributed around two per
		// employee, duration ~N(5,2) clamped to [1,10].
		extra := int(math.Round(rng.NormFloat64() + 2))
		for e := 0; e < extra; e++ {
			days := int(math.Round(rng.NormFloat64()*2 + 5))
			if days < 1 {
				days = 1
			}
			if days > 10 {
				days = 10
			}
			start := yearStart.AddDate(0, 0, rng.Intn(yearDays-days))
			end := start.AddDate(0, 0, days-1)
			reason := ReasonSick
			switch rng.Intn(4) {
			case 0:
				reason = ReasonPersonal
			case 1:
				reason = ReasonTraining
			}
			records = append(records, Record{
				EmployeeID: id,
				Name:       name,
				Start:      start,
				End:        end,
				Reason:     reason,
			})
		}
	}

	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
	return records
}
