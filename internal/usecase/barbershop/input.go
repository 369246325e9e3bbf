package barbershop

import "github.com/BruksfildServices01/barber-finder/internal/models"

// OpeningHourInput carries one day's schedule entry. Day and times are stored
// verbatim; a closed day may have empty time strings.
type OpeningHourInput struct {
	Day       string
	OpenTime  string
	CloseTime string
	IsClosed  bool
}

func toOpeningHours(shopID string, in []OpeningHourInput) []models.OpeningHour {
	hours := make([]models.OpeningHour, 0, len(in))
	for _, h := range in {
		hours = append(hours, models.OpeningHour{
			Day:          h.Day,
			OpenTime:     h.OpenTime,
			CloseTime:    h.CloseTime,
			IsClosed:     h.IsClosed,
			BarbershopID: shopID,
		})
	}
	return hours
}
