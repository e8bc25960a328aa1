package request

import (
	"time"

	"booking-gateway/internal/domain/search"
	"booking-gateway/internal/usecase/queries"
)

type SearchCompaniesRequest struct {
	Text    string `form:"text"`
	City    string `form:"city"`
	Country string `form:"country"`
	Page    *int   `form:"page" binding:"omitempty,min=0,max=10000"`
}

func (r *SearchCompaniesRequest) ToInput() queries.SearchInput {
	return queries.SearchInput{
		Filters: search.Filters{Text: r.Text, City: r.City, Country: r.Country},
		Page:    r.Page,
	}
}

type AvailableHoursRequest struct {
	ServiceID int64  `form:"serviceId" binding:"required,gt=0"`
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
	Timezone  string `form:"timezone" binding:"omitempty,timezone"`
}

func (r *AvailableHoursRequest) Day() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}
