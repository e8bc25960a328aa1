package response

import "booking-gateway/internal/usecase/queries"

type FiltersResponse struct {
	Text    string `json:"text"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type CompanyPageResponse struct {
	Items     []UserResponse  `json:"items"`
	Count     int             `json:"count"`
	Filters   FiltersResponse `json:"filters"`
	Page      int             `json:"page"`
	PageSize  int             `json:"pageSize"`
	PageCount int             `json:"pageCount"`
}

func FromCompanyPage(p *queries.CompanyPage) CompanyPageResponse {
	return CompanyPageResponse{
		Items: FromUsers(p.Items),
		Count: p.Count,
		Filters: FiltersResponse{
			Text:    p.Filters.Text,
			City:    p.Filters.City,
			Country: p.Filters.Country,
		},
		Page:      p.Page,
		PageSize:  p.PageSize,
		PageCount: p.PageCount,
	}
}

type AvailableHoursResponse struct {
	Hours []string `json:"hours"`
}
