package response

import "booking-gateway/internal/infra/marketplace"

type CountryResponse struct {
	ISO       string `json:"iso"`
	ISO3      string `json:"iso3"`
	Country   string `json:"country"`
	Capital   string `json:"capital"`
	Continent string `json:"continent"`
	Phone     string `json:"phone"`
}

type CityResponse struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Timezone    string `json:"timezone"`
}

func FromCountries(cs []marketplace.Country) []CountryResponse {
	res := make([]CountryResponse, 0, len(cs))
	copyInto(&res, &cs)
	return res
}

func FromCities(cs []marketplace.City) []CityResponse {
	res := make([]CityResponse, 0, len(cs))
	copyInto(&res, &cs)
	return res
}
