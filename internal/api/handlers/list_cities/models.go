package list_cities

// CityResponse HTTP модель города
type CityResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ListCitiesResponse список городов в порядке каталога
type ListCitiesResponse struct {
	Cities        []CityResponse `json:"cities"`
	CitySelection bool           `json:"citySelection"`
}
