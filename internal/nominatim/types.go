package nominatim

// Place is a single record of a search response.
type Place struct {
	Latitude    string  `json:"lat"`
	Longitude   string  `json:"lon"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

type Address struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
	Country      string `json:"country"`
}
