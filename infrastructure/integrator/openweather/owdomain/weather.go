package owdomain

// CurrentWeather é a resposta de /weather da OpenWeatherMap (apenas os campos usados)
type CurrentWeather struct {
	Name    string      `json:"name"`
	Weather []Condition `json:"weather"`
	Main    Main        `json:"main"`
	Cod     any         `json:"cod"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Main struct {
	Temp     *float64 `json:"temp"`
	Humidity *float64 `json:"humidity,omitempty"`
}

// ErrorResponse é o corpo devolvido pela API em respostas de erro
type ErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
