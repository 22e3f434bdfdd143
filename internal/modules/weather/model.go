// README: Weather report and clothing recommendation shapes.
package weather

// Report is the normalized current-weather snapshot for a location.
type Report struct {
	Location string  `json:"location"`
	TempC    float64 `json:"temp_c"`
	// FeelsLikeC is nil when the provider reports no feels-like value;
	// 0 is a real temperature.
	FeelsLikeC *float64 `json:"feels_like_c,omitempty"`
	Condition  string   `json:"condition"` // e.g. "Rain", "Clear", "Clouds"
	WindKph    float64  `json:"wind_kph"`
	Humidity   int      `json:"humidity"`
}

// Recommendation pairs a report with clothing advice.
type Recommendation struct {
	Report    Report   `json:"report"`
	Clothing  []string `json:"clothing"`
	Reasoning string   `json:"reasoning"`
}
