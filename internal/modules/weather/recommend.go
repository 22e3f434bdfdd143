// README: Rule-table clothing recommendation from a weather report.
package weather

import (
	"fmt"
	"strings"
)

const windyThresholdKph = 30

// Recommend derives clothing advice from temperature bands plus condition
// and wind adjustments. Uses feels-like temperature when it diverges from
// the measured one.
func Recommend(r Report) Recommendation {
	temp := r.TempC
	if r.FeelsLikeC != nil {
		temp = *r.FeelsLikeC
	}

	var clothing []string
	var band string
	switch {
	case temp < 0:
		band = "freezing"
		clothing = []string{"heavy winter coat", "gloves", "scarf", "warm hat"}
	case temp < 10:
		band = "cold"
		clothing = []string{"warm coat", "layers"}
	case temp < 17:
		band = "cool"
		clothing = []string{"light jacket or hoodie"}
	case temp < 24:
		band = "mild"
		clothing = []string{"long sleeves or a t-shirt"}
	case temp < 30:
		band = "warm"
		clothing = []string{"t-shirt", "light pants or shorts"}
	default:
		band = "hot"
		clothing = []string{"light breathable clothing", "sun protection"}
	}

	notes := []string{fmt.Sprintf("feels like %.0f°C (%s)", temp, band)}

	switch strings.ToLower(r.Condition) {
	case "rain", "drizzle", "thunderstorm":
		clothing = append(clothing, "umbrella")
		notes = append(notes, strings.ToLower(r.Condition)+" expected")
	case "snow":
		clothing = append(clothing, "waterproof boots")
		notes = append(notes, "snow expected")
	}

	if r.WindKph >= windyThresholdKph {
		clothing = append(clothing, "windbreaker")
		notes = append(notes, fmt.Sprintf("windy at %.0f km/h", r.WindKph))
	}

	return Recommendation{
		Report:    r,
		Clothing:  clothing,
		Reasoning: strings.Join(notes, "; "),
	}
}
