package domain

import (
	"encoding/json"
	"fmt"
)

// Recommendation identifica uma sugestão fixa gerada pelo pipeline
type Recommendation int

const (
	RecommendationReduceCosts Recommendation = iota + 1
	RecommendationProfitable
	RecommendationImproveAcquisition
	RecommendationIncreaseMarketing
)

var recommendationMessages = map[Recommendation]string{
	RecommendationReduceCosts:        "You are running at a loss. Consider reducing costs.",
	RecommendationProfitable:         "You are making a profit.",
	RecommendationImproveAcquisition: "Consider improving your acquisition channels.",
	RecommendationIncreaseMarketing:  "You may increase the marketing budget to leverage momentum.",
}

func (r Recommendation) String() string {
	if msg, ok := recommendationMessages[r]; ok {
		return msg
	}
	return fmt.Sprintf("Recommendation(%d)", int(r))
}

func (r Recommendation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// IsVerdict indica se a recomendação é o veredito de lucratividade
func (r Recommendation) IsVerdict() bool {
	return r == RecommendationReduceCosts || r == RecommendationProfitable
}
