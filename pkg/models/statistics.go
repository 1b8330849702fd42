package models

// TierStats aggregates review state for the cards of one tier
type TierStats struct {
	Tier     Tier `json:"tier"`
	Total    int  `json:"total"`
	Studied  int  `json:"studied"`
	Due      int  `json:"due"`
	Mastered int  `json:"mastered"`
	Lapses   int  `json:"lapses"`
}

// Statistics is a read-only snapshot of learning progress, computed on
// demand from the review records
type Statistics struct {
	TotalCards   int         `json:"total_cards"`
	Studied      int         `json:"studied"`
	Due          int         `json:"due"`
	Mastered     int         `json:"mastered"`
	Learning     int         `json:"learning"`
	TotalLapses  int         `json:"total_lapses"`
	AverageEase  float64     `json:"average_ease"`
	ReviewsToday int         `json:"reviews_today"`
	ByTier       []TierStats `json:"by_tier"`
}
