package domain

// Strategy names a scoring strategy contributing to a recommendation.
type Strategy string

const (
	StrategyUserCollaborative Strategy = "user_collaborative"
	StrategyItemCollaborative Strategy = "item_collaborative"
	StrategyContent           Strategy = "content"
	StrategyTrending          Strategy = "trending"
	StrategyFeatured          Strategy = "featured"
)
