package datasources

// DatasetRepository is a store holding every feed the recommendation engine reads.
type DatasetRepository interface {
	BehaviorRepository
	CatalogRepository
	SimilarityRepository
}
