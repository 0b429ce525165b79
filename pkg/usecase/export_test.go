package usecase

// Export unexported functions for testing
var (
	FormatRepoNamesForTest           = formatRepoNames
	CreateOrUpdateIntakeTableForTest = createOrUpdateIntakeTable
)
