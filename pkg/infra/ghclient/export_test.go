package ghclient

// Export unexported functions for testing
var (
	RepoPathFromURLForTest = repoPathFromURL
)
