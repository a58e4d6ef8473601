package dto

// CatalogResponse represents one page of the repository catalog.
type CatalogResponse struct {
	Repositories []string `json:"repositories"`
}

// ManifestHistoryResponse lists the digests a reference has pointed to,
// most recent first.
type ManifestHistoryResponse struct {
	Name      string   `json:"name"`
	Reference string   `json:"reference"`
	History   []string `json:"history"`
}
