package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// TaxonomyResponseBody lists the accepted kinds and categories.
type TaxonomyResponseBody struct {
	Kinds      []string `json:"kinds" doc:"Accepted transaction kinds"`
	Categories []string `json:"categories" doc:"Accepted categories"`
}

// TaxonomyOutput is the Huma output for the taxonomy listing.
type TaxonomyOutput struct {
	Body TaxonomyResponseBody
}

// TaxonomyHandler handles GET /v1/taxonomy.
type TaxonomyHandler struct{}

func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

func (h *TaxonomyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-taxonomy",
		Method:      http.MethodGet,
		Path:        "/v1/taxonomy",
		Summary:     "Get taxonomy",
		Tags:        []string{"Tools"},
	}, h.handle)
}

func (h *TaxonomyHandler) handle(_ context.Context, _ *struct{}) (*TaxonomyOutput, error) {
	resp := TaxonomyResponseBody{}
	for _, kind := range taxonomy.Kinds() {
		resp.Kinds = append(resp.Kinds, kind.String())
	}
	for _, category := range taxonomy.Categories() {
		resp.Categories = append(resp.Categories, category.String())
	}
	return &TaxonomyOutput{Body: resp}, nil
}
