package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// SummarizeCategoryBody is the request body for a category summary.
type SummarizeCategoryBody struct {
	Category string `json:"category" required:"true" doc:"Category to total"`
}

// SummarizeCategoryInput is the Huma input for a category summary.
type SummarizeCategoryInput struct {
	Body SummarizeCategoryBody
}

// KindTotal is one row of a category summary.
type KindTotal struct {
	Kind  string `json:"kind" doc:"Income or Expense"`
	Total string `json:"total" doc:"Exact decimal sum of amounts of this kind"`
}

// SummarizeCategoryResponseBody is the response body for a category summary.
type SummarizeCategoryResponseBody struct {
	Totals []KindTotal `json:"totals" doc:"Income first, then Expense; kinds without transactions are omitted"`
}

// SummarizeCategoryOutput is the Huma output for a category summary.
type SummarizeCategoryOutput struct {
	Body SummarizeCategoryResponseBody
}

// categorySummarizer is the interface for category summaries.
type categorySummarizer interface {
	SummarizeByCategory(ctx context.Context, categoryText string) ([]service.KindTotal, error)
}

// SummarizeCategoryHandler handles POST /v1/tools/summarize-category.
type SummarizeCategoryHandler struct {
	TransactionService categorySummarizer
}

// NewSummarizeCategoryHandler creates a new SummarizeCategoryHandler.
func NewSummarizeCategoryHandler(svc categorySummarizer) *SummarizeCategoryHandler {
	return &SummarizeCategoryHandler{TransactionService: svc}
}

// Register registers the summarize category tool with the Huma API.
func (h *SummarizeCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summarize-category",
		Method:      http.MethodPost,
		Path:        "/v1/tools/summarize-category",
		Summary:     "Summarize category",
		Description: "Totals the amounts recorded under a category, grouped by kind.",
		Tags:        []string{"Tools"},
	}, h.handle)
}

func (h *SummarizeCategoryHandler) handle(ctx context.Context, input *SummarizeCategoryInput) (*SummarizeCategoryOutput, error) {
	stopTimer := startTimer(ctx, "summarizeCategoryMs")
	totals, err := h.TransactionService.SummarizeByCategory(ctx, input.Body.Category)
	stopTimer()
	if err != nil {
		return nil, toHumaError(ctx, "failed to summarize category", err)
	}

	resp := SummarizeCategoryResponseBody{
		Totals: make([]KindTotal, len(totals)),
	}
	for i, total := range totals {
		resp.Totals[i] = KindTotal{
			Kind:  total.Kind.String(),
			Total: total.Total.String(),
		}
	}

	return &SummarizeCategoryOutput{Body: resp}, nil
}
