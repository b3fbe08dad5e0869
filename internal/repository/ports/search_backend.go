package ports

import (
	"context"

	"github.com/njprem/GuideMe_Site/internal/domain"
)

// SearchBackend is the remote collaborator a submitted search is handed to before navigation.
type SearchBackend interface {
	Search(ctx context.Context, query domain.SearchQuery) error
}
