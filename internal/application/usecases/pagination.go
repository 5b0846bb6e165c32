package usecases

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageMeta contém os metadados de paginação de uma listagem
type PageMeta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
}

// Page é uma página de uma coleção do snapshot
type Page[T any] struct {
	SnapshotID string   `json:"snapshotId"`
	Items      []T      `json:"data"`
	Meta       PageMeta `json:"meta"`
}

// NormalizePagination aplica os valores padrão e o limite máximo
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Paginate recorta items para a página pedida
func Paginate[T any](snapshotID string, items []T, page, limit int) Page[T] {
	page, limit = NormalizePagination(page, limit)

	total := len(items)
	totalPages := (total + limit - 1) / limit
	start := total
	if page <= totalPages {
		start = (page - 1) * limit
	}
	end := min(start+limit, total)

	return Page[T]{
		SnapshotID: snapshotID,
		Items:      items[start:end],
		Meta: PageMeta{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
		},
	}
}
