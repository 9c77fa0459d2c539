package service

import "cookbook/internal/models"

// normalizePage clamps page and limit to their allowed ranges.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 10 {
		limit = 10
	}
	return page, limit
}

// buildPagination calculates pagination metadata for a result page.
func buildPagination(page, limit, total int) models.Pagination {
	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}
	return models.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
