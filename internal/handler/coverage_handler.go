package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nikuznetsov/geolingo/internal/service"
)

type CoverageHandler struct {
	coverageSearch service.CoverageSearch
	index          *service.LanguageIndex
	suggestLimit   int
}

func NewCoverageHandler(coverageSearch service.CoverageSearch, index *service.LanguageIndex, suggestLimit int) *CoverageHandler {
	return &CoverageHandler{
		coverageSearch: coverageSearch,
		index:          index,
		suggestLimit:   suggestLimit,
	}
}

// GetSuggestions handles prefix-based language autocomplete.
func (h *CoverageHandler) GetSuggestions(c *fiber.Ctx) error {
	prefix := c.Query("prefix")

	limit := h.suggestLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	return c.JSON(fiber.Map{
		"data": h.index.Suggest(prefix, limit),
	})
}

// GetCountries handles coverage queries: which countries match the
// selected languages, with the relevant membership rows.
func (h *CoverageHandler) GetCountries(c *fiber.Ctx) error {
	selection, err := parseSelection(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": h.coverageSearch.Resolve(selection),
	})
}

// GetCountry returns the full record for one country, for the info panel.
func (h *CoverageHandler) GetCountry(c *fiber.Ctx) error {
	id := c.Params("id")
	country, ok := h.coverageSearch.CountryInfo(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown country id: "+id)
	}

	return c.JSON(fiber.Map{
		"data": country,
	})
}

// GetCoverage returns the aggregate coverage report for a selection.
func (h *CoverageHandler) GetCoverage(c *fiber.Ctx) error {
	selection, err := parseSelection(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": h.coverageSearch.Report(selection),
	})
}

// parseSelection splits the comma-separated languages parameter. An
// absent or empty parameter is a valid empty selection; a parameter
// whose every element trims to nothing is malformed.
func parseSelection(c *fiber.Ctx) ([]string, error) {
	raw := c.Query("languages")
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	selection := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			selection = append(selection, trimmed)
		}
	}
	if len(selection) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "languages must contain at least one non-empty name")
	}
	return selection, nil
}
