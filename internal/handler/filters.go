package handler

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-stats-service/internal/model"
	"github.com/maxviazov/cricket-stats-service/internal/service"
)

// filtersFromRequest assembles a filter specification from the request.
// Individual query parameters cover the common case; a `filters` parameter
// carrying a JSON object overrides them wholesale. Unrecognized filter values
// fail closed downstream, but JSON that does not parse is invalid input.
func filtersFromRequest(c *gin.Context) (model.Filters, error) {
	if raw := c.Query("filters"); raw != "" {
		var f model.Filters
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			return model.Filters{}, service.NewInvalidInputError([]service.FieldError{
				{Field: "filters", Message: "must be a valid JSON filter object"},
			})
		}
		return f, nil
	}

	f := model.Filters{
		Format:        c.Query("format"),
		InningsType:   c.Query("innings_type"),
		Venue:         c.Query("venue"),
		MatchCategory: c.Query("match_category"),
		BattingOrder:  c.Query("batting_order"),
		Country:       c.Query("country"),
		Phase:         c.Query("phase"),
		PhaseRole:     c.Query("phase_role"),
	}
	if years := c.Query("years"); years != "" {
		for _, y := range strings.Split(years, ",") {
			if y = strings.TrimSpace(y); y != "" {
				f.Years = append(f.Years, y)
			}
		}
	}
	return f, nil
}
