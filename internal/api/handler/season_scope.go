package handler

import (
	"net/http"

	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/season"
)

// resolveSeason returns the season scoping a collection request: the
// season_id query parameter when present, the current season otherwise
func resolveSeason(r *http.Request, seasons *season.Service) (model.SeasonID, error) {
	if id := r.URL.Query().Get("season_id"); id != "" {
		s, err := seasons.Get(r.Context(), model.SeasonID(id))
		if err != nil {
			return "", err
		}
		return s.ID, nil
	}

	current, err := seasons.Current(r.Context())
	if err != nil {
		return "", err
	}
	return current.ID, nil
}
