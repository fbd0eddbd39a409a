package mapper

import (
	"fmt"
	"time"

	"github.com/gmllt/kanban/internal/adapter/http/dto"
	"github.com/gmllt/kanban/internal/core/domain"
)

// ToCardData converts an add-card request into domain input.
func ToCardData(req dto.AddCardRequest) (domain.CardData, error) {
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return domain.CardData{}, err
	}
	data := domain.CardData{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Labels:      req.Labels,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			return domain.CardData{}, err
		}
		data.DueDate = &due
	}
	return data, nil
}

// ToCardPatch converts an edit-card request into a domain patch.
func ToCardPatch(req dto.UpdateCardRequest) (domain.CardPatch, error) {
	patch := domain.CardPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Labels:      req.Labels,
	}
	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return domain.CardPatch{}, err
		}
		patch.Priority = &priority
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			due, err := parseDate(*req.DueDate)
			if err != nil {
				return domain.CardPatch{}, err
			}
			patch.DueDate = &due
		}
	}
	return patch, nil
}

// parseDate accepts a full RFC3339 timestamp or a bare yyyy-mm-dd date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
