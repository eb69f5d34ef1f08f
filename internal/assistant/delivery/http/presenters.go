package http

import (
	"errors"
	"strings"

	"skill-tracking-assistant/internal/dispatch"
	"skill-tracking-assistant/internal/model"
)

type messageReq struct {
	Text      string `json:"text" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	UserID    string `json:"user_id"`
}

var errEmptyText = errors.New("text must not be blank")

func (r messageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

func (r messageReq) toInput() dispatch.Input {
	return dispatch.Input{
		Text: r.Text,
		Scope: model.Scope{
			UserID:    r.UserID,
			SessionID: r.SessionID,
		},
	}
}

type messageResp struct {
	Success  bool           `json:"success"`
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func newMessageResp(res dispatch.ActionResult) messageResp {
	return messageResp{
		Success:  res.Success,
		Type:     res.Type,
		Content:  res.Content,
		Metadata: res.Metadata,
	}
}

type skillItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Unit       string   `json:"unit"`
	Triggers   []string `json:"triggers,omitempty"`
	DailyGoal  float64  `json:"daily_goal,omitempty"`
	UsageCount int      `json:"usage_count"`
}

type listSkillsResp struct {
	Skills []skillItem `json:"skills"`
	Count  int         `json:"count"`
}

func newListSkillsResp(skills []model.Skill) listSkillsResp {
	items := make([]skillItem, 0, len(skills))
	for _, s := range skills {
		items = append(items, skillItem{
			ID:         s.ID,
			Name:       s.Name,
			Type:       s.Type,
			Unit:       s.Unit,
			Triggers:   s.Triggers,
			DailyGoal:  s.DailyGoal,
			UsageCount: s.UsageCount,
		})
	}
	return listSkillsResp{Skills: items, Count: len(items)}
}
