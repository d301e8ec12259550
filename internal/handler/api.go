package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moodlog/internal/service"
)

const siteName = "Nova Mood"

// API bundles shared dependencies for HTTP handlers.
type API struct {
	moods *service.MoodService
	now   func() time.Time
}

// NewAPI constructs a handler set around the mood service.
func NewAPI(moods *service.MoodService) *API {
	return &API{moods: moods, now: time.Now}
}

// Moods exposes the underlying service for the CLI and tests.
func (a *API) Moods() *service.MoodService {
	return a.moods
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	pref := a.requestLocale(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = siteName
	}
	if _, exists := payload["lang"]; !exists {
		payload["lang"] = pref.Language
	}
	if _, exists := payload["htmlLang"]; !exists {
		payload["htmlLang"] = pref.HTMLLang
	}
	if _, exists := payload["t"]; !exists {
		payload["t"] = translations(pref.Language)
	}
	if _, exists := payload["langSwitch"]; !exists {
		payload["langSwitch"] = buildLanguageSwitch(c)
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = a.now().Year()
	}

	c.HTML(status, template, payload)
}

// RenderHTML 在向模板渲染时自动附加站点名称、语言与界面文案。
func (a *API) RenderHTML(c *gin.Context, status int, template string, data gin.H) {
	a.renderHTML(c, status, template, data)
}
