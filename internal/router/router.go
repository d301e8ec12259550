package router

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/moodlog/internal/handler"
	"github.com/moodlog/web"
)

const sessionName = "moodlog_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) (*gin.Engine, error) {
	r := gin.Default()

	tmpl, err := web.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// 会话仅用于一次性的错误提示
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 10 * 60})
	r.Use(handler.RequestID())
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	pages := r.Group("")
	pages.Use(api.LocaleMiddleware())
	{
		pages.GET("/", api.ShowHome)
		pages.POST("/save", api.SaveMood)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/moods", api.ListMoods)
	}

	return r, nil
}
