package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/service"
	"github.com/moodlog/internal/view"
)

const flashErrorKey = "flash_error"

type entryView struct {
	Mood      string
	Label     string
	Emoji     string
	Timestamp string
	Relative  string
	Note      template.HTML
}

// ShowHome 渲染首页：心情表单 + 最近的记录
func (a *API) ShowHome(c *gin.Context) {
	pref := a.requestLocale(c)

	entries, err := a.moods.Recent(c.Request.Context())
	if err != nil {
		log.Printf("[mood] load history failed request_id=%s: %v", requestID(c), err)
		a.renderError(c, http.StatusInternalServerError, "errLoad")
		return
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":       translate(pref.Language, "title"),
		"moodOptions": buildMoodOptions(pref.Language),
		"entries":     buildEntryViews(entries, a.now(), pref.Language),
		"saved":       c.Query("saved") == "true",
		"flashError":  popFlashError(c, pref.Language),
	})
}

// SaveMood 处理表单提交。缺少 mood 时不记录任何内容，但仍按成功重定向。
func (a *API) SaveMood(c *gin.Context) {
	input := service.MoodInput{
		Mood: c.PostForm("mood"),
		Note: c.PostForm("note"),
	}

	_, err := a.moods.Record(c.Request.Context(), input)
	switch {
	case err == nil, errors.Is(err, service.ErrMoodMissing):
		c.Redirect(http.StatusFound, "/?saved=true")
	case errors.Is(err, service.ErrMoodInvalid):
		addFlashError(c, "errInvalidMood")
		c.Redirect(http.StatusFound, "/")
	case errors.Is(err, service.ErrNoteTooLong):
		addFlashError(c, "errNoteTooLong")
		c.Redirect(http.StatusFound, "/")
	default:
		log.Printf("[mood] save failed request_id=%s: %v", requestID(c), err)
		a.renderError(c, http.StatusInternalServerError, "errSave")
	}
}

// ListMoods 返回最近的记录 JSON，最新在前
func (a *API) ListMoods(c *gin.Context) {
	limit := parsePositiveInt(c.Query("limit"), a.moods.RecentLimit())

	entries, err := a.moods.RecentN(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[mood] list api failed request_id=%s: %v", requestID(c), err)
		respondError(c, http.StatusInternalServerError, "failed to load mood history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"moods": entries})
}

func (a *API) renderError(c *gin.Context, status int, messageKey string) {
	pref := a.requestLocale(c)
	a.renderHTML(c, status, "error.html", gin.H{
		"title": translate(pref.Language, "errorHeading"),
		"error": translate(pref.Language, messageKey),
	})
}

func buildMoodOptions(language string) []view.MoodOption {
	return view.MoodOptions(func(m mood.Mood) string {
		return moodLabel(language, m)
	})
}

func buildEntryViews(entries []mood.Entry, now time.Time, language string) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		emoji := entry.Emoji
		if emoji == "" {
			emoji = mood.EmojiFor(entry.Mood)
		}

		var relative string
		if stamp, err := entry.Time(now.Location()); err == nil {
			relative = formatRelativeTime(now, stamp, language)
		}

		views = append(views, entryView{
			Mood:      entry.Mood,
			Label:     moodLabel(language, mood.Mood(entry.Mood)),
			Emoji:     emoji,
			Timestamp: entry.Timestamp,
			Relative:  relative,
			Note:      renderNote(entry.Note),
		})
	}
	return views
}

func addFlashError(c *gin.Context, messageKey string) {
	session := sessions.Default(c)
	session.AddFlash(messageKey, flashErrorKey)
	if err := session.Save(); err != nil {
		c.Error(err)
	}
}

func popFlashError(c *gin.Context, language string) string {
	session := sessions.Default(c)
	flashes := session.Flashes(flashErrorKey)
	if len(flashes) == 0 {
		return ""
	}
	if err := session.Save(); err != nil {
		c.Error(err)
	}
	key, _ := flashes[0].(string)
	return translate(language, key)
}
