package handler

import (
	"fmt"
	"time"

	"github.com/moodlog/internal/locale"
	"github.com/moodlog/internal/mood"
)

type uiMessage struct {
	English string
	Chinese string
}

var uiMessages = map[string]uiMessage{
	"title":           {English: "Nova Mood - Mood Tracker", Chinese: "Nova Mood - 心情记录"},
	"tagline":         {English: "Track your mood, understand yourself better", Chinese: "记录心情，更好地了解自己"},
	"saved":           {English: "Mood saved successfully!", Chinese: "心情已保存！"},
	"prompt":          {English: "How are you feeling today?", Chinese: "今天感觉怎么样？"},
	"notePlaceholder": {English: "What's on your mind? (optional)", Chinese: "在想些什么？（可选）"},
	"submit":          {English: "Save Mood", Chinese: "保存心情"},
	"historyHeading":  {English: "Your Mood History", Chinese: "心情历史"},
	"empty":           {English: "No moods tracked yet. Start by recording your first mood!", Chinese: "还没有记录，先记下第一份心情吧！"},
	"errorHeading":    {English: "Something went wrong", Chinese: "出错了"},
	"backHome":        {English: "Back to home", Chinese: "返回首页"},
	"errLoad":         {English: "Could not load your mood history.", Chinese: "加载心情历史失败"},
	"errSave":         {English: "Could not save your mood. Please try again.", Chinese: "保存失败，请稍后重试"},
	"errInvalidMood":  {English: "Please pick one of the listed moods.", Chinese: "请选择列表中的心情"},
	"errNoteTooLong":  {English: "That note is too long.", Chinese: "备注太长了"},
	"mood_amazing":    {English: "Amazing", Chinese: "超棒"},
	"mood_good":       {English: "Good", Chinese: "不错"},
	"mood_okay":       {English: "Okay", Chinese: "一般"},
	"mood_sad":        {English: "Sad", Chinese: "难过"},
	"mood_stressed":   {English: "Stressed", Chinese: "焦虑"},
}

// translate returns the message for key, or key itself when it is unknown.
func translate(language, key string) string {
	msg, ok := uiMessages[key]
	if !ok {
		return key
	}
	return locale.Pick(language, msg.English, msg.Chinese)
}

func translations(language string) map[string]string {
	result := make(map[string]string, len(uiMessages))
	for key := range uiMessages {
		result[key] = translate(language, key)
	}
	return result
}

func moodLabel(language string, m mood.Mood) string {
	key := "mood_" + m.String()
	if _, ok := uiMessages[key]; !ok {
		return m.Label()
	}
	return translate(language, key)
}

// formatRelativeTime 以 now 为基准描述 t 距今多久，未来时间视为刚刚
func formatRelativeTime(now, t time.Time, language string) string {
	if t.IsZero() {
		return ""
	}

	diff := now.Sub(t)
	if diff < time.Minute {
		return locale.Pick(language, "just now", "刚刚")
	}
	if diff < time.Hour {
		return relativeUnit(language, int(diff.Minutes()), "minute", "分钟")
	}
	if diff < 24*time.Hour {
		return relativeUnit(language, int(diff.Hours()), "hour", "小时")
	}

	days := int(diff.Hours() / 24)
	switch {
	case days < 30:
		return relativeUnit(language, days, "day", "天")
	case days < 365:
		return relativeUnit(language, days/30, "month", "个月")
	default:
		return relativeUnit(language, days/365, "year", "年")
	}
}

func relativeUnit(language string, count int, english, chinese string) string {
	suffix := ""
	if count != 1 {
		suffix = "s"
	}
	return locale.Pick(language,
		fmt.Sprintf("%d %s%s ago", count, english, suffix),
		fmt.Sprintf("%d%s前", count, chinese),
	)
}
