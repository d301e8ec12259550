// Package mood holds the closed set of mood categories and the entry record
// persisted for every submission.
package mood

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout 是持久化时间戳的格式，秒级精度、本地时间。
const TimestampLayout = "2006-01-02 15:04:05"

// ErrUnknownMood 在输入不属于五种心情之一时返回
var ErrUnknownMood = errors.New("unknown mood")

// Mood 表示一个心情分类
type Mood string

const (
	Amazing  Mood = "amazing"
	Good     Mood = "good"
	Okay     Mood = "okay"
	Sad      Mood = "sad"
	Stressed Mood = "stressed"
)

type moodAsset struct {
	Mood  Mood
	Emoji string
	Label string
}

var (
	moodDefinitions = []moodAsset{
		{Mood: Amazing, Emoji: "😄", Label: "Amazing"},
		{Mood: Good, Emoji: "😊", Label: "Good"},
		{Mood: Okay, Emoji: "😐", Label: "Okay"},
		{Mood: Sad, Emoji: "😢", Label: "Sad"},
		{Mood: Stressed, Emoji: "😰", Label: "Stressed"},
	}
	moodLookup = func() map[Mood]moodAsset {
		lookup := make(map[Mood]moodAsset, len(moodDefinitions))
		for _, def := range moodDefinitions {
			lookup[def.Mood] = def
		}
		return lookup
	}()
)

// All 按表单展示顺序返回全部心情
func All() []Mood {
	moods := make([]Mood, 0, len(moodDefinitions))
	for _, def := range moodDefinitions {
		moods = append(moods, def.Mood)
	}
	return moods
}

// Parse 校验并规范化外部输入，未知值返回 ErrUnknownMood。
func Parse(raw string) (Mood, error) {
	normalized := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := moodLookup[normalized]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMood, raw)
	}
	return normalized, nil
}

func (m Mood) String() string {
	return string(m)
}

// Emoji returns the display glyph for m.
func (m Mood) Emoji() string {
	return EmojiFor(string(m))
}

// Label returns the English display name, or the raw value for unknown moods.
func (m Mood) Label() string {
	if def, ok := moodLookup[m]; ok {
		return def.Label
	}
	return string(m)
}

// EmojiFor maps a stored mood value to its glyph. Values outside the closed set,
// including the empty string, fall back to the okay glyph.
func EmojiFor(m string) string {
	if def, ok := moodLookup[Mood(m)]; ok {
		return def.Emoji
	}
	return moodLookup[Okay].Emoji
}

// Entry 是一条持久化的心情记录，字段顺序与 JSON 文件保持一致
type Entry struct {
	Mood      string `json:"mood"`
	Emoji     string `json:"emoji"`
	Note      string `json:"note"`
	Timestamp string `json:"timestamp"`
}

// NewEntry 构造一条记录，时间戳按 now 所在时区截断到秒
func NewEntry(m Mood, note string, now time.Time) Entry {
	return Entry{
		Mood:      string(m),
		Emoji:     m.Emoji(),
		Note:      strings.TrimSpace(note),
		Timestamp: now.Format(TimestampLayout),
	}
}

// Time parses the entry timestamp in loc. A nil loc means time.Local.
func (e Entry) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(TimestampLayout, e.Timestamp, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse entry timestamp: %w", err)
	}
	return t, nil
}
