package view

import "github.com/moodlog/internal/mood"

// MoodOption describes one selectable mood in the submission form.
type MoodOption struct {
	Value string `json:"value"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// MoodOptions 按表单顺序列出全部心情，label 为 nil 时使用英文名称
func MoodOptions(label func(mood.Mood) string) []MoodOption {
	moods := mood.All()
	options := make([]MoodOption, 0, len(moods))
	for _, m := range moods {
		text := m.Label()
		if label != nil {
			text = label(m)
		}
		options = append(options, MoodOption{Value: m.String(), Emoji: m.Emoji(), Label: text})
	}
	return options
}
