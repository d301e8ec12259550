package locale

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

type Preference struct {
	Language string
	Locale   string
	HTMLLang string
}

var acceptMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Chinese,
})

func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "zh") || trimmed == "cn" {
		return LanguageChinese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// LanguageFromAcceptLanguage picks the supported language that best matches an
// Accept-Language header, or "" when nothing matches.
func LanguageFromAcceptLanguage(header string) string {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(trimmed)
	if err != nil || len(tags) == 0 {
		return ""
	}
	tag, _, confidence := acceptMatcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	base, _ := tag.Base()
	return NormalizeLanguage(base.String())
}

func PreferenceForLanguage(language string) Preference {
	normalized := NormalizeLanguage(language)
	if normalized == LanguageChinese {
		return Preference{Language: LanguageChinese, Locale: "zh_CN", HTMLLang: "zh-CN"}
	}
	return Preference{Language: LanguageEnglish, Locale: "en_US", HTMLLang: "en-US"}
}
