package services

import (
	"regexp"
	"strings"
)

// Spam reason codes stored on flagged contact submissions.
const (
	SpamInappropriateLanguage = "inappropriate_language"
	SpamLinks                 = "links"
	SpamRepeatedCharacters    = "repeated_characters"
)

var BannedWords = []string{
	"casino", "казино", "viagra", "виагра", "porn", "порно",
	"crypto", "криптовалюта", "букмекер", "ставки",
	"scam", "phishing", "malware",
	"хуй", "пизда", "блять", "сука",
}

// ScreeningService flags obvious spam in free-text contact fields. It never
// rejects input; callers store the reason next to the submission.
type ScreeningService struct {
	bannedWordRegexps   []*regexp.Regexp
	urlPattern          *regexp.Regexp
	repeatedCharPattern *regexp.Regexp
}

func NewScreeningService() *ScreeningService {
	s := &ScreeningService{
		bannedWordRegexps: make([]*regexp.Regexp, 0, len(BannedWords)),
		urlPattern:        regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+|\S+\.(ru|com|net|org|io|xyz)/\S*)`),
		// RE2 has no backreferences, so the run is matched per character class.
		repeatedCharPattern: regexp.MustCompile(`(?i)(a{6,}|e{6,}|o{6,}|а{6,}|е{6,}|о{6,}|!{6,}|\?{6,}|\.{10,}|\${3,})`),
	}

	for _, word := range BannedWords {
		// \b only understands ASCII word characters, so Cyrillic words are
		// bounded by start/end or non-letters instead.
		pattern := `(?i)(^|[^\p{L}])` + regexp.QuoteMeta(word) + `($|[^\p{L}])`
		if re, err := regexp.Compile(pattern); err == nil {
			s.bannedWordRegexps = append(s.bannedWordRegexps, re)
		}
	}
	return s
}

// Screen returns a spam reason for text, or "" when nothing is flagged.
func (s *ScreeningService) Screen(fields ...string) string {
	text := strings.TrimSpace(strings.Join(fields, " "))
	if text == "" {
		return ""
	}
	for _, re := range s.bannedWordRegexps {
		if re.MatchString(text) {
			return SpamInappropriateLanguage
		}
	}
	if s.urlPattern.MatchString(text) {
		return SpamLinks
	}
	if s.repeatedCharPattern.MatchString(text) {
		return SpamRepeatedCharacters
	}
	return ""
}
