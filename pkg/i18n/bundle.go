// Package i18n resolves user facing strings from keyed, per-locale message tables.
//
// A Localizer is resolved once per request and then used for every lookup made
// while serving it.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

type Key string

type Bundle struct {
	tags     []language.Tag
	messages []map[Key]string
	matcher  language.Matcher
}

// NewBundle creates a bundle whose first table is the fallback for missing keys
// and unmatched locales.
func NewBundle(fallback language.Tag, messages map[Key]string) *Bundle {
	b := &Bundle{}
	b.Add(fallback, messages)

	return b
}

// Add registers (or replaces) the table for tag.
func (b *Bundle) Add(tag language.Tag, messages map[Key]string) {
	for i, t := range b.tags {
		if t == tag {
			b.messages[i] = messages
			b.matcher = language.NewMatcher(b.tags)

			return
		}
	}

	b.tags = append(b.tags, tag)
	b.messages = append(b.messages, messages)
	b.matcher = language.NewMatcher(b.tags)
}

// Localizer picks the best table for the given preferences. Each preference may be
// a plain tag ("pt") or a full Accept-Language header value.
func (b *Bundle) Localizer(prefs ...string) *Localizer {
	var wanted []language.Tag

	for _, p := range prefs {
		if p == "" {
			continue
		}

		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}

		wanted = append(wanted, tags...)
	}

	idx := 0
	if len(wanted) > 0 {
		_, idx, _ = b.matcher.Match(wanted...)
	}

	return &Localizer{
		tag:      b.tags[idx],
		messages: b.messages[idx],
		fallback: b.messages[0],
	}
}

type Localizer struct {
	tag      language.Tag
	messages map[Key]string
	fallback map[Key]string
}

func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for key, formatted with args when given. Unknown keys
// return the key itself.
func (l *Localizer) T(key Key, args ...any) string {
	msg, ok := l.messages[key]
	if !ok {
		msg, ok = l.fallback[key]
	}

	if !ok {
		msg = string(key)
	}

	if len(args) == 0 {
		return msg
	}

	return fmt.Sprintf(msg, args...)
}
