package command

import "strings"

// Intent is the advisory tag inferred from free-text instructions. It is
// metadata only and never blocks sending the literal text.
type Intent string

const (
	IntentStart        Intent = "start"
	IntentStop         Intent = "stop"
	IntentUpdate       Intent = "update"
	IntentDelete       Intent = "delete"
	IntentUnclassified Intent = "unclassified"
)

// Keyword vocabularies per intent, covering English and Chinese operator
// phrasing. Order is the fixed match priority: mixed-intent text resolves
// to the first set that matches.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentStart, []string{"start", "execute", "开始", "执行"}},
	{IntentStop, []string{"stop", "pause", "停止", "暂停"}},
	{IntentUpdate, []string{"update", "modify", "更新", "修改"}},
	{IntentDelete, []string{"delete", "remove", "删除", "移除"}},
}

// ClassifyIntent scans instruction text for intent keywords,
// case-insensitively, in fixed priority order. No match yields
// IntentUnclassified.
func ClassifyIntent(text string) Intent {
	lowered := strings.ToLower(text)
	for _, set := range intentKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.intent
			}
		}
	}
	return IntentUnclassified
}
