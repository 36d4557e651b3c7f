// Package interpreter holds the deterministic interpretation fallback used
// when the external generator is unavailable, and the two-branch result type
// that records which path produced the text.
package interpreter

import "strings"

type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

type Result struct {
	Text   string
	Source Source
}

const (
	nightmareText = `Кошмары часто являются способом психики справиться с подавленными страхами или стрессом. Они не предсказывают будущее, а отражают внутренние тревоги. Важно помнить, что даже пугающие образы - это метафоры вашего подсознания.`

	recurringText = `Повторяющиеся сны указывают на важную неразрешенную тему в вашей жизни. Психика настойчиво пытается привлечь ваше внимание к чему-то существенному. Такие сны часто прекращаются, когда человек осознает их послание.`

	lucidText = `Осознанные сны демонстрируют высокий уровень самосознания. Это может быть признаком вашего стремления к большему контролю над своей жизнью. Используйте эту возможность для самоисследования.`

	defaultText = `Благодарю вас за доверие. Ваш сон содержит важные символы, которые отражают внутренние процессы вашей психики. Каждый элемент сна - это метафора, созданная вашим подсознанием для передачи важного послания. Обратите внимание на эмоции, которые вы испытывали во сне.`
)

type rule struct {
	keyword string
	text    string
}

// Order matters: the first matching rule wins, so a dream mentioning both
// nightmares and recurrence resolves to the nightmare paragraph.
var rules = []rule{
	{keyword: "кошмар", text: nightmareText},
	{keyword: "повтор", text: recurringText},
	{keyword: "осознан", text: lucidText},
}

// Classify picks the canned interpretation for a dream text. Matching is a
// plain case-insensitive substring test against the raw text, no tokenization.
func Classify(dreamText string) string {
	lower := strings.ToLower(dreamText)
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.text
		}
	}
	return defaultText
}
