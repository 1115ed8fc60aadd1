package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for error codes.
// data provides values substituted into {placeholders} of the message
// (for example "func", "names", "max", "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"too_many_positional": "{func}() takes {max} positional arguments but {got} were given",
		"unexpected_named":    "{func}() got unexpected named arguments: {names}",
		"missing_required":    "{func}() missing required arguments: {names}",
		"validation_failed":   "{func}(): invalid value for argument {names}: {cause}",
		"invalid_declaration": "{func}: invalid parameter declaration: {cause}",
	},
	"ja": {
		"too_many_positional": "{func}() の位置引数は最大 {max} 個ですが {got} 個渡されました",
		"unexpected_named":    "{func}() に想定外の名前付き引数があります: {names}",
		"missing_required":    "{func}() の必須引数が不足しています: {names}",
		"validation_failed":   "{func}(): 引数 {names} の値が不正です: {cause}",
		"invalid_declaration": "{func}: パラメータ宣言が不正です: {cause}",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := dictionaries[t.lang]
	if !ok {
		dict = dictionaries["en"]
	}
	msg, ok := dict[code]
	if !ok {
		return code
	}
	return expand(msg, data)
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
