package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Supported languages. English strings double as catalog keys, so English
// needs no entries of its own.
const (
	Vietnamese = "vi"
	English    = "en"
)

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder()
	for key, vi := range vietnamese {
		if err := b.SetString(language.Vietnamese, key, vi); err != nil {
			panic(err)
		}
	}
	return b
}

func tag(lang string) language.Tag {
	if lang == English {
		return language.English
	}
	return language.Vietnamese
}

// Printer returns a printer for lang; anything other than "en" is Vietnamese.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(tag(lang), message.Catalog(messages))
}

// T translates key, formatting args into it.
func T(lang, key string, args ...interface{}) string {
	return Printer(lang).Sprintf(key, args...)
}

// FormatVND renders amount as whole dong with Vietnamese grouping, e.g. "500.000 ₫".
func FormatVND(amount decimal.Decimal) string {
	p := message.NewPrinter(language.Vietnamese)
	return p.Sprint(number.Decimal(amount.IntPart())) + " ₫"
}
