package util

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// đ не раскладывается через NFD, поэтому заменяется отдельно
var slugReplacer = strings.NewReplacer("đ", "d", "Đ", "d")

// Slug переводит заголовок в латиницу нижнего регистра через дефис:
// "Tin tức mới!" -> "tin-tuc-moi"
func Slug(title string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, slugReplacer.Replace(title))
	if err != nil {
		plain = title
	}
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(plain), "-"), "-")
}

// RandomSlug добавляет к Slug(title) случайный числовой суффикс из digits цифр
func RandomSlug(title string, digits int) string {
	suffix := make([]byte, digits)
	for i := range suffix {
		suffix[i] = byte('0' + rand.Intn(10))
	}

	base := Slug(title)
	if base == "" {
		return string(suffix)
	}
	return base + "-" + string(suffix)
}
