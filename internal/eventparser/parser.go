package eventparser

import (
	"regexp"
	"strings"

	"github.com/clarasbuffet/CBF-BookingService/internal/classifier"
	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

var (
	// Теги разметки: внешнее хранилище может вернуть описание с HTML
	// (rich-text редактор календаря, экранирование и т.п.).
	tagPattern = regexp.MustCompile(`<[^>]*>`)

	// Строка "Serviços: a, b, c" внутри описания события. Метка
	// нечувствительна к регистру и к наличию седильи, чтобы переживать
	// перекодировки хранилища.
	servicesLinePattern = regexp.MustCompile(`(?i)servi[çc]os:[ \t]*([^\n\r]*)`)
)

// Parser извлекает из непрозрачного события календаря список токенов услуг,
// которые это событие представляет. Никогда не возвращает ошибку: любой
// мусор на входе деградирует до "один токен из заголовка".
type Parser struct{}

// New создает парсер описаний событий.
func New() *Parser {
	return &Parser{}
}

// ExtractTokens возвращает упорядоченный список токенов услуг события.
//
// Порядок разбора:
//  1. из описания убирается разметка;
//  2. ищется строка "Serviços: ..."; найденный остаток режется по запятым,
//     каждый кусок нормализуется;
//  3. если строки нет (событие создано не этим сервисом) — единственным
//     токеном становится заголовок события в нижнем регистре.
func (p *Parser) ExtractTokens(evt *domain.BookedEvent) []string {
	cleaned := StripTags(evt.Description)

	if match := servicesLinePattern.FindStringSubmatch(cleaned); match != nil {
		if tokens := SplitTokens(match[1]); len(tokens) > 0 {
			return tokens
		}
	}

	// Деградация: события, созданные мимо сервиса, несут услугу в заголовке.
	return []string{classifier.Normalize(evt.Title)}
}

// SplitTokens режет сырую строку услуг по запятым и нормализует каждый
// токен. Пустые куски отбрасываются. Та же функция применяется к строке
// услуг входящего запроса, чтобы запрос и хранимые события проходили
// одинаковую нормализацию.
func SplitTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := classifier.Normalize(part)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// StripTags убирает из текста теги разметки.
func StripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}
