package classifier

import (
	"regexp"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// CategoryRule одна строка таблицы правил классификации:
// токен, совпавший с Pattern, относится к Category.
type CategoryRule struct {
	Pattern  *regexp.Regexp
	Category domain.Category
}

// EquipmentRule связывает паттерн токена с видом физического оборудования.
type EquipmentRule struct {
	Pattern *regexp.Regexp
	Kind    domain.EquipmentKind
}

// DefaultCategoryRules возвращает действующий словарь категорий.
// Порядок правил задаёт приоритет: Main проверяется раньше Rental,
// поэтому токен, попадающий под оба словаря (например "barraquinha"
// из-за подстроки "bar"), всегда классифицируется как Main.
//
// Hot dog / barraquinha относятся к Main: стойка хот-догов продаётся как
// основной пакет и не блокируется по времени.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			Pattern:  regexp.MustCompile(`buffet|essencial|especial|premium|massa|crepe|hot dog|barraquinha`),
			Category: domain.CategoryMain,
		},
		{
			Pattern:  regexp.MustCompile(`carrinho|algodão|pipoca|cama elástica|festbar|drinks|bar`),
			Category: domain.CategoryRental,
		},
	}
}

// DefaultEquipmentRules возвращает действующий словарь оборудования.
// Каждый вид существует в единственном экземпляре, поэтому два
// пересекающихся по времени бронирования одного вида недопустимы.
func DefaultEquipmentRules() []EquipmentRule {
	return []EquipmentRule{
		{
			Pattern: regexp.MustCompile(`carrinho|algodão|pipoca`),
			Kind:    domain.EquipmentPopcornCart,
		},
		{
			Pattern: regexp.MustCompile(`cama elástica`),
			Kind:    domain.EquipmentTrampoline,
		},
	}
}
