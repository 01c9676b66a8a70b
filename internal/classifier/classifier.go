package classifier

import (
	"strings"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

// Classifier относит текстовые токены услуг к категориям и видам
// оборудования по таблице правил. Чистая функция от текста токена:
// никакого состояния, результат детерминирован.
type Classifier struct {
	categoryRules  []CategoryRule
	equipmentRules []EquipmentRule
}

// New создает классификатор с действующими словарями.
func New() *Classifier {
	return NewWithRules(DefaultCategoryRules(), DefaultEquipmentRules())
}

// NewWithRules создает классификатор с заданными таблицами правил.
// Используется в тестах и оставляет возможность конфигурировать словари
// без правки кода.
func NewWithRules(categoryRules []CategoryRule, equipmentRules []EquipmentRule) *Classifier {
	return &Classifier{
		categoryRules:  categoryRules,
		equipmentRules: equipmentRules,
	}
}

// Classify возвращает категорию токена. Правила проверяются по порядку,
// первое совпадение выигрывает; токен без совпадений — CategoryNone.
func (c *Classifier) Classify(token string) domain.Category {
	normalized := Normalize(token)
	for _, rule := range c.categoryRules {
		if rule.Pattern.MatchString(normalized) {
			return rule.Category
		}
	}
	return domain.CategoryNone
}

// EquipmentKind возвращает вид оборудования, который представляет токен.
// Проверка независима от Classify: токен категории None формально тоже
// можно спросить, он просто не совпадёт ни с одним правилом.
func (c *Classifier) EquipmentKind(token string) domain.EquipmentKind {
	normalized := Normalize(token)
	for _, rule := range c.equipmentRules {
		if rule.Pattern.MatchString(normalized) {
			return rule.Kind
		}
	}
	return domain.EquipmentNone
}

// Normalize приводит токен к каноническому виду перед сопоставлением:
// обрезает пробелы и переводит в нижний регистр.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
