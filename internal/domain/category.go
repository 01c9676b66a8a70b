package domain

// Category is the capacity bucket a service token falls into.
type Category string

const (
	CategoryMain   Category = "main"   // основной пакет (buffet, massas, crepe, hot dog)
	CategoryRental Category = "rental" // отдельное оборудование в аренду
	CategoryNone   Category = "none"   // свободный текст, не участвует в подсчётах
)

// EquipmentKind is the physical-uniqueness class of a rental item. Two
// bookings of the same kind cannot overlap in time within one day.
type EquipmentKind string

const (
	EquipmentNone        EquipmentKind = ""
	EquipmentPopcornCart EquipmentKind = "carrinho_pipoca"
	EquipmentTrampoline  EquipmentKind = "cama_elastica"
)

// EquipmentKinds перечисляет все виды оборудования в порядке проверки
// конфликтов. Порядок фиксирован, чтобы при нескольких конфликтах клиент
// всегда видел одно и то же сообщение.
var EquipmentKinds = []EquipmentKind{
	EquipmentPopcornCart,
	EquipmentTrampoline,
}
