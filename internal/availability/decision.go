package availability

import "github.com/clarasbuffet/CBF-BookingService/internal/domain"

// Reason причина отказа в допуске.
type Reason string

const (
	ReasonMainCapacityExceeded   Reason = "main_capacity_exceeded"
	ReasonRentalCapacityExceeded Reason = "rental_capacity_exceeded"
	ReasonEquipmentConflict      Reason = "equipment_conflict"
)

// Decision результат проверки допуска. Контракт движка тотален: Admit
// всегда возвращает Decision и никогда не прерывается ошибкой.
type Decision struct {
	Admitted  bool
	Reason    Reason
	Equipment domain.EquipmentKind // заполнено только для ReasonEquipmentConflict
}

func admitted() Decision {
	return Decision{Admitted: true}
}

func rejected(reason Reason) Decision {
	return Decision{Admitted: false, Reason: reason}
}

func rejectedEquipment(kind domain.EquipmentKind) Decision {
	return Decision{Admitted: false, Reason: ReasonEquipmentConflict, Equipment: kind}
}
