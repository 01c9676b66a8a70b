package eventparser

import (
	"fmt"
	"strings"
)

// BuildDescription собирает текст описания события в формате, который
// ExtractTokens умеет разбирать обратно. Формат — несущий контракт:
// события, записанные этой функцией, при последующем чтении должны давать
// ровно тот же список токенов (с точностью до регистра и пробелов).
func BuildDescription(services []string, guests int, total, location string) string {
	return fmt.Sprintf(
		"Serviços: %s\nConvidados: %d\nTotal: %s\nLocal: %s",
		strings.Join(services, ", "),
		guests,
		total,
		location,
	)
}
