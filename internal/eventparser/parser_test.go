package eventparser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarasbuffet/CBF-BookingService/internal/domain"
)

func TestExtractTokens_ServicesLine(t *testing.T) {
	p := New()

	evt := &domain.BookedEvent{
		Title:       "Festa: Maria",
		Description: "Serviços: Buffet Essencial, Carrinho de Pipoca\nConvidados: 40\nTotal: R$ 2.000,00\nLocal: Salão Azul",
	}

	assert.Equal(t, []string{"buffet essencial", "carrinho de pipoca"}, p.ExtractTokens(evt))
}

func TestExtractTokens_StripsMarkup(t *testing.T) {
	p := New()

	evt := &domain.BookedEvent{
		Title:       "Festa: João",
		Description: "<p><b>Serviços:</b> Buffet Premium, Cama Elástica</p>",
	}

	assert.Equal(t, []string{"buffet premium", "cama elástica"}, p.ExtractTokens(evt))
}

func TestExtractTokens_LabelIsCaseInsensitive(t *testing.T) {
	p := New()

	tests := []struct {
		name        string
		description string
	}{
		{name: "lowercase", description: "serviços: buffet essencial"},
		{name: "uppercase", description: "SERVIÇOS: buffet essencial"},
		{name: "without cedilla", description: "Servicos: buffet essencial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := &domain.BookedEvent{Title: "x", Description: tt.description}
			assert.Equal(t, []string{"buffet essencial"}, p.ExtractTokens(evt))
		})
	}
}

func TestExtractTokens_FallsBackToTitle(t *testing.T) {
	p := New()

	tests := []struct {
		name     string
		evt      *domain.BookedEvent
		expected []string
	}{
		{
			name:     "no description",
			evt:      &domain.BookedEvent{Title: "Locação: Cama Elástica"},
			expected: []string{"locação: cama elástica"},
		},
		{
			name:     "description without services line",
			evt:      &domain.BookedEvent{Title: "Reunião interna", Description: "ligar para o fornecedor"},
			expected: []string{"reunião interna"},
		},
		{
			name:     "services line with empty remainder",
			evt:      &domain.BookedEvent{Title: "Festa: Ana", Description: "Serviços: \nLocal: Salão"},
			expected: []string{"festa: ana"},
		},
		{
			name:     "everything empty still yields one token",
			evt:      &domain.BookedEvent{},
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.ExtractTokens(tt.evt))
		})
	}
}

func TestExtractTokens_OnlyFirstLineOfServices(t *testing.T) {
	p := New()

	// Токены не должны утащить за собой следующие строки описания
	evt := &domain.BookedEvent{
		Title:       "Festa: Pedro",
		Description: "Serviços: Buffet Especial, Algodão Doce\nConvidados: 30",
	}

	assert.Equal(t, []string{"buffet especial", "algodão doce"}, p.ExtractTokens(evt))
}

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "trims and lowercases",
			raw:      " Buffet Essencial ,  CAMA ELÁSTICA ",
			expected: []string{"buffet essencial", "cama elástica"},
		},
		{
			name:     "drops empty pieces",
			raw:      "buffet,,  ,pipoca",
			expected: []string{"buffet", "pipoca"},
		},
		{
			name:     "empty string yields nothing",
			raw:      "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitTokens(tt.raw))
		})
	}
}

func TestBuildDescription_RoundTrip(t *testing.T) {
	p := New()

	services := []string{"buffet premium", "carrinho de pipoca", "cama elástica"}
	description := BuildDescription(services, 35, "R$ 3.500,00", "Rua das Flores, 10")

	evt := &domain.BookedEvent{Title: "Festa: Clara", Description: description}

	// Записанное этим сервисом событие при чтении даёт ровно тот же
	// список токенов
	assert.Equal(t, services, p.ExtractTokens(evt))
}
