package ai

import (
	"context"
	"fmt"
	"strings"
)

// OfflineAnalyzer is the fallback when no external service is configured.
// It mirrors the mentor copilot's heuristics: mirroring the mentor's own
// perception back, reading energy patterns and provoking the open
// decisions.
type OfflineAnalyzer struct{}

func NewOfflineAnalyzer() *OfflineAnalyzer {
	return &OfflineAnalyzer{}
}

func (a *OfflineAnalyzer) Analyze(ctx context.Context, card CardSnapshot) (Result, error) {
	var parts []string
	var suggestions []string

	name := card.MenteeName
	if name == "" {
		name = "o mentorado"
	}

	// Espelhamento
	if card.MentorPerception != "" {
		parts = append(parts, fmt.Sprintf("Você percebe que %s está '%s'.", name, card.MentorPerception))
	} else {
		parts = append(parts, fmt.Sprintf("Analisando o contexto de %s.", name))
	}

	// Energia baixa do mentor: possível barreira ou contratransferência.
	if card.EnergyMentor < 4 {
		parts = append(parts, "Padrão detectado: sua energia está baixa para este caso. Isso pode indicar uma barreira invisível ou contratransferência.")
		suggestions = append(suggestions, "Antes da próxima sessão, pergunte-se: o que neste mentorado drena minha energia?")
	}

	// Resistência combinada com baixa energia do mentorado: processo travado.
	if card.MentorResistance != "" && card.EnergyMentee < 4 {
		parts = append(parts, "Há uma resistência clara combinada com baixa energia do mentorado. O processo pode estar travado por falta de 'buy-in'.")
		suggestions = append(suggestions, "Pare de empurrar a solução. Investigue a resistência validando o sentimento do mentorado primeiro.")
	}

	// Sincronia alta: momento para stretch goals.
	if card.EnergyMentor > 7 && card.EnergyMentee > 7 {
		parts = append(parts, "Sincronia alta: ambos estão com alta energia. É o momento ideal para desafios maiores.")
		suggestions = append(suggestions, "Aproveite o momento de fluxo para propor o passo mais ousado do plano.")
	}

	// Objetivo vago.
	if len(strings.TrimSpace(card.MenteeGoal)) < 10 {
		parts = append(parts, "O objetivo principal parece vago ou não definido.")
		suggestions = append(suggestions, "A primeira missão é clarificar o objetivo. Sem meta clara, qualquer caminho serve.")
	}

	// Provocação sobre decisões em aberto.
	if card.DecisionsOpen != "" {
		parts = append(parts, fmt.Sprintf("Você tem decisões em aberto: '%s'.", card.DecisionsOpen))
		suggestions = append(suggestions, "O que te impede de tomar essa decisão agora? Medo do erro ou falta de dados?")
	}

	if len(suggestions) == 0 {
		suggestions = []string{
			"Tente identificar qual emoção esse mentorado desperta em você.",
			"Qual seria o pequeno passo mais impactante para esta semana?",
		}
	}

	analysis := strings.Join(parts, " ") + " (Modo offline — configure AI_SERVICE_URL para análise com IA.)"
	return Result{Analysis: analysis, Suggestions: suggestions}, nil
}
