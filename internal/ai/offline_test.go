package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineAnalyzerLowMentorEnergy(t *testing.T) {
	a := NewOfflineAnalyzer()

	res, err := a.Analyze(context.Background(), CardSnapshot{
		MenteeName:   "Ana",
		MenteeGoal:   "Assumir a liderança do time de produto",
		EnergyMentor: 2,
		EnergyMentee: 6,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Analysis, "sua energia está baixa")
	assert.Contains(t, res.Suggestions[0], "drena minha energia")
}

func TestOfflineAnalyzerStuckProcess(t *testing.T) {
	a := NewOfflineAnalyzer()

	res, err := a.Analyze(context.Background(), CardSnapshot{
		MenteeName:       "Bruno",
		MenteeGoal:       "Melhorar a comunicação com o time",
		MentorResistance: "evita falar do chefe",
		EnergyMentee:     2,
		EnergyMentor:     6,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Analysis, "resistência")
	require.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions[0], "resistência")
}

func TestOfflineAnalyzerHighSynchrony(t *testing.T) {
	a := NewOfflineAnalyzer()

	res, err := a.Analyze(context.Background(), CardSnapshot{
		MenteeName:   "Clara",
		MenteeGoal:   "Lançar o produto no mercado europeu",
		EnergyMentee: 9,
		EnergyMentor: 8,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Analysis, "Sincronia alta")
}

func TestOfflineAnalyzerVagueGoal(t *testing.T) {
	a := NewOfflineAnalyzer()

	res, err := a.Analyze(context.Background(), CardSnapshot{
		MenteeName:   "Davi",
		MenteeGoal:   "  crescer ",
		EnergyMentee: 5,
		EnergyMentor: 5,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Analysis, "objetivo principal parece vago")
}

func TestOfflineAnalyzerOpenDecisions(t *testing.T) {
	a := NewOfflineAnalyzer()

	res, err := a.Analyze(context.Background(), CardSnapshot{
		MenteeName:    "Elisa",
		MenteeGoal:    "Decidir entre as duas propostas",
		DecisionsOpen: "aceitar a proposta da concorrente",
		EnergyMentee:  5,
		EnergyMentor:  5,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Analysis, "decisões em aberto")
	assert.Contains(t, res.Suggestions[0], "tomar essa decisão")
}

func TestOfflineAnalyzerDefaults(t *testing.T) {
	a := NewOfflineAnalyzer()

	// Nothing triggers: fall back to the generic prompts.
	res, err := a.Analyze(context.Background(), CardSnapshot{
		MenteeGoal:   "Construir um plano de carreira sólido",
		EnergyMentee: 5,
		EnergyMentor: 5,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Analysis, "o mentorado")
	require.Len(t, res.Suggestions, 2)
	assert.Contains(t, res.Analysis, "Modo offline")
}
