package memory

import (
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	team     *teamRepository
	optIn    *optInRepository
	question *questionRepository
	resource *resourceRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		team:     newTeamRepository(),
		optIn:    newOptInRepository(),
		question: newQuestionRepository(),
		resource: newResourceRepository(),
	}
}

func (m *Memory) Team() interfaces.TeamRepository {
	return m.team
}

func (m *Memory) OptIn() interfaces.OptInRepository {
	return m.optIn
}

func (m *Memory) Question() interfaces.QuestionRepository {
	return m.question
}

func (m *Memory) Resource() interfaces.ResourceRepository {
	return m.resource
}

func (m *Memory) Close() error {
	return nil
}
