package testutils

import (
	"testing"

	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/stretchr/testify/require"
)

// Default values used by MustCreateQuestionForTest.
const (
	DefaultQuestionBody          = "What is the name of Harry Potter's pet owl?"
	DefaultQuestionTopic         = "Harry Potter Trivia"
	DefaultQuestionCorrectChoice = 1
	DefaultQuestionWeight        = 10
)

// DefaultQuestionChoices returns a fresh copy of the default choices.
func DefaultQuestionChoices() []string {
	return []string{"Scabbers", "Hedwig", "Crookshanks", "Fawkes"}
}

// QuestionParams holds the constructor arguments of a test question.
type QuestionParams struct {
	Body          string
	Choices       []string
	CorrectChoice int
	Topic         string
	Weight        int
}

// QuestionOption is a function that configures QuestionParams for testing.
type QuestionOption func(*QuestionParams)

// WithQuestionBody sets the body of the test question.
func WithQuestionBody(body string) QuestionOption {
	return func(p *QuestionParams) {
		p.Body = body
	}
}

// WithQuestionChoices sets the choices of the test question.
func WithQuestionChoices(choices ...string) QuestionOption {
	return func(p *QuestionParams) {
		p.Choices = choices
	}
}

// WithQuestionCorrectChoice sets the correct choice index of the test question.
func WithQuestionCorrectChoice(index int) QuestionOption {
	return func(p *QuestionParams) {
		p.CorrectChoice = index
	}
}

// WithQuestionTopic sets the initial topic of the test question.
func WithQuestionTopic(topic string) QuestionOption {
	return func(p *QuestionParams) {
		p.Topic = topic
	}
}

// WithQuestionWeight sets the weight of the test question.
func WithQuestionWeight(weight int) QuestionOption {
	return func(p *QuestionParams) {
		p.Weight = weight
	}
}

// NewQuestionParams returns the default question parameters with opts applied.
func NewQuestionParams(opts ...QuestionOption) QuestionParams {
	p := QuestionParams{
		Body:          DefaultQuestionBody,
		Choices:       DefaultQuestionChoices(),
		CorrectChoice: DefaultQuestionCorrectChoice,
		Topic:         DefaultQuestionTopic,
		Weight:        DefaultQuestionWeight,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// CreateQuestion builds a question from the default parameters with opts
// applied and returns whatever domain.NewQuestion returns.
func CreateQuestion(opts ...QuestionOption) (*domain.Question, error) {
	p := NewQuestionParams(opts...)
	return domain.NewQuestion(p.Body, p.Choices, p.CorrectChoice, p.Topic, p.Weight)
}

// MustCreateQuestionForTest creates a valid question for testing.
// It fails the test if construction is rejected.
func MustCreateQuestionForTest(t *testing.T, opts ...QuestionOption) *domain.Question {
	t.Helper()

	q, err := CreateQuestion(opts...)
	require.NoError(t, err, "Failed to create test question")
	return q
}

// FillTopics adds random valid topics until q holds its maximum number of
// topics. It fails the test if any add is rejected.
func FillTopics(t *testing.T, q *domain.Question) {
	t.Helper()

	for len(q.Topics()) < q.MaximumTopics() {
		require.NoError(t, q.AddTopic(UniqueValidTopic(q.Topics())), "Failed to add topic")
	}
}

// AssertQuestionUnchanged verifies that every accessor of q still reflects p.
// It is used after a rejected mutation to check that nothing leaked.
func AssertQuestionUnchanged(t *testing.T, q *domain.Question, p QuestionParams, topics []string) {
	t.Helper()

	require.Equal(t, p.Body, q.Body(), "Body should be unchanged")
	require.Equal(t, p.Choices, q.Choices(), "Choices should be unchanged")
	require.Equal(t, p.CorrectChoice, q.CorrectChoice(), "CorrectChoice should be unchanged")
	require.Equal(t, p.Weight, q.Weight(), "Weight should be unchanged")
	require.Equal(t, topics, q.Topics(), "Topics should be unchanged")
}
