package domain

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Question limits
const (
	MinChoices     = 2
	MaxChoices     = 8
	MaxTopics      = 5
	MinTopicLength = 6
	MinWeight      = 1
	MaxWeight      = 15
)

// Question is a multiple choice quiz question. It owns its validation rules:
// a Question returned by NewQuestion always satisfies them, and every mutating
// method either succeeds or leaves the Question exactly as it was.
//
// A Question is not safe for concurrent use.
type Question struct {
	id            uuid.UUID
	body          string
	choices       []string
	correctChoice int
	topics        []string
	weight        int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewQuestion creates a new Question with a single topic.
// The choices slice is copied. Returns an error wrapping ErrInvalidOperation
// if any field fails validation, in which case no Question is returned.
//
// The initial topic is not subject to MinTopicLength; only topics added later
// through AddTopic are.
func NewQuestion(body string, choices []string, correctChoice int, topic string, weight int) (*Question, error) {
	now := time.Now().UTC()
	q := &Question{
		id:            uuid.New(),
		body:          body,
		choices:       slices.Clone(choices),
		correctChoice: correctChoice,
		topics:        []string{topic},
		weight:        weight,
		createdAt:     now,
		updatedAt:     now,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
// Checks run in a fixed order and the first failure is returned.
func (q *Question) Validate() error {
	if err := validateBody(q.body); err != nil {
		return err
	}
	if err := validateChoices(q.choices); err != nil {
		return err
	}
	if err := validateCorrectChoice(q.correctChoice, len(q.choices)); err != nil {
		return err
	}
	if err := validateTopics(q.topics); err != nil {
		return err
	}
	return validateWeight(q.weight)
}

// AddTopic appends a topic to the question.
// The topic must have at least MinTopicLength characters, must not already be
// present, and the question must hold fewer than MaxTopics topics. The checks
// run in that order.
func (q *Question) AddTopic(topic string) error {
	if utf8.RuneCountInString(topic) < MinTopicLength {
		return fmt.Errorf("%w: %q", ErrTopicTooShort, topic)
	}

	if slices.Contains(q.topics, topic) {
		return fmt.Errorf("%w: %q", ErrTopicExists, topic)
	}

	if len(q.topics) >= MaxTopics {
		return ErrTopicLimitReached
	}

	q.topics = append(q.topics, topic)
	q.touch()
	return nil
}

// RemoveTopic removes a topic from the question, keeping the order of the
// remaining topics. The last remaining topic cannot be removed.
func (q *Question) RemoveTopic(topic string) error {
	i := slices.Index(q.topics, topic)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrTopicNotFound, topic)
	}

	if len(q.topics) == 1 {
		return fmt.Errorf("%w: %q", ErrLastTopic, topic)
	}

	q.topics = slices.Delete(q.topics, i, i+1)
	q.touch()
	return nil
}

// SetWeight changes the weight of the question.
func (q *Question) SetWeight(weight int) error {
	if err := validateWeight(weight); err != nil {
		return err
	}

	q.weight = weight
	q.touch()
	return nil
}

// Grade computes the score for a selected choice.
//
// Scoring rules are not defined, so Grade always returns ErrGradeNotSpecified.
func (q *Question) Grade(selectedChoice int) (float64, error) {
	return 0, ErrGradeNotSpecified
}

// ID returns the question's unique identifier.
func (q *Question) ID() uuid.UUID { return q.id }

// Body returns the question text.
func (q *Question) Body() string { return q.body }

// Choices returns a copy of the answer choices in order.
func (q *Question) Choices() []string { return slices.Clone(q.choices) }

// CorrectChoice returns the index of the correct choice.
func (q *Question) CorrectChoice() int { return q.correctChoice }

// Topics returns a copy of the topics in insertion order.
func (q *Question) Topics() []string { return slices.Clone(q.topics) }

// Weight returns the weight of the question.
func (q *Question) Weight() int { return q.weight }

// MaximumTopics returns the number of topics a question can hold.
func (q *Question) MaximumTopics() int { return MaxTopics }

// CreatedAt returns when the question was created.
func (q *Question) CreatedAt() time.Time { return q.createdAt }

// UpdatedAt returns when the question was last successfully modified.
func (q *Question) UpdatedAt() time.Time { return q.updatedAt }

// LogValue implements slog.LogValuer.
func (q *Question) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", q.id.String()),
		slog.String("body", q.body),
		slog.Int("choices", len(q.choices)),
		slog.Int("correct_choice", q.correctChoice),
		slog.Any("topics", q.Topics()),
		slog.Int("weight", q.weight),
	)
}

func (q *Question) touch() {
	q.updatedAt = time.Now().UTC()
}

// validateBody rejects an empty body. Go string lengths are bounded by int, so
// there is no separate upper bound to enforce.
func validateBody(body string) error {
	if body == "" {
		return ErrBodyEmpty
	}
	return nil
}

func validateChoices(choices []string) error {
	if len(choices) < MinChoices || len(choices) > MaxChoices {
		return fmt.Errorf("%w: %d", ErrInvalidChoiceCount, len(choices))
	}
	return nil
}

func validateCorrectChoice(correctChoice, amountOfChoices int) error {
	if correctChoice < 0 || correctChoice >= amountOfChoices {
		return fmt.Errorf("%w: %d", ErrInvalidCorrectChoice, correctChoice)
	}
	return nil
}

func validateTopics(topics []string) error {
	if len(topics) == 0 {
		return ErrNoTopics
	}

	if len(topics) > MaxTopics {
		return ErrTooManyTopics
	}

	seen := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		if _, ok := seen[topic]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTopics, topic)
		}
		seen[topic] = struct{}{}
	}

	return nil
}

func validateWeight(weight int) error {
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, weight)
	}
	return nil
}
