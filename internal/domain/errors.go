// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the single error kind returned when an operation on a
// domain entity would violate one of its constraints. Every constraint error
// below wraps it, so callers can check errors.Is(err, ErrInvalidOperation)
// without caring which rule was broken.
var ErrInvalidOperation = errors.New("invalid operation")

// Question construction errors
var (
	// ErrBodyEmpty is returned when a question body is empty.
	ErrBodyEmpty = fmt.Errorf("%w: body cannot be empty", ErrInvalidOperation)

	// ErrInvalidChoiceCount is returned when a question has fewer than
	// MinChoices or more than MaxChoices choices.
	ErrInvalidChoiceCount = fmt.Errorf("%w: invalid amount of choices provided", ErrInvalidOperation)

	// ErrInvalidCorrectChoice is returned when the correct choice index does not
	// point at one of the question's choices.
	ErrInvalidCorrectChoice = fmt.Errorf("%w: invalid value for correct choice", ErrInvalidOperation)

	// ErrNoTopics is returned when a question has no topics.
	ErrNoTopics = fmt.Errorf("%w: no topics provided", ErrInvalidOperation)

	// ErrTooManyTopics is returned when a question holds more than MaxTopics topics.
	ErrTooManyTopics = fmt.Errorf("%w: exceeded maximum allowed topics %d", ErrInvalidOperation, MaxTopics)

	// ErrDuplicateTopics is returned when the same topic appears twice.
	ErrDuplicateTopics = fmt.Errorf("%w: duplicate topics found", ErrInvalidOperation)

	// ErrInvalidWeight is returned when a weight falls outside [MinWeight, MaxWeight].
	ErrInvalidWeight = fmt.Errorf("%w: invalid value for weight", ErrInvalidOperation)
)

// Topic mutation errors
var (
	// ErrTopicTooShort is returned when an added topic has fewer than MinTopicLength characters.
	ErrTopicTooShort = fmt.Errorf("%w: a topic must have at least %d characters", ErrInvalidOperation, MinTopicLength)

	// ErrTopicExists is returned when an added topic is already attached to the question.
	ErrTopicExists = fmt.Errorf("%w: topic already exists", ErrInvalidOperation)

	// ErrTopicLimitReached is returned when a topic is added to a question that
	// already holds MaxTopics topics.
	ErrTopicLimitReached = fmt.Errorf("%w: only %d topics are allowed", ErrInvalidOperation, MaxTopics)

	// ErrTopicNotFound is returned when removing a topic the question does not have.
	ErrTopicNotFound = fmt.Errorf("%w: topic does not exist", ErrInvalidOperation)

	// ErrLastTopic is returned when removing the only topic left on a question.
	ErrLastTopic = fmt.Errorf("%w: a question must keep at least one topic", ErrInvalidOperation)
)

// ErrGradeNotSpecified is returned by Question.Grade. Scoring rules have not
// been defined yet, so no grade can be computed. It does not wrap
// ErrInvalidOperation because no constraint was violated.
var ErrGradeNotSpecified = errors.New("question grading is not specified")
