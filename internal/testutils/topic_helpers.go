package testutils

import (
	"math/rand/v2"
	"slices"
	"strings"
)

const topicAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Topic length bands produced by the generators. Both bounds are inclusive.
const (
	ValidTopicMinLength   = 6
	ValidTopicMaxLength   = 9
	InvalidTopicMinLength = 0
	InvalidTopicMaxLength = 4
)

// RandomValidTopic returns a random alphanumeric topic long enough to be
// accepted by Question.AddTopic.
func RandomValidTopic() string {
	return randomTopic(ValidTopicMinLength, ValidTopicMaxLength)
}

// RandomInvalidTopic returns a random alphanumeric topic too short to be
// accepted by Question.AddTopic. It may be empty.
func RandomInvalidTopic() string {
	return randomTopic(InvalidTopicMinLength, InvalidTopicMaxLength)
}

// UniqueValidTopic returns a random valid topic that is not in existing.
func UniqueValidTopic(existing []string) string {
	for {
		topic := RandomValidTopic()
		if !slices.Contains(existing, topic) {
			return topic
		}
	}
}

func randomTopic(minLen, maxLen int) string {
	n := minLen + rand.IntN(maxLen-minLen+1)

	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(topicAlphabet[rand.IntN(len(topicAlphabet))])
	}
	return b.String()
}
