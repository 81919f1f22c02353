// Package testutils provides testing utilities shared across packages.
//
// This package contains helpers for:
// 1. Creating test domain entities (Question)
// 2. Generating random topic strings on either side of the minimum topic length
// 3. Capturing slog output in memory
//
// # Test Domain Entities
//
//	// Create a question with default values:
//	q := testutils.MustCreateQuestionForTest(t)
//
//	// Create a question with specific options:
//	q := testutils.MustCreateQuestionForTest(t,
//	    testutils.WithQuestionChoices("Scabbers", "Hedwig"),
//	    testutils.WithQuestionWeight(1),
//	)
//
// # Random Topics
//
//	valid := testutils.RandomValidTopic()     // 6 to 9 alphanumeric characters
//	invalid := testutils.RandomInvalidTopic() // 0 to 4 alphanumeric characters
package testutils
