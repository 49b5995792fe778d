package tests

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/adapt"
	"github.com/ib-77/rail/pkg/rail/flow"
	"github.com/ib-77/rail/pkg/rail/pipe"

	"github.com/stretchr/testify/assert"
)

var errBadURL = errors.New("url must be a well-formed https address")

// TestURLProcessing runs the url checking pipeline over a mixed batch and
// verifies the valid/invalid split.
func TestURLProcessing(t *testing.T) {
	urls := []string{
		// valid by structure (never fetched)
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		// invalid by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(urls)

	assert.Equal(t, len(urls), len(results))

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}
	assert.Equal(t, 2, invalidCount)
}

func processRequest(urls []string) []string {
	ctx := context.Background()

	return pipe.Collect(ctx,
		pipe.Finalize(ctx,
			pipe.Turnout(ctx,
				pipe.Run(ctx,
					pipe.ToChanResults(ctx, urls...),
					pipe.LiftValidate(func(_ context.Context, u string) bool {
						parsed, err := url.Parse(u)
						return err == nil && parsed.Scheme == "https" && parsed.Host != ""
					}, errBadURL),
					2),
				pipe.LiftMap(func(_ context.Context, u string) int {
					return len(strings.TrimPrefix(u, "https://"))
				}),
				2),
			func(_ context.Context, hostLen int) string {
				return fmt.Sprintf("host length: %d", hostLen)
			},
			func(_ context.Context, err error) string {
				return "invalid"
			}))
}

// TestSingleChain drives one deferred chain end to end through validation,
// transformation, and a fallible step.
func TestSingleChain(t *testing.T) {
	ctx := context.Background()

	res := flow.ThenTry(
		flow.Map(
			flow.Begin(ctx, "https://www.example.com").
				Ensure(func(_ context.Context, u string) bool {
					return strings.HasPrefix(u, "https://")
				}, errBadURL),
			func(_ context.Context, u string) string {
				return strings.TrimPrefix(u, "https://")
			}),
		func(_ context.Context, host string) (int, error) {
			if host == "" {
				return 0, errors.New("empty host")
			}
			return len(host), nil
		},
	).Run()

	assert.True(t, res.IsSuccess())
	assert.Equal(t, len("www.example.com"), res.Result())
}

// TestChainRejectsEarly verifies short-circuit across the whole surface:
// a failed validation skips every later step and the original error surfaces
// through the adapter as a plain Go error.
func TestChainRejectsEarly(t *testing.T) {
	ctx := context.Background()
	invoked := 0

	c := flow.Map(
		flow.Begin(ctx, "ftp://host").
			Ensure(func(_ context.Context, u string) bool {
				return strings.HasPrefix(u, "https://")
			}, errBadURL),
		func(_ context.Context, u string) string {
			invoked++
			return u
		})

	_, err := adapt.Await(c.RunDeferred())

	assert.ErrorIs(t, err, errBadURL)
	assert.Zero(t, invoked)
}

// TestValidationAdapter checks the external validation outcome mapping.
func TestValidationAdapter(t *testing.T) {
	payload := struct{ A int }{A: 1}

	ok := adapt.Validation(adapt.Outcome[struct{ A int }]{Valid: true, Data: &payload})
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 1, ok.Result().A)

	missing := adapt.Validation(adapt.Outcome[struct{ A int }]{Valid: true})
	assert.True(t, missing.IsFailure())
	assert.ErrorIs(t, missing.Err(), adapt.ErrValidation)

	invalid := adapt.Validation(adapt.Outcome[struct{ A int }]{Valid: false})
	assert.True(t, invalid.IsFailure())
	assert.ErrorIs(t, invalid.Err(), adapt.ErrValidation)
}

// TestFailureIdentityAcrossPipeline confirms a failure created at the head
// of a chain is the same observable value at the tail.
func TestFailureIdentityAcrossPipeline(t *testing.T) {
	ctx := context.Background()

	head := rail.Fail[int](errBadURL)

	tail := flow.Then(
		flow.Map(flow.Start(ctx, head),
			func(_ context.Context, v int) int { return v + 1 }),
		func(_ context.Context, v int) rail.Result[int] { return rail.Success(v) },
	).Run()

	assert.True(t, tail.IsFailure())
	assert.Equal(t, head.Id(), tail.Id())
	assert.ErrorIs(t, tail.Err(), errBadURL)
}
