package main

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/minigame-rewards/internal/playclient"
)

func TestBuildJobs(t *testing.T) {
	jobs := buildJobs([]uint64{1, 2}, []string{"dog-catcher"}, true)

	assert.Len(t, jobs, 4)
	assert.Equal(t, job{userID: 1, gameID: "dog-catcher", scenario: "single"}, jobs[0])
	assert.Equal(t, job{userID: 1, gameID: "dog-catcher", scenario: "double-tab"}, jobs[1])
}

func TestParseUserIDs(t *testing.T) {
	assert.Equal(t, []uint64{1, 3}, parseUserIDs("1, x,0,3"))
	assert.Equal(t, []uint64{1}, parseUserIDs(""))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, kindCredited, classify(&playclient.Outcome{Credited: true}, nil))
	assert.Equal(t, kindNotEligible, classify(nil, fmt.Errorf("%w: 10s", playclient.ErrNotEligible)))
	assert.Equal(t, kindAbandoned, classify(nil, playclient.ErrAbandoned))
	assert.Equal(t, kindLostRace, classify(&playclient.Outcome{},
		fmt.Errorf("%w: %w", playclient.ErrNotRecorded, &playclient.APIError{Status: http.StatusConflict})))
	assert.Equal(t, kindFailed, classify(&playclient.Outcome{},
		fmt.Errorf("%w: %w", playclient.ErrNotRecorded, &playclient.APIError{Status: http.StatusServiceUnavailable})))
}

func TestStats_DetectsDoubleCredit(t *testing.T) {
	s := NewStats()
	s.Add(PlayResult{UserID: 1, GameID: "dog-catcher", Scenario: "single", Kind: kindCredited})
	s.Add(PlayResult{UserID: 1, GameID: "dog-catcher", Scenario: "double-tab", Kind: kindLostRace})
	assert.Empty(t, s.DoubleCredits())

	s.Add(PlayResult{UserID: 1, GameID: "dog-catcher", Scenario: "double-tab", Kind: kindCredited})
	assert.Equal(t, []string{"user 1 / dog-catcher"}, s.DoubleCredits())
	assert.Equal(t, 2, s.Count(kindCredited))

	var out bytes.Buffer
	s.Print(&out, 0)
	assert.Contains(t, out.String(), "FAIL")
}
